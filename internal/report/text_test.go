package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookback/internal/ledger"
	"lookback/internal/model"
)

func reportFor(t *testing.T, txns []model.Transaction) string {
	t.Helper()
	agg := ledger.Aggregate(txns, ledger.Filter{})
	return Text(agg, ledger.Summarize(agg, 0))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestText_FullReport(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 3, 1), NetAmount: 2400.00, Notes: "PAYROLL", Category: model.CategoryIncome},
		{Date: date(2024, 3, 5), NetAmount: -120.50, Notes: "CHIPOTLE", Category: model.CategoryFoodDining},
		{Date: date(2024, 3, 10), NetAmount: -318.28, Category: model.CategoryConfirmedDCA},
		{Date: date(2024, 3, 12), NetAmount: -1000.00, Category: model.CategoryRentOffset},
		{Date: date(2024, 3, 20), NetAmount: 15000.00, Notes: "BONUS", Category: model.CategoryIncome},
	}
	text := reportFor(t, txns)

	for _, want := range []string{
		"MONTHLY TRANSACTION REPORT",
		"Analysis Period: 2024-03-01 to 2024-03-20",
		"Total Transactions: 5",
		"LARGE PAYMENTS & BONUSES (>=$10000):",
		"+$15,000.00 - BONUS (Income)",
		"MONTHLY SUMMARY:",
		"2024-03:",
		"Top Category: Income",
		"SPENDING BY CATEGORY:",
		"Food & Dining: $120.50 (100.0%) - 1 transactions, avg $120.50",
		"INVESTMENTS:",
		"Investment (DCA Savings): $318.28",
		"Total Investments: $318.28",
		"INTERNAL TRANSFERS (excluded from income/expense totals):",
		"Rent Offset (Internal): $-1000.00 - 1 transactions",
		"SUMMARY STATISTICS:",
		"Total Income (excluding internal transfers): $17400.00",
		"Net Cash Flow (excluding investments): $17279.50",
		"Net Cash Flow (including investments): $16961.22",
		"Investment Rate:",
		"Largest Expense: $120.50 - CHIPOTLE",
		"Largest Income: $15000.00 - BONUS",
		"TOP 5 TRANSACTIONS BY AMOUNT:",
	} {
		assert.Contains(t, text, want)
	}
}

func TestText_RatesRenderNA(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 3, 5), NetAmount: -12.00, Category: model.CategoryFoodDining},
	}
	text := reportFor(t, txns)

	assert.Contains(t, text, "Cash Savings Rate (excluding investments): N/A")
	assert.Contains(t, text, "Investment Rate: N/A")
	assert.NotContains(t, text, "NaN")
	assert.NotContains(t, text, "Inf")
}

func TestText_EmptySet(t *testing.T) {
	text := reportFor(t, nil)

	assert.Contains(t, text, "No data in selected range")
	assert.Contains(t, text, "Total Transactions: 0")
	assert.Contains(t, text, "Net Amount: $0.00")
}

func TestText_SkippedDatesSurfaced(t *testing.T) {
	txns := []model.Transaction{
		{Date: date(2024, 3, 1), NetAmount: 100, Category: model.CategoryIncome},
		{NetAmount: -10, Category: model.CategoryShopping},
	}
	text := reportFor(t, txns)

	assert.Contains(t, text, "Records without parseable dates: 1")
}

func TestFlowTable(t *testing.T) {
	flows := []ledger.MonthlyFlow{
		{Period: "2024-03", Income: 2400, Expenses: 120.50, Investments: 318.28, NetFlow: 1961.22},
	}
	table := FlowTable(flows)

	lines := strings.Split(table, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Month")
	assert.Contains(t, lines[1], "2024-03")
	assert.Contains(t, lines[1], "1961.22")
}

func TestFlowTable_Empty(t *testing.T) {
	assert.Equal(t, "No data available for the selected period.", FlowTable(nil))
}

func TestCategoryTable(t *testing.T) {
	table := CategoryTable([]ledger.CategoryTotal{
		{Category: model.CategoryFoodDining, Total: -120.50, Count: 3},
	})
	assert.Contains(t, table, "Food & Dining")
	assert.Contains(t, table, "-120.50")
}
