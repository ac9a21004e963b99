// Package report renders categorized ledger aggregates as a plain-text
// report suitable for the terminal or a file.
package report

import (
	"fmt"
	"strings"

	"lookback/internal/ledger"
)

const (
	headerWidth  = 60
	sectionWidth = 40
)

// Text renders the full transaction report from aggregates and their
// summary. Pure formatting; all figures come precomputed from the ledger
// package.
func Text(agg *ledger.Aggregates, summary *ledger.Summary) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	rule := func(width int) { line("%s", strings.Repeat("-", width)) }

	line("%s", strings.Repeat("=", headerWidth))
	line("MONTHLY TRANSACTION REPORT")
	line("%s", strings.Repeat("=", headerWidth))

	if summary.TransactionCount == 0 {
		line("Analysis Period: No data in selected range")
		line("Total Transactions: 0")
		line("Net Amount: $0.00")
		return b.String()
	}

	var total float64
	for i := range agg.Filtered {
		total += agg.Filtered[i].NetAmount
	}
	line("Analysis Period: %s to %s",
		agg.Start.Format("2006-01-02"), agg.End.Format("2006-01-02"))
	line("Total Transactions: %d", summary.TransactionCount)
	if agg.SkippedDates > 0 {
		line("Records without parseable dates: %d (excluded from monthly totals)", agg.SkippedDates)
	}
	line("Net Amount: $%.2f", total)
	line("")

	if len(summary.LargePayments) > 0 {
		line("LARGE PAYMENTS & BONUSES (>=$%.0f):", ledger.LargePaymentFloor)
		rule(sectionWidth)
		for _, txn := range summary.LargePayments {
			line("%s: %s - %s (%s)",
				txn.Date.Format("2006-01-02"), money(txn.NetAmount), txn.DisplayText(), txn.Category)
		}
		line("")
	}

	line("MONTHLY SUMMARY:")
	rule(sectionWidth)
	for _, m := range agg.Monthly {
		line("%s: %s (%d transactions)", m.Period, money(m.Total), m.Count)
		line("  Top Category: %s", m.TopCategory)
	}
	line("")

	line("SPENDING BY CATEGORY:")
	rule(sectionWidth)
	expenses := agg.ExpenseBreakdown()
	if len(expenses) == 0 {
		line("No spending data available")
	} else {
		var totalSpending float64
		for _, ct := range expenses {
			totalSpending += ct.Total
		}
		for _, ct := range expenses {
			pct := 0.0
			if totalSpending > 0 {
				pct = ct.Total / totalSpending * 100
			}
			avg := ct.Total / float64(ct.Count)
			line("%s: $%.2f (%.1f%%) - %d transactions, avg $%.2f",
				ct.Category, ct.Total, pct, ct.Count, avg)
		}
	}
	line("")

	if investments := agg.InvestmentBreakdown(); len(investments) > 0 {
		line("INVESTMENTS:")
		rule(sectionWidth)
		var totalInvested float64
		for _, ct := range investments {
			totalInvested += ct.Total
		}
		for _, ct := range investments {
			pct := 0.0
			if totalInvested > 0 {
				pct = ct.Total / totalInvested * 100
			}
			avg := ct.Total / float64(ct.Count)
			line("%s: $%.2f (%.1f%%) - %d transactions, avg $%.2f",
				ct.Category, ct.Total, pct, ct.Count, avg)
		}
		line("Total Investments: $%.2f", totalInvested)
		line("")
	}

	if internal := agg.InternalBreakdown(); len(internal) > 0 {
		line("INTERNAL TRANSFERS (excluded from income/expense totals):")
		rule(sectionWidth)
		for _, ct := range internal {
			line("%s: $%.2f - %d transactions", ct.Category, ct.Total, ct.Count)
		}
		line("")
	}

	line("SUMMARY STATISTICS:")
	rule(sectionWidth)
	p := summary.Partition
	line("Total Income (excluding internal transfers): $%.2f", p.Income)
	line("Total Expenses (excluding internal transfers and investments): $%.2f", -p.Expenses)
	line("Total Investments: $%.2f", p.Investments)
	line("Net Cash Flow (excluding investments): $%.2f", p.NetExcludingInvestments())
	line("Net Cash Flow (including investments): $%.2f", p.NetIncludingInvestments())
	line("Cash Savings Rate (excluding investments): %s", rate(summary.CashSavingsRate))
	line("Investment Rate: %s", rate(summary.InvestmentRate))
	line("Total Savings Rate (cash + investments): %s", rate(summary.TotalSavingsRate))
	line("Most Frequent Category: %s (%d transactions)",
		summary.MostFrequent, summary.MostFrequentCount)
	if summary.LargestExpense != nil {
		line("Largest Expense: $%.2f - %s",
			-summary.LargestExpense.NetAmount, summary.LargestExpense.DisplayText())
	}
	if summary.LargestIncome != nil {
		line("Largest Income: $%.2f - %s",
			summary.LargestIncome.NetAmount, summary.LargestIncome.DisplayText())
	}

	line("")
	line("TOP %d TRANSACTIONS BY AMOUNT:", summary.TopN)
	rule(sectionWidth)
	if len(summary.TopTransactions) == 0 {
		line("No transactions available")
	}
	for i, txn := range summary.TopTransactions {
		line("%d. %s: %s - %s (%s)",
			i+1, txn.Date.Format("2006-01-02"), money(txn.NetAmount), txn.DisplayText(), txn.Category)
	}

	return b.String()
}

// money formats a signed amount with an explicit sign, e.g. "+$1,234.56".
func money(amount float64) string {
	sign := "+"
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + commas(amount)
}

// commas renders a non-negative amount with thousands separators.
func commas(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	if len(whole) <= 3 {
		return whole + frac
	}
	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String() + frac
}

func rate(r ledger.Rate) string {
	if !r.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", r.Value)
}

// FlowTable renders the per-month cash-flow split as an aligned table.
func FlowTable(flows []ledger.MonthlyFlow) string {
	if len(flows) == 0 {
		return "No data available for the selected period."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-9s %12s %12s %12s %12s\n",
		"Month", "Income", "Expenses", "Invested", "Net Flow")
	for _, f := range flows {
		fmt.Fprintf(&b, "%-9s %12.2f %12.2f %12.2f %12.2f\n",
			f.Period, f.Income, f.Expenses, f.Investments, f.NetFlow)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CategoryTable renders category totals as an aligned table.
func CategoryTable(totals []ledger.CategoryTotal) string {
	if len(totals) == 0 {
		return "No categorized transactions."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-30s %12s %8s\n", "Category", "Total", "Count")
	for _, ct := range totals {
		fmt.Fprintf(&b, "%-30s %12.2f %8d\n", ct.Category, ct.Total, ct.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}
