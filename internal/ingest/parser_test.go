package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookback/internal/model"
)

func parse(t *testing.T, csv string) *Result {
	t.Helper()
	result, err := NewParser().ParseFile(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	return result
}

func TestParseFile_StandardExport(t *testing.T) {
	result := parse(t, `Date,Transaction Type,Net Amount,Notes
2024-03-05 14:32:11 EDT,Cash Card,"-$120.50",STARBUCKS #123
2024-03-07 09:00:00 EST,Deposits,"$2,400.00",THE ENERGY AUTHO DIRECT DEP
`)

	require.Len(t, result.Transactions, 2)
	assert.Zero(t, result.BadDates)
	assert.Zero(t, result.DroppedAmounts)

	first := result.Transactions[0]
	assert.Equal(t, time.Date(2024, 3, 5, 14, 32, 11, 0, time.UTC), first.Date)
	assert.InDelta(t, -120.50, first.NetAmount, 1e-9)
	assert.Equal(t, model.TypePointOfSale, first.Type)
	assert.Equal(t, "STARBUCKS #123", first.Notes)
	assert.NotEmpty(t, first.Hash)
	assert.NotEmpty(t, first.ID)

	second := result.Transactions[1]
	assert.InDelta(t, 2400.00, second.NetAmount, 1e-9)
	assert.Equal(t, model.TypeDeposit, second.Type)
}

func TestParseFile_AlternateColumnNames(t *testing.T) {
	result := parse(t, `transaction_date,amount,transaction_type,description
2024-01-15,-42.00,Withdrawal,ATM
`)

	require.Len(t, result.Transactions, 1)
	txn := result.Transactions[0]
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.InDelta(t, -42.00, txn.NetAmount, 1e-9)
	assert.Equal(t, "ATM", txn.Description)
}

func TestParseFile_DateColumnFallback(t *testing.T) {
	// No exact candidate matches; any header containing "date" is used.
	result := parse(t, `Posting Date,Amount
2024-02-01,-5.00
`)

	require.Len(t, result.Transactions, 1)
	assert.True(t, result.Transactions[0].HasDate())
}

func TestParseFile_BadDateKeptAndCounted(t *testing.T) {
	result := parse(t, `Date,Net Amount,Notes
not-a-date,-10.00,SOMETHING
`)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 1, result.BadDates)
	assert.False(t, result.Transactions[0].HasDate())
}

func TestParseFile_BadAmountDropped(t *testing.T) {
	result := parse(t, `Date,Net Amount,Notes
2024-03-05,garbage,KEEP OUT
2024-03-06,-10.00,KEEP IN
`)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 1, result.DroppedAmounts)
	assert.Equal(t, "KEEP IN", result.Transactions[0].Notes)
}

func TestParseFile_ParenthesizedNegative(t *testing.T) {
	result := parse(t, `Date,Amount
2024-03-05,"($1,234.56)"
`)

	require.Len(t, result.Transactions, 1)
	assert.InDelta(t, -1234.56, result.Transactions[0].NetAmount, 1e-9)
}

func TestParseFile_NotesFallBackToDescription(t *testing.T) {
	result := parse(t, `Date,Net Amount,Notes
2024-03-05,-10.00,COFFEE SHOP
`)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "COFFEE SHOP", result.Transactions[0].Description)
}

func TestParseFile_MissingNotesIsEmptyString(t *testing.T) {
	result := parse(t, `Date,Net Amount
2024-03-05,-10.00
`)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "", result.Transactions[0].Notes)
}

func TestParseFile_NoAmountColumn(t *testing.T) {
	_, err := NewParser().ParseFile(context.Background(), strings.NewReader("Date,Notes\n2024-01-01,x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no amount column")
}

func TestParseFile_RaggedRows(t *testing.T) {
	result := parse(t, `Date,Net Amount,Notes
2024-03-05,-10.00
`)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "", result.Transactions[0].Notes)
}
