// Package ingest normalizes transaction CSV exports into model records.
// Exports vary in column naming and formatting, so the parser detects
// columns by candidate name, strips trailing timezone abbreviations from
// dates, and cleans currency formatting from amounts.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lookback/internal/model"
)

// Parser implements CSV transaction parsing.
type Parser struct{}

// NewParser creates a new CSV parser.
func NewParser() *Parser {
	return &Parser{}
}

// Result carries the normalized records plus data-quality counts. Records
// whose date fails to parse are kept with a zero date (they still get
// categorized); rows whose amount fails to parse are dropped, since a
// record without an amount cannot contribute to any total.
type Result struct {
	Transactions   []model.Transaction
	BadDates       int
	DroppedAmounts int
}

var (
	dateColumns   = []string{"Date", "Transaction Date", "date", "transaction_date"}
	amountColumns = []string{"Net Amount", "Amount", "net_amount", "amount", "Net", "Total"}
	typeColumns   = []string{"Transaction Type", "transaction_type", "Type"}
	notesColumns  = []string{"Notes", "notes"}
	descColumns   = []string{"Description", "description"}

	// Trailing timezone abbreviations ("EDT", "CST") that the date parser
	// does not understand.
	trailingTZ = regexp.MustCompile(`\s+[A-Z]{3}$`)
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
	"01/02/2006",
}

// ParseFile parses a transaction CSV export.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) (*Result, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1 // Tolerate ragged rows; missing cells read as empty

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	rowNum := 1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", rowNum, err)
		}
		rowNum++

		amount, err := parseAmount(field(row, cols.amount))
		if err != nil {
			result.DroppedAmounts++
			slog.Debug("dropping row with unparseable amount",
				"row", rowNum,
				"value", field(row, cols.amount))
			continue
		}

		date, ok := parseDate(field(row, cols.date))
		if !ok {
			result.BadDates++
		}

		txn := model.Transaction{
			Date:        date,
			NetAmount:   amount,
			Type:        model.TransactionType(strings.TrimSpace(field(row, cols.txnType))),
			Notes:       strings.TrimSpace(field(row, cols.notes)),
			Description: strings.TrimSpace(field(row, cols.description)),
		}
		// Notes double as display text when no description column exists.
		if txn.Description == "" {
			txn.Description = txn.Notes
		}
		txn.Hash = txn.GenerateHash()
		txn.ID = fmt.Sprintf("csv-%s", txn.Hash[:16])
		result.Transactions = append(result.Transactions, txn)
	}

	slog.Info("parsed CSV export",
		"transactions", len(result.Transactions),
		"bad_dates", result.BadDates,
		"dropped_amounts", result.DroppedAmounts)

	return result, nil
}

type columnIndexes struct {
	date        int
	amount      int
	txnType     int
	notes       int
	description int
}

func detectColumns(header []string) (columnIndexes, error) {
	cols := columnIndexes{
		date:        findColumn(header, dateColumns),
		amount:      findColumn(header, amountColumns),
		txnType:     findColumn(header, typeColumns),
		notes:       findColumn(header, notesColumns),
		description: findColumn(header, descColumns),
	}

	// Last resort for the date: any header containing "date".
	if cols.date < 0 {
		for i, name := range header {
			if strings.Contains(strings.ToLower(name), "date") {
				cols.date = i
				break
			}
		}
	}

	if cols.amount < 0 {
		return cols, fmt.Errorf("no amount column found in header %v", header)
	}
	return cols, nil
}

func findColumn(header []string, candidates []string) int {
	for _, want := range candidates {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), want) {
				return i
			}
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount strips currency formatting ("$1,234.56", "($12.00)") before
// conversion.
func parseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if negative {
		amount = -amount
	}
	return amount, nil
}

// parseDate strips an unrecognized trailing timezone abbreviation and tries
// the known layouts. A false return means the record has no usable date.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	s = trailingTZ.ReplaceAllString(s, "")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
