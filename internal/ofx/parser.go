// Package ofx converts OFX/QFX bank exports into the analyzer's record
// model, as an alternative ingestion path to the CSV export.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"lookback/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY values must be upper case (INFO, WARN, ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML-style files sometimes drop the closing angle bracket on a tag
	// that ends its line
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns normalized records.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var stmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		stmts++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convertTransaction(ofxTx))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		stmts++
		for _, ofxTx := range stmt.BankTranList.Transactions {
			transactions = append(transactions, p.convertTransaction(ofxTx))
		}
	}

	slog.Info("parsed OFX file",
		"transactions", len(transactions),
		"statements", stmts)

	return transactions, nil
}

// convertTransaction maps an OFX transaction onto the analyzer record model.
// OFX has no equivalent of the export's transaction-type tag, so the type is
// inferred from the OFX TRNTYPE; types with no analog stay unrecognized and
// classify as Other.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	txn := model.Transaction{
		ID:          string(ofxTx.FiTID),
		Date:        ofxTx.DtPosted.Time,
		NetAmount:   amount,
		Notes:       notesFor(ofxTx),
		Description: strings.TrimSpace(string(ofxTx.Name)),
		Type:        mapTrnType(fmt.Sprintf("%v", ofxTx.TrnType)),
	}
	txn.Hash = txn.GenerateHash()
	if txn.ID == "" {
		txn.ID = "ofx-" + txn.Hash[:16]
	}
	return txn
}

// notesFor picks the richest free text available for keyword matching.
func notesFor(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if tx.Memo != "" {
		return strings.TrimSpace(string(tx.Memo))
	}
	return strings.TrimSpace(string(tx.Name))
}

// mapTrnType maps OFX TRNTYPE values onto the transaction-type vocabulary.
func mapTrnType(trnType string) model.TransactionType {
	switch strings.ToUpper(trnType) {
	case "POS", "PAYMENT", "DEBIT", "CHECK":
		return model.TypePointOfSale
	case "XFER":
		return model.TypeStandardTransfer
	case "DEP", "DIRECTDEP":
		return model.TypeDeposit
	case "ATM", "CASH":
		return model.TypeWithdrawal
	case "INT", "DIV":
		return model.TypeInterestPayment
	default:
		return model.TransactionType(trnType)
	}
}
