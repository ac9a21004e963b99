// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransactionType identifies the kind of transaction reported by the export.
type TransactionType string

// Transaction type vocabulary as it appears in Cash App exports. Unrecognized
// values fall through the classifier to CategoryOther, which is expected
// rather than an error.
const (
	TypeStandardTransfer TransactionType = "Standard Transfer"
	TypePointOfSale      TransactionType = "Cash Card"
	TypePeerToPeer       TransactionType = "P2P"
	TypeSavingsTransfer  TransactionType = "Savings Internal Transfer"
	TypeDeposit          TransactionType = "Deposits"
	TypeWithdrawal       TransactionType = "Withdrawal"
	TypeInterestPayment  TransactionType = "Savings Interest Payment"
	TypeCryptoBuy        TransactionType = "Bitcoin Buy"
	TypeCryptoRecurring  TransactionType = "Bitcoin Recurring Buy"
)

// IsCryptoBuy reports whether the type is one of the crypto purchase types.
func (t TransactionType) IsCryptoBuy() bool {
	return t == TypeCryptoBuy || t == TypeCryptoRecurring
}

// Transaction represents a single normalized record from a transaction
// export. Immutable after normalization except for Category, which is set by
// the classifier once per classification pass.
type Transaction struct {
	Date        time.Time
	ID          string
	Notes       string // Free text used for keyword matching; missing means empty, never null
	Description string // Fallback display text
	Type        TransactionType
	Category    Category
	Hash        string
	NetAmount   float64 // Signed; negative = outflow
}

// HasDate reports whether the record carries a parseable date. Records
// without one are excluded from period aggregation but still categorized.
func (t *Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// DisplayText returns the best available human-readable description.
func (t *Transaction) DisplayText() string {
	if t.Notes != "" {
		return t.Notes
	}
	if t.Description != "" {
		return t.Description
	}
	return "Transaction"
}

// GenerateHash creates a stable hash for duplicate detection across imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02 15:04:05"),
		t.NetAmount,
		t.Type,
		t.Notes)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Cents returns the record amount in whole cents.
func (t *Transaction) Cents() int64 {
	return Cents(t.NetAmount)
}

// Cents converts a dollar amount to whole cents, rounding half away from
// zero. Exact-amount rules compare cents so float representation noise
// cannot defeat an allow-list match.
func Cents(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}
