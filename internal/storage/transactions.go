package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lookback/internal/model"
)

// SaveTransactions inserts records, skipping any whose hash is already
// present. Returns the number actually added.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, hash, date, net_amount, transaction_type, notes, description
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	added := 0
	for i := range transactions {
		txn := &transactions[i]
		var date any
		if txn.HasDate() {
			date = txn.Date.UTC().Format(time.RFC3339)
		}
		res, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, date, txn.NetAmount, string(txn.Type), txn.Notes, txn.Description)
		if err != nil {
			return added, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return added, fmt.Errorf("failed to commit transactions: %w", err)
	}
	return added, nil
}

// GetTransactions returns all stored records ordered by date, dateless
// records last. Categories are not stored and come back unset.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hash, date, net_amount, transaction_type, notes, description
		FROM transactions
		ORDER BY date IS NULL, date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var date sql.NullString
		var txnType string
		if err := rows.Scan(&txn.ID, &txn.Hash, &date, &txn.NetAmount, &txnType, &txn.Notes, &txn.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Type = model.TransactionType(txnType)
		if date.Valid {
			if parsed, err := time.Parse(time.RFC3339, date.String); err == nil {
				txn.Date = parsed
			}
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return transactions, nil
}

// CountTransactions returns the number of stored records.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
