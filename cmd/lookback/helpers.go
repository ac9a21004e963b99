package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lookback/internal/classify"
	"lookback/internal/common"
	"lookback/internal/config"
	"lookback/internal/ledger"
	"lookback/internal/model"
	"lookback/internal/storage"
)

// openStorage opens the ledger database and ensures the schema is current.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// newMerchantClassifier builds just the merchant sub-classifier, for
// displaying the keyword table.
func newMerchantClassifier() (*classify.MerchantClassifier, error) {
	table, err := config.LoadKeywordTable()
	if err != nil {
		return nil, err
	}
	return classify.NewMerchantClassifier(table), nil
}

// newClassifier builds the classifier from the loaded configuration.
func newClassifier() (*classify.Classifier, error) {
	cfg, err := config.LoadClassifierConfig()
	if err != nil {
		return nil, err
	}
	table, err := config.LoadKeywordTable()
	if err != nil {
		return nil, err
	}
	return classify.New(cfg, classify.NewMerchantClassifier(table)), nil
}

// loadClassified reads all stored records and runs the cascade over them.
func loadClassified(ctx context.Context) ([]model.Transaction, error) {
	store, err := openStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, common.NewUserError("ledger is empty; run 'lookback import' first", common.ErrNoTransactions)
	}

	classifier, err := newClassifier()
	if err != nil {
		return nil, err
	}
	classifier.Classify(transactions)
	return transactions, nil
}

// rangeFilter builds a date filter from --from/--to flag values. The end
// date is pushed to the last instant of its day so the range is inclusive.
func rangeFilter(cmd *cobra.Command) (ledger.Filter, error) {
	var filter ledger.Filter

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, fmt.Errorf("invalid --from date %q (want YYYY-MM-DD): %w", from, err)
		}
		filter.Start = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, fmt.Errorf("invalid --to date %q (want YYYY-MM-DD): %w", to, err)
		}
		filter.End = t.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}
