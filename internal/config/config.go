// Package config loads application configuration through Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"lookback/internal/classify"
	"lookback/internal/common"
	"lookback/internal/model"
)

// LoadClassifierConfig builds the rule-cascade config from Viper. Every
// value here is account-specific data: payroll markers, the confirmed-DCA
// allow-list, the fixed-offset size, and the crypto investment threshold.
func LoadClassifierConfig() (classify.Config, error) {
	cfg := classify.DefaultConfig()

	if viper.IsSet("classifier.income_markers") {
		cfg.IncomeMarkers = viper.GetStringSlice("classifier.income_markers")
	}
	if viper.IsSet("classifier.dca_amounts") {
		var amounts []float64
		if err := viper.UnmarshalKey("classifier.dca_amounts", &amounts); err != nil {
			return cfg, fmt.Errorf("%w: classifier.dca_amounts: %v", common.ErrInvalidConfig, err)
		}
		cfg.DCAAmounts = amounts
	}
	if viper.IsSet("classifier.offset_amount") {
		cfg.OffsetAmount = viper.GetFloat64("classifier.offset_amount")
	}
	if viper.IsSet("classifier.crypto_min_investment") {
		cfg.CryptoMinInvestment = viper.GetFloat64("classifier.crypto_min_investment")
	}

	return cfg, nil
}

// LoadKeywordTable returns the merchant keyword table: built-in defaults
// with any `categories.keywords` config entries merged over them. The table
// is configuration, not code, so users extend it without redeployment.
func LoadKeywordTable() (*classify.KeywordTable, error) {
	table := classify.DefaultKeywordTable()

	if viper.IsSet("categories.keywords") {
		var raw map[string][]string
		if err := viper.UnmarshalKey("categories.keywords", &raw); err != nil {
			return nil, fmt.Errorf("%w: categories.keywords: %v", common.ErrInvalidConfig, err)
		}
		extra := make(map[model.Category][]string, len(raw))
		for label, words := range raw {
			extra[model.Category(label)] = words
		}
		table.Merge(extra)
	}

	return table, nil
}

// DatabasePath resolves the ledger database location, defaulting under the
// user config directory.
func DatabasePath() (string, error) {
	if v := viper.GetString("database.path"); v != "" {
		return expandPath(v), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lookback", "ledger.db"), nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}
	return os.ExpandEnv(path)
}
