package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lookback/internal/cli"
	"lookback/internal/common"
	"lookback/internal/ingest"
	"lookback/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from CSV exports",
		Long: `Import transaction CSV exports into the local ledger.

Column names are detected automatically and records already present (by
content hash) are skipped, so re-importing an overlapping export is safe.

Examples:
  # Import a single export
  lookback import ~/Downloads/cash_app_report.csv

  # Import everything in a directory
  lookback import ~/Downloads/exports/*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing CSV exports...",
		"file_count", len(files),
		"dry_run", dryRun)

	parser := ingest.NewParser()
	ctx := cmd.Context()

	var all []model.Transaction
	seen := make(map[string]bool)
	var badDates, droppedAmounts int

	bar := progressbar.Default(int64(len(files)), "importing")
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": path})
			continue
		}

		result, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse CSV file", common.Fields{"file": path})
			continue
		}

		for _, txn := range result.Transactions {
			if !seen[txn.Hash] {
				seen[txn.Hash] = true
				all = append(all, txn)
			}
		}
		badDates += result.BadDates
		droppedAmounts += result.DroppedAmounts
		_ = bar.Add(1)
	}

	if len(all) == 0 {
		return fmt.Errorf("no transactions found in %d file(s)", len(files))
	}

	if badDates > 0 {
		slog.Warn("some records have unparseable dates; they will be excluded from monthly totals",
			"count", badDates)
	}
	if droppedAmounts > 0 {
		slog.Warn("dropped rows with unparseable amounts", "count", droppedAmounts)
	}

	if dryRun {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Dry run: %d transactions parsed, nothing saved", len(all))))
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	added, err := store.SaveTransactions(ctx, all)
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Imported %d new transactions (%d duplicates skipped)", added, len(all)-added)))
	return nil
}

// expandGlobs resolves glob patterns, tolerating direct file paths that the
// shell did not expand.
func expandGlobs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	return files, nil
}
