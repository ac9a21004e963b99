package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lookback/internal/cli"
	"lookback/internal/common"
	"lookback/internal/model"
	"lookback/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import financial transactions from OFX or QFX (Quicken) files exported
from your bank. OFX transaction types are mapped onto the analyzer's
transaction-type vocabulary; unmapped types categorize as Other.

Examples:
  # Import a single file
  lookback import-ofx ~/Downloads/statement_jan.qfx

  # Import all QFX files in a directory
  lookback import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files...",
		"file_count", len(files),
		"dry_run", dryRun)

	parser := ofx.NewParser()
	ctx := cmd.Context()

	var all []model.Transaction
	seen := make(map[string]bool)

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": path})
			continue
		}

		transactions, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": path})
			continue
		}

		for _, txn := range transactions {
			if !seen[txn.Hash] {
				seen[txn.Hash] = true
				all = append(all, txn)
			}
		}
	}

	if len(all) == 0 {
		return fmt.Errorf("no transactions found in %d file(s)", len(files))
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
