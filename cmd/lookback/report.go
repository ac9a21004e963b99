package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lookback/internal/ledger"
	"lookback/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the full transaction report",
		Long: `Classify every stored transaction and render the full text report:
monthly summary, spending by category, investments, internal transfers,
cash-flow statistics, and top transactions.

Categories are recomputed on every run from the current rule configuration;
nothing derived is persisted.`,
		RunE: runReport,
	}

	cmd.Flags().String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date, inclusive (YYYY-MM-DD)")
	cmd.Flags().IntP("top", "n", ledger.DefaultTopN, "How many top transactions to show")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	filter, err := rangeFilter(cmd)
	if err != nil {
		return err
	}
	topN, _ := cmd.Flags().GetInt("top")
	output, _ := cmd.Flags().GetString("output")

	transactions, err := loadClassified(cmd.Context())
	if err != nil {
		return err
	}

	agg := ledger.Aggregate(transactions, filter)
	summary := ledger.Summarize(agg, topN)
	text := report.Text(agg, summary)

	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", output)
		return nil
	}

	fmt.Println(text)
	return nil
}
