package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lookback/internal/cli"
	"lookback/internal/ledger"
	"lookback/internal/report"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show category totals and the merchant keyword table",
		RunE:  runCategories,
	}

	cmd.Flags().String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date, inclusive (YYYY-MM-DD)")
	cmd.Flags().Bool("keywords", false, "Show the merchant keyword table instead of totals")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	showKeywords, _ := cmd.Flags().GetBool("keywords")
	if showKeywords {
		return printKeywordTable()
	}

	filter, err := rangeFilter(cmd)
	if err != nil {
		return err
	}

	transactions, err := loadClassified(cmd.Context())
	if err != nil {
		return err
	}

	agg := ledger.Aggregate(transactions, filter)
	fmt.Println(cli.RenderBox("Category Totals", report.CategoryTable(agg.CategoryTotals())))
	return nil
}

func printKeywordTable() error {
	classifier, err := newMerchantClassifier()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, category := range classifier.Categories() {
		fmt.Fprintf(&b, "%s:\n", category)
		for _, keyword := range classifier.Keywords(category) {
			fmt.Fprintf(&b, "  %s\n", keyword)
		}
	}
	fmt.Println(cli.RenderBox("Merchant Keywords", strings.TrimRight(b.String(), "\n")))
	return nil
}
