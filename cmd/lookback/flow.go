package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lookback/internal/cli"
	"lookback/internal/ledger"
	"lookback/internal/report"
)

func flowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "View monthly cash-flow summaries",
		Long: `Show the per-month income / expenses / investments split with net flow.

Internal transfers are cash-neutral and excluded; both cash-flow views
(excluding and including investments) appear in the totals box because they
answer different questions: liquidity versus total allocation.`,
		RunE: runFlow,
	}

	cmd.Flags().String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date, inclusive (YYYY-MM-DD)")

	return cmd
}

func runFlow(cmd *cobra.Command, _ []string) error {
	filter, err := rangeFilter(cmd)
	if err != nil {
		return err
	}

	transactions, err := loadClassified(cmd.Context())
	if err != nil {
		return err
	}

	agg := ledger.Aggregate(transactions, filter)
	flows := agg.MonthlyFlows()

	fmt.Println(cli.RenderBox("Monthly Cash Flow", report.FlowTable(flows)))

	p := agg.Partition
	totals := fmt.Sprintf(
		"Income:                         $%.2f\nExpenses:                       $%.2f\nInvestments:                    $%.2f\nNet flow (excl. investments):   $%.2f\nNet flow (incl. investments):   $%.2f",
		p.Income, -p.Expenses, p.Investments,
		p.NetExcludingInvestments(), p.NetIncludingInvestments())
	fmt.Println(cli.RenderBox("Totals", totals))

	if agg.SkippedDates > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"%d records without parseable dates excluded from monthly totals", agg.SkippedDates)))
	}
	return nil
}
