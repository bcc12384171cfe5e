package cmd

import (
	"fmt"

	"margincast/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Projection summary with totals, margins, and break-even",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	params, records, summary, currency, err := project()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MARGINCAST  %d-Month Projection", summary.Periods)))
	fmt.Println()

	beStr := "not achievable"
	if summary.BreakEven.Achievable {
		beStr = cli.FormatUnits(summary.BreakEven.UnitsPerMonth) + " units/month"
	}

	rows := [][]string{
		{"Months", cli.FormatNumber(int64(summary.Periods))},
		{"Effective Price", cli.FormatMoney(currency, params.EffectivePrice())},
		{"Contribution/unit", cli.FormatMoney(currency, summary.ContributionPerUnit)},
		{"---"},
		{"Total Revenue", cli.FormatMoney(currency, summary.TotalRevenue)},
		{"Total COGS", cli.FormatMoney(currency, summary.TotalCOGS)},
		{"Total Gross Profit", cli.FormatMoney(currency, summary.TotalGrossProfit)},
		{"Total Net Profit", cli.FormatMoney(currency, summary.TotalNetProfit)},
		{"---"},
		{"Avg Gross Margin", cli.FormatPercent(summary.AvgGrossMarginPct)},
		{"Avg Net Margin", cli.FormatPercent(summary.AvgNetMarginPct)},
		{"Mean Revenue/mo", cli.FormatMoney(currency, summary.MeanRevenue)},
		{"Mean Net Profit/mo", cli.FormatMoney(currency, summary.MeanNetProfit)},
		{"---"},
		{"Break-even", beStr},
		{"Health Score", cli.FormatScore(summary.HealthScore)},
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}

	fmt.Print(cli.RenderTable(table))

	// Revenue trend at a glance
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.Revenue.InexactFloat64()
	}
	fmt.Printf("\n  Revenue  %s\n", cli.RenderSparkline(vals))

	profits := make([]float64, len(records))
	for i, r := range records {
		profits[i] = r.NetProfit.InexactFloat64()
	}
	fmt.Printf("  Net      %s\n", cli.RenderSparkline(profits))
	fmt.Println()

	return nil
}
