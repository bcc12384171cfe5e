package cmd

import (
	"fmt"

	"margincast/internal/cli"
	"margincast/internal/config"
	"margincast/internal/insight"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Classify the projection and print an assessment",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	_, _, summary, currency, err := project()
	if err != nil {
		return err
	}

	a := insight.Classify(summary)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTION INSIGHTS"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Signal", "Reading"},
		Rows: [][]string{
			{"Profitability", a.Profitability.String()},
			{"Growth", a.Growth.String()},
			{"---"},
			{"Net Margin (avg)", cli.FormatPercent(summary.AvgNetMarginPct)},
			{"Mean Net Profit", cli.FormatMoney(currency, summary.MeanNetProfit)},
			{"Growth Rate", cli.FormatSignedPercent(summary.GrowthRatePercent)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Printf("\n  Health %s %s\n",
		cli.FormatScore(summary.HealthScore),
		cli.RenderMeter(float64(summary.HealthScore)/100, 30))

	// Fixed-cost breakdown, when configured
	cfg, _ := config.Load()
	if len(cfg.FixedCosts) > 0 {
		fmt.Println()
		fmt.Println("  Fixed cost breakdown:")

		maxAmount := 0.0
		for _, item := range cfg.FixedCosts {
			if item.Amount > maxAmount {
				maxAmount = item.Amount
			}
		}
		for _, item := range cfg.FixedCosts {
			fmt.Printf("    %-16s %s %s\n",
				item.Name,
				cli.RenderSignedBar(item.Amount, maxAmount, 24),
				cli.FormatMoney(currency, decimal.NewFromFloat(item.Amount)))
		}
	}

	fmt.Println()
	fmt.Printf("  %s\n", insight.Report(summary))
	fmt.Println()

	return nil
}
