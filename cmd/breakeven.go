package cmd

import (
	"fmt"

	"margincast/internal/cli"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Break-even volume and margin of safety",
	RunE:  runBreakeven,
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(_ *cobra.Command, _ []string) error {
	params, records, summary, currency, err := project()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BREAK-EVEN ANALYSIS"))
	fmt.Println()

	rows := [][]string{
		{"Effective Price", cli.FormatMoney(currency, params.EffectivePrice())},
		{"Unit Cost", cli.FormatMoney(currency, params.UnitCost)},
		{"Contribution/unit", cli.FormatMoney(currency, summary.ContributionPerUnit)},
		{"Fixed Cost/month", cli.FormatMoney(currency, params.FixedMonthlyCost)},
		{"---"},
	}

	if !summary.BreakEven.Achievable {
		rows = append(rows, []string{"Break-even", "not achievable"})
		table := cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}
		fmt.Print(cli.RenderTable(table))
		fmt.Println()
		fmt.Println("  Each unit sold fails to cover its own variable cost, so no sales")
		fmt.Println("  volume can reach break-even. Raise the price or cut the unit cost.")
		fmt.Println()
		return nil
	}

	// Mean projected volume against the break-even bar
	meanUnits := decimal.Zero
	for _, r := range records {
		meanUnits = meanUnits.Add(r.UnitsSold)
	}
	meanUnits = meanUnits.Div(decimal.NewFromInt(int64(len(records))))

	rows = append(rows, []string{"Break-even Volume", cli.FormatUnits(summary.BreakEven.UnitsPerMonth) + " units/month"})
	rows = append(rows, []string{"Mean Projected Volume", cli.FormatUnits(meanUnits) + " units/month"})

	if meanUnits.IsPositive() {
		hundred := decimal.NewFromInt(100)
		safety := meanUnits.Sub(summary.BreakEven.UnitsPerMonth).Div(meanUnits).Mul(hundred)
		rows = append(rows, []string{"Margin of Safety", cli.FormatPercent(safety)})
	}

	table := cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}
	fmt.Print(cli.RenderTable(table))

	fmt.Println()
	if meanUnits.GreaterThanOrEqual(summary.BreakEven.UnitsPerMonth) {
		fmt.Println("  Projected volume clears break-even on average.")
	} else {
		gap := summary.BreakEven.UnitsPerMonth.Sub(meanUnits)
		fmt.Printf("  Projected volume falls %s units/month short of break-even.\n",
			cli.FormatUnits(gap))
	}
	fmt.Println()

	return nil
}
