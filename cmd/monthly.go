package cmd

import (
	"fmt"

	"margincast/internal/cli"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Month-by-month projection table",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	_, records, summary, currency, err := project()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY PROJECTION  %dmo", summary.Periods)))
	fmt.Println()

	rows := make([][]string, 0, len(records)+2)
	for _, r := range records {
		rows = append(rows, []string{
			r.Label,
			cli.FormatUnits(r.UnitsSold),
			cli.FormatMoney(currency, r.Revenue),
			cli.FormatMoney(currency, r.COGS),
			cli.FormatMoney(currency, r.GrossProfit),
			cli.FormatMoney(currency, r.NetProfit),
			cli.FormatPercent(r.GrossMarginPct),
			cli.FormatPercent(r.NetMarginPct),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		"",
		cli.FormatMoney(currency, summary.TotalRevenue),
		cli.FormatMoney(currency, summary.TotalCOGS),
		cli.FormatMoney(currency, summary.TotalGrossProfit),
		cli.FormatMoney(currency, summary.TotalNetProfit),
		cli.FormatPercent(summary.AvgGrossMarginPct),
		cli.FormatPercent(summary.AvgNetMarginPct),
	})

	table := cli.Table{
		Headers: []string{"Month", "Units", "Revenue", "COGS", "Gross", "Net", "Gross %", "Net %"},
		Rows:    rows,
	}

	fmt.Print(cli.RenderTable(table))
	fmt.Println()

	return nil
}
