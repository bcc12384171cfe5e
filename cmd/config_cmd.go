// Package cmd implements the margincast CLI commands.
package cmd

import (
	"fmt"

	"margincast/internal/cli"
	"margincast/internal/config"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	currency := cfg.Appearance.Currency
	if currency == "" {
		currency = "$"
	}

	fmt.Println("  [Defaults]")
	fmt.Printf("    Selling price:      %s%.2f\n", currency, cfg.Defaults.SellingPrice)
	fmt.Printf("    Unit cost:          %s%.2f\n", currency, cfg.Defaults.UnitCost)
	fmt.Printf("    Fixed monthly cost: %s%.2f\n", currency, cfg.Defaults.FixedMonthlyCost)
	fmt.Printf("    Horizon:            %d months\n", cfg.Defaults.HorizonMonths)
	fmt.Printf("    Starting units:     %.1f\n", cfg.Defaults.StartingUnits)
	fmt.Printf("    Monthly growth:     %.1f%%\n", cfg.Defaults.MonthlyGrowthPercent)
	fmt.Printf("    Price scenario:     %.1f%%\n", cfg.Defaults.PriceScenarioPercent)
	fmt.Println()

	if len(cfg.FixedCosts) > 0 {
		fmt.Println("  [Fixed cost breakdown]")
		for _, item := range cfg.FixedCosts {
			fmt.Printf("    %-20s %s\n", item.Name, cli.FormatMoney(currency, decimal.NewFromFloat(item.Amount)))
		}
		fmt.Printf("    %-20s %s\n", "Total", cli.FormatMoney(currency, decimal.NewFromFloat(cfg.FixedCostTotal())))
		fmt.Println("    The breakdown total overrides fixed_monthly_cost.")
		fmt.Println()
	}

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:        %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency:     %s\n", currency)
	fmt.Printf("    Month labels: %s\n", cfg.Appearance.MonthLabels)
	if cfg.Appearance.MonthLabels == "calendar" {
		fmt.Printf("    Start month:  %s\n", cfg.Appearance.StartMonth)
	}
	fmt.Println()

	fmt.Println("  Run `margincast setup` to reconfigure.")
	return nil
}
