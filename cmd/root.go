package cmd

import (
	"fmt"
	"os"

	"margincast/internal/config"
	"margincast/internal/engine"
	"margincast/internal/model"
	"margincast/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagPrice         float64
	flagUnitCost      float64
	flagFixedCost     float64
	flagMonths        int
	flagUnits         float64
	flagGrowth        float64
	flagPriceScenario float64
	flagScenario      string
	flagQuiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "margincast",
	Short: "Financial projection CLI for unit-economics businesses",
	Long:  "Project monthly revenue, costs, and profit from a handful of business parameters.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runSummary
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagPrice, "price", "p", 0, "Selling price per unit")
	pf.Float64VarP(&flagUnitCost, "unit-cost", "c", 0, "Variable cost per unit")
	pf.Float64VarP(&flagFixedCost, "fixed-cost", "f", 0, "Fixed monthly cost")
	pf.IntVarP(&flagMonths, "months", "m", 0, "Projection horizon in months")
	pf.Float64VarP(&flagUnits, "units", "u", 0, "Units sold in the first month")
	pf.Float64VarP(&flagGrowth, "growth", "g", 0, "Monthly unit growth percent (compounds)")
	pf.Float64Var(&flagPriceScenario, "price-scenario", 0, "One-time price adjustment percent (what-if)")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Load a saved scenario by name")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// loadParams resolves the effective parameter set: config defaults, then a
// named scenario if requested, then explicitly set flags on top. Returns
// the parameters and the configured currency symbol.
func loadParams() (model.Parameters, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Parameters{}, "", err
	}

	params := cfg.Parameters()
	currency := cfg.Appearance.Currency
	if currency == "" {
		currency = "$"
	}

	if flagScenario != "" {
		lib, err := store.Open(store.DefaultPath())
		if err != nil {
			return model.Parameters{}, "", err
		}
		defer func() { _ = lib.Close() }()

		saved, err := lib.Get(flagScenario)
		if err != nil {
			return model.Parameters{}, "", err
		}

		// Scenarios carry business inputs only; presentation stays configured
		saved.LabelStyle = params.LabelStyle
		saved.StartMonth = params.StartMonth
		params = saved
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("price") {
		params.SellingPrice = decimal.NewFromFloat(flagPrice)
	}
	if pf.Changed("unit-cost") {
		params.UnitCost = decimal.NewFromFloat(flagUnitCost)
	}
	if pf.Changed("fixed-cost") {
		params.FixedMonthlyCost = decimal.NewFromFloat(flagFixedCost)
	}
	if pf.Changed("months") {
		params.HorizonMonths = flagMonths
	}
	if pf.Changed("units") {
		params.StartingUnits = decimal.NewFromFloat(flagUnits)
	}
	if pf.Changed("growth") {
		params.MonthlyGrowthPercent = decimal.NewFromFloat(flagGrowth)
	}
	if pf.Changed("price-scenario") {
		params.PriceScenarioPercent = decimal.NewFromFloat(flagPriceScenario)
	}

	if err := params.Validate(); err != nil {
		return model.Parameters{}, "", err
	}

	return params, currency, nil
}

// project is the shared compute path used by all read-only commands.
func project() (model.Parameters, []model.PeriodRecord, model.Summary, string, error) {
	params, currency, err := loadParams()
	if err != nil {
		return model.Parameters{}, nil, model.Summary{}, "", err
	}

	records, err := engine.Project(params)
	if err != nil {
		return model.Parameters{}, nil, model.Summary{}, "", err
	}

	summary, err := engine.Summarize(params, records)
	if err != nil {
		return model.Parameters{}, nil, model.Summary{}, "", err
	}

	return params, records, summary, currency, nil
}

func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
