package cmd

import (
	"fmt"

	"margincast/internal/cli"
	"margincast/internal/config"
	"margincast/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved parameter scenarios",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current parameters under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a saved scenario's parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioDelete,
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openLibrary() (*store.Library, error) {
	return store.Open(store.DefaultPath())
}

func runScenarioSave(_ *cobra.Command, args []string) error {
	name := args[0]

	params, _, err := loadParams()
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	if err := lib.Save(name, params); err != nil {
		return err
	}

	infof("  Saved scenario %q\n", name)
	return nil
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	scenarios, err := lib.List()
	if err != nil {
		return err
	}

	if len(scenarios) == 0 {
		fmt.Println("  No saved scenarios. Use `margincast scenario save NAME` to create one.")
		return nil
	}

	cfg, _ := config.Load()
	currency := cfg.Appearance.Currency
	if currency == "" {
		currency = "$"
	}

	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		p := s.Params
		rows = append(rows, []string{
			s.Name,
			cli.FormatMoney(currency, p.SellingPrice),
			cli.FormatMoney(currency, p.UnitCost),
			cli.FormatMoney(currency, p.FixedMonthlyCost),
			fmt.Sprintf("%d", p.HorizonMonths),
			cli.FormatSignedPercent(p.MonthlyGrowthPercent),
			s.UpdatedAt.Format("2006-01-02"),
		})
	}

	table := cli.Table{
		Headers: []string{"Name", "Price", "Unit Cost", "Fixed", "Months", "Growth", "Updated"},
		Rows:    rows,
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(table))
	fmt.Println()
	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	p, err := lib.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("  Scenario: %s\n\n", args[0])
	fmt.Printf("    Selling price:      %s\n", p.SellingPrice)
	fmt.Printf("    Unit cost:          %s\n", p.UnitCost)
	fmt.Printf("    Fixed monthly cost: %s\n", p.FixedMonthlyCost)
	fmt.Printf("    Horizon:            %d months\n", p.HorizonMonths)
	fmt.Printf("    Starting units:     %s\n", p.StartingUnits)
	fmt.Printf("    Monthly growth:     %s%%\n", p.MonthlyGrowthPercent)
	fmt.Printf("    Price scenario:     %s%%\n", p.PriceScenarioPercent)
	fmt.Println()
	fmt.Printf("  Run `margincast --scenario %s` to project with it.\n", args[0])
	return nil
}

func runScenarioDelete(_ *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	if err := lib.Delete(args[0]); err != nil {
		return err
	}

	infof("  Deleted scenario %q\n", args[0])
	return nil
}
