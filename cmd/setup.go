package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"margincast/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to margincast!")
	fmt.Println("  Press Enter to keep the value in brackets.")
	fmt.Println()

	// 1. Business parameters
	fmt.Println("  1. Business defaults")
	cfg.Defaults.SellingPrice = promptFloat(reader, "Selling price per unit", cfg.Defaults.SellingPrice)
	cfg.Defaults.UnitCost = promptFloat(reader, "Variable cost per unit", cfg.Defaults.UnitCost)
	cfg.Defaults.FixedMonthlyCost = promptFloat(reader, "Fixed monthly cost", cfg.Defaults.FixedMonthlyCost)
	cfg.Defaults.HorizonMonths = promptInt(reader, "Projection horizon (months)", cfg.Defaults.HorizonMonths)
	cfg.Defaults.StartingUnits = promptFloat(reader, "Units sold in month 1", cfg.Defaults.StartingUnits)
	cfg.Defaults.MonthlyGrowthPercent = promptFloat(reader, "Monthly unit growth %", cfg.Defaults.MonthlyGrowthPercent)
	fmt.Println()

	// 2. Month labels
	fmt.Println("  2. Month labels")
	fmt.Println("     (1) Month 1, Month 2, ... [default]")
	fmt.Println("     (2) Calendar months (Jan, Feb, ...)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.MonthLabels = "calendar"
		fmt.Print("     Start month [Jan] > ")
		month, _ := reader.ReadString('\n')
		if m := strings.TrimSpace(month); m != "" {
			cfg.Appearance.StartMonth = m
		}
	default:
		cfg.Appearance.MonthLabels = "index"
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `margincast setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%g] > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("     Not a number, keeping current value.")
		return current
	}
	return v
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("     %s [%d] > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("     Not a whole number, keeping current value.")
		return current
	}
	return v
}
