// Package config loads and saves margincast configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"margincast/internal/model"
)

// Config holds all margincast configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
	FixedCosts []FixedCostItem  `toml:"fixed_costs"`
}

// DefaultsConfig holds the baseline business parameters used when no flags
// or scenario override them.
type DefaultsConfig struct {
	SellingPrice         float64 `toml:"selling_price"`
	UnitCost             float64 `toml:"unit_cost"`
	FixedMonthlyCost     float64 `toml:"fixed_monthly_cost"`
	HorizonMonths        int     `toml:"horizon_months"`
	StartingUnits        float64 `toml:"starting_units"`
	MonthlyGrowthPercent float64 `toml:"monthly_growth_pct"`
	PriceScenarioPercent float64 `toml:"price_scenario_pct"`
}

// AppearanceConfig holds display preferences.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`
	Currency    string `toml:"currency"`
	MonthLabels string `toml:"month_labels"` // "index" or "calendar"
	StartMonth  string `toml:"start_month"`  // "Jan".."Dec", calendar labels only
}

// FixedCostItem is one named slice of the fixed monthly cost, e.g. rent or
// salaries. When any items are configured their sum becomes the default
// fixed monthly cost and the breakdown panel is shown.
type FixedCostItem struct {
	Name   string  `toml:"name"`
	Amount float64 `toml:"amount"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			SellingPrice:         50,
			UnitCost:             20,
			FixedMonthlyCost:     20000,
			HorizonMonths:        12,
			StartingUnits:        100,
			MonthlyGrowthPercent: 5,
		},
		Appearance: AppearanceConfig{
			Theme:       "flexoki-dark",
			Currency:    "$",
			MonthLabels: "index",
			StartMonth:  "Jan",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "margincast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "margincast")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// FixedCostTotal sums the configured breakdown items.
func (c Config) FixedCostTotal() float64 {
	total := 0.0
	for _, item := range c.FixedCosts {
		total += item.Amount
	}
	return total
}

// Parameters builds the engine parameter set from the configured defaults.
// A non-empty fixed-cost breakdown takes precedence over the scalar
// fixed_monthly_cost.
func (c Config) Parameters() model.Parameters {
	fixed := c.Defaults.FixedMonthlyCost
	if len(c.FixedCosts) > 0 {
		fixed = c.FixedCostTotal()
	}

	p := model.Parameters{
		SellingPrice:         decimal.NewFromFloat(c.Defaults.SellingPrice),
		UnitCost:             decimal.NewFromFloat(c.Defaults.UnitCost),
		FixedMonthlyCost:     decimal.NewFromFloat(fixed),
		HorizonMonths:        c.Defaults.HorizonMonths,
		StartingUnits:        decimal.NewFromFloat(c.Defaults.StartingUnits),
		MonthlyGrowthPercent: decimal.NewFromFloat(c.Defaults.MonthlyGrowthPercent),
		PriceScenarioPercent: decimal.NewFromFloat(c.Defaults.PriceScenarioPercent),
	}

	if c.Appearance.MonthLabels == "calendar" {
		p.LabelStyle = model.LabelCalendar
		p.StartMonth = parseMonth(c.Appearance.StartMonth)
	}
	return p
}

func parseMonth(name string) time.Month {
	for m := time.January; m <= time.December; m++ {
		if len(name) >= 3 && m.String()[:3] == name[:3] {
			return m
		}
	}
	return time.January
}
