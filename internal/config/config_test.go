package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"margincast/internal/model"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "margincast")
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.SellingPrice != 50 {
		t.Errorf("SellingPrice = %v, want 50", cfg.Defaults.SellingPrice)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Defaults.SellingPrice = 79.99
	cfg.Defaults.HorizonMonths = 18
	cfg.Appearance.MonthLabels = "calendar"
	cfg.Appearance.StartMonth = "Apr"
	cfg.FixedCosts = []FixedCostItem{
		{Name: "Salaries", Amount: 12000},
		{Name: "Rent", Amount: 3000},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Defaults.SellingPrice != 79.99 {
		t.Errorf("SellingPrice = %v, want 79.99", loaded.Defaults.SellingPrice)
	}
	if len(loaded.FixedCosts) != 2 {
		t.Fatalf("FixedCosts len = %d, want 2", len(loaded.FixedCosts))
	}
	if loaded.FixedCostTotal() != 15000 {
		t.Errorf("FixedCostTotal = %v, want 15000", loaded.FixedCostTotal())
	}
}

func TestParametersUsesBreakdownSum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.FixedMonthlyCost = 99999 // should be ignored
	cfg.FixedCosts = []FixedCostItem{
		{Name: "Salaries", Amount: 12000},
		{Name: "Marketing", Amount: 6000},
	}

	p := cfg.Parameters()
	if p.FixedMonthlyCost.String() != "18000" {
		t.Errorf("FixedMonthlyCost = %s, want 18000", p.FixedMonthlyCost)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default parameters should validate, got %v", err)
	}
}

func TestParametersCalendarLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.MonthLabels = "calendar"
	cfg.Appearance.StartMonth = "Sep"

	p := cfg.Parameters()
	if p.LabelStyle != model.LabelCalendar {
		t.Fatalf("LabelStyle = %v, want LabelCalendar", p.LabelStyle)
	}
	if p.StartMonth != time.September {
		t.Errorf("StartMonth = %v, want September", p.StartMonth)
	}
	if got := p.PeriodLabel(0); got != "Sep" {
		t.Errorf("PeriodLabel(0) = %q, want Sep", got)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := withTempConfigDir(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}
