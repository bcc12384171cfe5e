// Package store provides a SQLite-backed library of named scenarios.
// Only input parameter sets are persisted; projections are always
// recomputed from scratch.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver

	"margincast/internal/model"
)

// ErrNotFound is returned when a named scenario does not exist.
var ErrNotFound = errors.New("scenario not found")

// Library is a SQLite-backed collection of saved parameter sets.
type Library struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant location of the scenario database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "margincast", "scenarios.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "margincast", "scenarios.db")
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Library, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating scenario dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Library{db: db}, nil
}

// Close closes the scenario database.
func (l *Library) Close() error {
	return l.db.Close()
}

// Scenario is a saved parameter set with its bookkeeping timestamps.
type Scenario struct {
	Name      string
	Params    model.Parameters
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Save upserts a named parameter set. Decimal fields are stored as TEXT so
// saved scenarios survive a roundtrip exactly.
func (l *Library) Save(name string, p model.Parameters) error {
	if name == "" {
		return fmt.Errorf("%w: scenario name must not be empty", model.ErrInvalidInput)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := l.db.Exec(`INSERT INTO scenarios
		(name, selling_price, unit_cost, fixed_monthly_cost, horizon_months,
		 starting_units, monthly_growth_pct, price_scenario_pct, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		 selling_price = excluded.selling_price,
		 unit_cost = excluded.unit_cost,
		 fixed_monthly_cost = excluded.fixed_monthly_cost,
		 horizon_months = excluded.horizon_months,
		 starting_units = excluded.starting_units,
		 monthly_growth_pct = excluded.monthly_growth_pct,
		 price_scenario_pct = excluded.price_scenario_pct,
		 updated_at = excluded.updated_at`,
		name, p.SellingPrice.String(), p.UnitCost.String(), p.FixedMonthlyCost.String(),
		p.HorizonMonths, p.StartingUnits.String(), p.MonthlyGrowthPercent.String(),
		p.PriceScenarioPercent.String(), now, now,
	)
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", name, err)
	}
	return nil
}

// Get loads a named parameter set.
func (l *Library) Get(name string) (model.Parameters, error) {
	row := l.db.QueryRow(`SELECT selling_price, unit_cost, fixed_monthly_cost,
		horizon_months, starting_units, monthly_growth_pct, price_scenario_pct
		FROM scenarios WHERE name = ?`, name)

	var price, cost, fixed, units, growth, scenario string
	var months int
	err := row.Scan(&price, &cost, &fixed, &months, &units, &growth, &scenario)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Parameters{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return model.Parameters{}, fmt.Errorf("loading scenario %q: %w", name, err)
	}

	return parseParams(name, price, cost, fixed, months, units, growth, scenario)
}

// List returns all saved scenarios, most recently updated first.
func (l *Library) List() ([]Scenario, error) {
	rows, err := l.db.Query(`SELECT name, selling_price, unit_cost, fixed_monthly_cost,
		horizon_months, starting_units, monthly_growth_pct, price_scenario_pct,
		created_at, updated_at
		FROM scenarios ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Scenario
	for rows.Next() {
		var s Scenario
		var price, cost, fixed, units, growth, scenario, created, updated string
		var months int
		if err := rows.Scan(&s.Name, &price, &cost, &fixed, &months, &units,
			&growth, &scenario, &created, &updated); err != nil {
			return nil, err
		}

		s.Params, err = parseParams(s.Name, price, cost, fixed, months, units, growth, scenario)
		if err != nil {
			return nil, err
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, created)
		s.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a named scenario.
func (l *Library) Delete(name string) error {
	res, err := l.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting scenario %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of saved scenarios.
func (l *Library) Count() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM scenarios").Scan(&count)
	return count, err
}

func parseParams(name, price, cost, fixed string, months int, units, growth, scenario string) (model.Parameters, error) {
	var p model.Parameters
	var err error

	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&p.SellingPrice, price},
		{&p.UnitCost, cost},
		{&p.FixedMonthlyCost, fixed},
		{&p.StartingUnits, units},
		{&p.MonthlyGrowthPercent, growth},
		{&p.PriceScenarioPercent, scenario},
	}
	for _, f := range fields {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return model.Parameters{}, fmt.Errorf("scenario %q holds a malformed value %q: %w", name, f.src, err)
		}
	}
	p.HorizonMonths = months
	return p, nil
}
