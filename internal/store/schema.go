package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name                 TEXT PRIMARY KEY,
    selling_price        TEXT NOT NULL,
    unit_cost            TEXT NOT NULL,
    fixed_monthly_cost   TEXT NOT NULL,
    horizon_months       INTEGER NOT NULL,
    starting_units       TEXT NOT NULL,
    monthly_growth_pct   TEXT NOT NULL,
    price_scenario_pct   TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`
