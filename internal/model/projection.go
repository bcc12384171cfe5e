package model

import "github.com/shopspring/decimal"

// PeriodRecord is one projected month. Records are immutable once computed
// and ordered by Period.
type PeriodRecord struct {
	Period    int    // 1-based period index
	Label     string // "Month 3" or "Mar", per LabelStyle
	UnitsSold decimal.Decimal

	Revenue     decimal.Decimal
	COGS        decimal.Decimal
	GrossProfit decimal.Decimal
	NetProfit   decimal.Decimal

	// Margins are 0 (not undefined) when Revenue is 0.
	GrossMarginPct decimal.Decimal
	NetMarginPct   decimal.Decimal
}

// BreakEven is the break-even result. When contribution per unit is zero or
// negative the economics are degenerate and Achievable is false; callers
// must branch on it instead of reading UnitsPerMonth.
type BreakEven struct {
	Achievable    bool
	UnitsPerMonth decimal.Decimal
}

// Summary holds aggregate statistics derived from a full projection.
// It has no identity of its own: it is recomputed from scratch whenever
// parameters change.
type Summary struct {
	Periods int

	TotalRevenue     decimal.Decimal
	TotalCOGS        decimal.Decimal
	TotalGrossProfit decimal.Decimal
	TotalNetProfit   decimal.Decimal

	// Average margins are the arithmetic mean of the per-period percentages
	// (mean of ratios). This deliberately differs from margin-on-totals
	// whenever period revenues are unequal.
	AvgGrossMarginPct decimal.Decimal
	AvgNetMarginPct   decimal.Decimal

	MeanRevenue   decimal.Decimal
	MeanNetProfit decimal.Decimal

	ContributionPerUnit decimal.Decimal
	BreakEven           BreakEven

	// GrowthRatePercent echoes the input growth rate so classification can
	// work from the summary alone.
	GrowthRatePercent decimal.Decimal

	// HealthScore is a 0-100 composite of four fixed-weight signals.
	HealthScore int
}
