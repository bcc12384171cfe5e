// Package engine computes monthly financial projections and their derived
// statistics. Every function here is a pure, deterministic function of its
// arguments: no I/O, no shared state, no clock.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"margincast/internal/model"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Project turns a parameter set into an ordered sequence of exactly
// HorizonMonths period records. Units compound by the monthly growth rate
// and are floored at zero, so a negative growth rate decays toward zero
// instead of going negative.
func Project(p model.Parameters) ([]model.PeriodRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	price := p.EffectivePrice()
	growth := one.Add(p.MonthlyGrowthPercent.Div(hundred))

	units := p.StartingUnits
	if units.IsNegative() {
		units = decimal.Zero
	}

	records := make([]model.PeriodRecord, 0, p.HorizonMonths)
	for i := 0; i < p.HorizonMonths; i++ {
		if i > 0 {
			units = units.Mul(growth)
			if units.IsNegative() {
				units = decimal.Zero
			}
		}

		revenue := units.Mul(price)
		cogs := units.Mul(p.UnitCost)
		gross := revenue.Sub(cogs)
		net := gross.Sub(p.FixedMonthlyCost)

		// Margins are undefined at zero revenue; reported as 0 by contract.
		var grossPct, netPct decimal.Decimal
		if !revenue.IsZero() {
			grossPct = gross.Div(revenue).Mul(hundred)
			netPct = net.Div(revenue).Mul(hundred)
		}

		records = append(records, model.PeriodRecord{
			Period:         i + 1,
			Label:          p.PeriodLabel(i),
			UnitsSold:      units,
			Revenue:        revenue,
			COGS:           cogs,
			GrossProfit:    gross,
			NetProfit:      net,
			GrossMarginPct: grossPct,
			NetMarginPct:   netPct,
		})
	}

	return records, nil
}

// Summarize aggregates a projection into totals, mean margins, break-even,
// and the health score. The record slice must come from Project with the
// same parameters and must not be empty.
//
// Average margins are the arithmetic mean of each period's already-computed
// percentage, not the margin of the totals. The two differ whenever period
// revenues are unequal, and the mean-of-ratios form is the contract.
func Summarize(p model.Parameters, records []model.PeriodRecord) (model.Summary, error) {
	if len(records) == 0 {
		return model.Summary{}, fmt.Errorf("%w: cannot summarize an empty projection", model.ErrInvalidInput)
	}

	var s model.Summary
	s.Periods = len(records)

	var sumGrossPct, sumNetPct decimal.Decimal
	for _, r := range records {
		s.TotalRevenue = s.TotalRevenue.Add(r.Revenue)
		s.TotalCOGS = s.TotalCOGS.Add(r.COGS)
		s.TotalGrossProfit = s.TotalGrossProfit.Add(r.GrossProfit)
		s.TotalNetProfit = s.TotalNetProfit.Add(r.NetProfit)
		sumGrossPct = sumGrossPct.Add(r.GrossMarginPct)
		sumNetPct = sumNetPct.Add(r.NetMarginPct)
	}

	n := decimal.NewFromInt(int64(len(records)))
	s.AvgGrossMarginPct = sumGrossPct.Div(n)
	s.AvgNetMarginPct = sumNetPct.Div(n)
	s.MeanRevenue = s.TotalRevenue.Div(n)
	s.MeanNetProfit = s.TotalNetProfit.Div(n)

	s.ContributionPerUnit = p.ContributionPerUnit()
	s.BreakEven = BreakEven(p)
	s.GrowthRatePercent = p.MonthlyGrowthPercent
	s.HealthScore = healthScore(p, s)

	return s, nil
}

// BreakEven computes the unit volume per month at which net profit is zero.
// It uses the scenario-adjusted effective price, the same basis the
// projection uses, so the two views always describe the same scenario.
// When contribution per unit is zero or negative the result is the explicit
// not-achievable variant, never infinity or an error.
func BreakEven(p model.Parameters) model.BreakEven {
	contribution := p.ContributionPerUnit()
	if contribution.Sign() <= 0 {
		return model.BreakEven{}
	}
	return model.BreakEven{
		Achievable:    true,
		UnitsPerMonth: p.FixedMonthlyCost.Div(contribution),
	}
}

// Health score weights. Fixed by contract, not configurable.
const (
	scoreContribution = 30
	scoreNetProfit    = 30
	scoreGrowth       = 20
	scoreFixedCost    = 20
)

// healthScore sums four independent bonuses; the construction caps it at 100.
func healthScore(p model.Parameters, s model.Summary) int {
	score := 0
	if s.ContributionPerUnit.IsPositive() {
		score += scoreContribution
	}
	if s.MeanNetProfit.IsPositive() {
		score += scoreNetProfit
	}
	if p.MonthlyGrowthPercent.IsPositive() {
		score += scoreGrowth
	}
	if p.FixedMonthlyCost.LessThan(s.MeanRevenue) {
		score += scoreFixedCost
	}
	return score
}
