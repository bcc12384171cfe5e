// Package model defines domain types for margincast projections.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks parameter or argument validation failures.
// Callers branch with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// LabelStyle selects how period labels are generated.
type LabelStyle int

const (
	// LabelMonthIndex produces "Month 1", "Month 2", ...
	LabelMonthIndex LabelStyle = iota
	// LabelCalendar produces "Jan", "Feb", ... starting at StartMonth.
	LabelCalendar
)

// Parameters holds the business inputs for one projection run.
// A value is built once per invocation and never mutated; the engine
// reads no state besides what is in here.
type Parameters struct {
	SellingPrice     decimal.Decimal
	UnitCost         decimal.Decimal
	FixedMonthlyCost decimal.Decimal
	HorizonMonths    int
	StartingUnits    decimal.Decimal

	// MonthlyGrowthPercent compounds units sold each period. May be negative.
	MonthlyGrowthPercent decimal.Decimal

	// PriceScenarioPercent is a one-time adjustment applied to SellingPrice
	// before projecting. May be negative.
	PriceScenarioPercent decimal.Decimal

	// Presentation-only label settings. Ignored by all arithmetic.
	LabelStyle LabelStyle
	StartMonth time.Month
}

var hundred = decimal.NewFromInt(100)

// Validate rejects parameter sets the engine must not see.
// Clamping is never done here; out-of-range values are the caller's
// problem to fix before projecting.
func (p Parameters) Validate() error {
	if p.HorizonMonths <= 0 {
		return fmt.Errorf("%w: horizon must be at least 1 month, got %d", ErrInvalidInput, p.HorizonMonths)
	}
	if !p.SellingPrice.IsPositive() {
		return fmt.Errorf("%w: selling price must be positive, got %s", ErrInvalidInput, p.SellingPrice)
	}
	if p.UnitCost.IsNegative() {
		return fmt.Errorf("%w: unit cost must not be negative, got %s", ErrInvalidInput, p.UnitCost)
	}
	if p.FixedMonthlyCost.IsNegative() {
		return fmt.Errorf("%w: fixed monthly cost must not be negative, got %s", ErrInvalidInput, p.FixedMonthlyCost)
	}
	if p.StartingUnits.IsNegative() {
		return fmt.Errorf("%w: starting units must not be negative, got %s", ErrInvalidInput, p.StartingUnits)
	}
	return nil
}

// EffectivePrice is the selling price after the one-time scenario adjustment.
func (p Parameters) EffectivePrice() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(1).Add(p.PriceScenarioPercent.Div(hundred)))
}

// ContributionPerUnit is the effective price minus unit cost — the amount
// each sold unit contributes toward fixed costs. Zero or negative means
// break-even is unreachable.
func (p Parameters) ContributionPerUnit() decimal.Decimal {
	return p.EffectivePrice().Sub(p.UnitCost)
}

// PeriodLabel returns the display label for period index i (0-based).
func (p Parameters) PeriodLabel(i int) string {
	if p.LabelStyle == LabelCalendar {
		start := p.StartMonth
		if start < time.January || start > time.December {
			start = time.January
		}
		m := time.Month((int(start)-1+i)%12 + 1)
		return m.String()[:3]
	}
	return fmt.Sprintf("Month %d", i+1)
}
