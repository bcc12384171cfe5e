// Package insight turns projection summaries into coarse signals and canned
// executive narrative. It is deliberately separate from the engine: the
// numbers never depend on anything here, and the text can be tested on its
// own.
package insight

import (
	"github.com/shopspring/decimal"

	"margincast/internal/model"
)

// Classification thresholds. The health-score weights live in the engine and
// are contractual; these only pick which narrative tone applies.
var (
	healthyNetMarginPct = decimal.NewFromInt(10)
	scalingGrowthPct    = decimal.NewFromInt(1)
	decliningGrowthPct  = decimal.NewFromInt(-1)
)

// Assessment pairs the two independent signal axes.
type Assessment struct {
	Profitability model.Signal // Healthy, Thin, or Broken
	Growth        model.Signal // Scaling, Flat, or Declining
}

// Classify maps a summary to its assessment. Pure: same summary, same answer.
func Classify(s model.Summary) Assessment {
	var a Assessment

	switch {
	case s.AvgNetMarginPct.GreaterThanOrEqual(healthyNetMarginPct) && s.MeanNetProfit.IsPositive():
		a.Profitability = model.SignalHealthy
	case s.MeanNetProfit.IsPositive():
		a.Profitability = model.SignalThin
	default:
		a.Profitability = model.SignalBroken
	}

	switch {
	case s.GrowthRatePercent.GreaterThan(scalingGrowthPct):
		a.Growth = model.SignalScaling
	case s.GrowthRatePercent.LessThan(decliningGrowthPct):
		a.Growth = model.SignalDeclining
	default:
		a.Growth = model.SignalFlat
	}

	return a
}

// Signals returns the applicable signals as a slice, profitability first.
func Signals(s model.Summary) []model.Signal {
	a := Classify(s)
	return []model.Signal{a.Profitability, a.Growth}
}
