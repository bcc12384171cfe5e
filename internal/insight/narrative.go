package insight

import (
	"fmt"
	"strings"

	"margincast/internal/model"
)

// Narrative returns the canned one-liner for a signal.
func Narrative(sig model.Signal) string {
	switch sig {
	case model.SignalHealthy:
		return "Profitability is healthy: net margins clear the double-digit bar with room to absorb cost shocks."
	case model.SignalThin:
		return "The business is profitable but margins are thin; small cost or price movements can flip months negative."
	case model.SignalBroken:
		return "The model loses money at current volume: fixed costs exceed what gross profit brings in."
	case model.SignalScaling:
		return "Unit volume is compounding month over month; revenue growth outpaces the flat fixed-cost base."
	case model.SignalFlat:
		return "Volume is flat across the horizon; improvements must come from price or cost, not scale."
	case model.SignalDeclining:
		return "Unit volume is shrinking each month; the projection decays toward fixed-cost-only losses."
	default:
		return ""
	}
}

// Report builds the executive-summary paragraph for a projection. The
// break-even sentence branches on the explicit not-achievable state rather
// than printing a number that does not exist.
func Report(s model.Summary) string {
	a := Classify(s)

	var b strings.Builder
	b.WriteString(Narrative(a.Profitability))
	b.WriteString(" ")
	b.WriteString(Narrative(a.Growth))
	b.WriteString(" ")

	if s.BreakEven.Achievable {
		fmt.Fprintf(&b, "Break-even sits at %s units per month against a mean volume implied by %s in monthly revenue.",
			s.BreakEven.UnitsPerMonth.Round(0), s.MeanRevenue.Round(0))
	} else {
		b.WriteString("Break-even is not achievable at this price point: each unit sold fails to cover its own cost, so volume cannot fix the economics.")
	}

	fmt.Fprintf(&b, " Overall health score: %d/100.", s.HealthScore)
	return b.String()
}
