package model

// Signal is a coarse classification of business performance derived from a
// Summary. The first three describe profitability, the last three growth.
type Signal int

const (
	SignalHealthy Signal = iota
	SignalThin
	SignalBroken
	SignalScaling
	SignalFlat
	SignalDeclining
)

var signalNames = [...]string{
	SignalHealthy:   "healthy",
	SignalThin:      "thin",
	SignalBroken:    "broken",
	SignalScaling:   "scaling",
	SignalFlat:      "flat",
	SignalDeclining: "declining",
}

func (s Signal) String() string {
	if s < 0 || int(s) >= len(signalNames) {
		return "unknown"
	}
	return signalNames[s]
}
