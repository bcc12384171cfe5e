// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a currency amount for display, e.g. "$20,000" or
// "-$17,900". Precision drops as magnitude grows; exports never use this.
func FormatMoney(symbol string, v decimal.Decimal) string {
	if v.IsNegative() {
		return "-" + FormatMoney(symbol, v.Neg())
	}

	f := v.InexactFloat64()
	switch {
	case f >= 1000:
		return symbol + FormatNumber(v.Round(0).IntPart())
	case f >= 100:
		return symbol + v.Round(0).String()
	default:
		return symbol + v.Round(2).StringFixed(2)
	}
}

// FormatUnits formats a unit count, keeping one decimal only when the value
// is fractional, e.g. "666.7" but "70".
func FormatUnits(v decimal.Decimal) string {
	rounded := v.Round(1)
	if rounded.Equal(rounded.Round(0)) {
		return FormatNumber(rounded.IntPart())
	}
	return rounded.StringFixed(1)
}

// FormatPercent formats a percentage value (already scaled to 0-100),
// e.g. "60.00%" or "-511.43%".
func FormatPercent(v decimal.Decimal) string {
	return v.Round(2).StringFixed(2) + "%"
}

// FormatSignedPercent is FormatPercent with an explicit plus sign on
// non-negative values, used for growth and scenario rates.
func FormatSignedPercent(v decimal.Decimal) string {
	if v.IsNegative() {
		return FormatPercent(v)
	}
	return "+" + FormatPercent(v)
}

// FormatDelta formats the difference between two values as a signed money
// string, e.g. "+$1,200".
func FormatDelta(symbol string, current, previous decimal.Decimal) string {
	delta := current.Sub(previous)
	if delta.IsNegative() {
		return FormatMoney(symbol, delta)
	}
	return "+" + FormatMoney(symbol, delta)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatScore renders a health score as "72/100".
func FormatScore(score int) string {
	return fmt.Sprintf("%d/100", score)
}
