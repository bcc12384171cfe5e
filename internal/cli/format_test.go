package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20000", "$20,000"},
		{"3500", "$3,500"},
		{"666.67", "$667"},
		{"49.99", "$49.99"},
		{"0", "$0.00"},
		{"-17900", "-$17,900"},
		{"-511.43", "-$511"},
		{"1234567.89", "$1,234,568"},
	}
	for _, tt := range tests {
		if got := FormatMoney("$", d(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"70", "70"},
		{"666.666", "666.7"},
		{"1000", "1,000"},
		{"0", "0"},
	}
	for _, tt := range tests {
		if got := FormatUnits(d(tt.in)); got != tt.want {
			t.Errorf("FormatUnits(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(d("60")); got != "60.00%" {
		t.Errorf("FormatPercent(60) = %q, want 60.00%%", got)
	}
	if got := FormatPercent(d("-511.428571")); got != "-511.43%" {
		t.Errorf("FormatPercent(-511.428571) = %q, want -511.43%%", got)
	}
	if got := FormatSignedPercent(d("5")); got != "+5.00%" {
		t.Errorf("FormatSignedPercent(5) = %q, want +5.00%%", got)
	}
	if got := FormatSignedPercent(d("-2")); got != "-2.00%" {
		t.Errorf("FormatSignedPercent(-2) = %q, want -2.00%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta("$", d("3500"), d("2300")); got != "+$1,200" {
		t.Errorf("FormatDelta = %q, want +$1,200", got)
	}
	if got := FormatDelta("$", d("2300"), d("3500")); got != "-$1,200" {
		t.Errorf("FormatDelta = %q, want -$1,200", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-20000, "-20,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(30); got != "30/100" {
		t.Errorf("FormatScore(30) = %q, want 30/100", got)
	}
}

func TestRenderTableSeparator(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Revenue", "$3,500"},
			{"---"},
			{"Net Profit", "-$17,900"},
		},
	})

	if !strings.Contains(out, "Revenue") || !strings.Contains(out, "-$17,900") {
		t.Fatalf("table missing cell content:\n%s", out)
	}
	// Separator row renders as a rule, not literal dashes
	if strings.Contains(out, "---") {
		t.Errorf("separator marker leaked into output:\n%s", out)
	}
}

func TestRenderSparklineRange(t *testing.T) {
	out := RenderSparkline([]float64{-17900, -17000, -16000, -15000})
	if out == "" {
		t.Fatal("empty sparkline for non-empty series")
	}
	runes := []rune(out)
	if len(runes) != 4 {
		t.Errorf("sparkline length = %d, want 4", len(runes))
	}
	// Min maps to the lowest block, max to the highest
	if runes[0] != '▁' {
		t.Errorf("first rune = %c, want ▁", runes[0])
	}
	if runes[3] != '█' {
		t.Errorf("last rune = %c, want █", runes[3])
	}
}
