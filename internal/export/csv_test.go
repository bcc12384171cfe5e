package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"margincast/internal/engine"
	"margincast/internal/model"
)

func testParams(t *testing.T) model.Parameters {
	t.Helper()
	return model.Parameters{
		SellingPrice:     decimal.NewFromInt(50),
		UnitCost:         decimal.NewFromInt(20),
		FixedMonthlyCost: decimal.NewFromInt(20000),
		HorizonMonths:    2,
		StartingUnits:    decimal.NewFromInt(70),
	}
}

func TestWritePeriodsCSV(t *testing.T) {
	p := testParams(t)
	records, err := engine.Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePeriodsCSV(&buf, records); err != nil {
		t.Fatalf("WritePeriodsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 periods", len(lines))
	}
	if lines[0] != "Period,UnitsSold,Revenue,COGS,GrossProfit,NetProfit,GrossMarginPercent,NetMarginPercent" {
		t.Errorf("header = %q", lines[0])
	}

	// Numbers must be raw: no currency symbol, no thousands separator.
	if strings.ContainsAny(lines[1], "$") {
		t.Errorf("period row contains display formatting: %q", lines[1])
	}
	fields := strings.Split(lines[1], ",")
	if fields[0] != "Month 1" {
		t.Errorf("label = %q, want %q", fields[0], "Month 1")
	}
	if fields[2] != "3500" {
		t.Errorf("revenue = %q, want 3500", fields[2])
	}
	if fields[5] != "-17900" {
		t.Errorf("net profit = %q, want -17900", fields[5])
	}
}

func TestWriteSummaryCSVBreakEvenSentinel(t *testing.T) {
	p := testParams(t)
	p.UnitCost = decimal.NewFromInt(50) // contribution 0: degenerate
	records, err := engine.Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	s, err := engine.Summarize(p, records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, s); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "BreakEvenUnitsPerMonth,not achievable") {
		t.Errorf("summary export missing break-even sentinel:\n%s", buf.String())
	}
}

func TestWriteWorkbook(t *testing.T) {
	p := testParams(t)
	records, err := engine.Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	s, err := engine.Summarize(p, records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	path := filepath.Join(t.TempDir(), "projection.xlsx")
	if err := WriteWorkbook(path, records, s); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat workbook: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook file is empty")
	}
}
