package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"margincast/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func baseParams(t *testing.T) model.Parameters {
	t.Helper()
	return model.Parameters{
		SellingPrice:     dec(t, "50"),
		UnitCost:         dec(t, "20"),
		FixedMonthlyCost: dec(t, "20000"),
		HorizonMonths:    6,
		StartingUnits:    dec(t, "70"),
	}
}

func TestProjectFlatScenario(t *testing.T) {
	// sellingPrice=50, unitCost=20, fixed=20000, 6 months, 70 units, no
	// growth, no price scenario: every period is identical.
	records, err := Project(baseParams(t))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("got %d records, want 6", len(records))
	}

	for i, r := range records {
		if r.Period != i+1 {
			t.Errorf("record %d: Period = %d, want %d", i, r.Period, i+1)
		}
		if !r.UnitsSold.Equal(dec(t, "70")) {
			t.Errorf("record %d: UnitsSold = %s, want 70", i, r.UnitsSold)
		}
		if !r.Revenue.Equal(dec(t, "3500")) {
			t.Errorf("record %d: Revenue = %s, want 3500", i, r.Revenue)
		}
		if !r.COGS.Equal(dec(t, "1400")) {
			t.Errorf("record %d: COGS = %s, want 1400", i, r.COGS)
		}
		if !r.GrossProfit.Equal(dec(t, "2100")) {
			t.Errorf("record %d: GrossProfit = %s, want 2100", i, r.GrossProfit)
		}
		if !r.NetProfit.Equal(dec(t, "-17900")) {
			t.Errorf("record %d: NetProfit = %s, want -17900", i, r.NetProfit)
		}
		if !r.GrossMarginPct.Equal(dec(t, "60")) {
			t.Errorf("record %d: GrossMarginPct = %s, want 60", i, r.GrossMarginPct)
		}
		if !r.NetMarginPct.Round(2).Equal(dec(t, "-511.43")) {
			t.Errorf("record %d: NetMarginPct = %s, want ~-511.43", i, r.NetMarginPct)
		}
	}

	be := BreakEven(baseParams(t))
	if !be.Achievable {
		t.Fatal("BreakEven not achievable, want achievable")
	}
	if !be.UnitsPerMonth.Round(2).Equal(dec(t, "666.67")) {
		t.Errorf("BreakEven = %s, want ~666.67", be.UnitsPerMonth)
	}
}

func TestProjectHorizonLength(t *testing.T) {
	for _, months := range []int{1, 3, 12, 24} {
		p := baseParams(t)
		p.HorizonMonths = months
		records, err := Project(p)
		if err != nil {
			t.Fatalf("Project(%d months): %v", months, err)
		}
		if len(records) != months {
			t.Errorf("Project(%d months) returned %d records", months, len(records))
		}
	}
}

func TestProjectRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Parameters)
	}{
		{"zero horizon", func(p *model.Parameters) { p.HorizonMonths = 0 }},
		{"negative horizon", func(p *model.Parameters) { p.HorizonMonths = -3 }},
		{"zero price", func(p *model.Parameters) { p.SellingPrice = decimal.Zero }},
		{"negative price", func(p *model.Parameters) { p.SellingPrice = dec(t, "-5") }},
		{"negative unit cost", func(p *model.Parameters) { p.UnitCost = dec(t, "-1") }},
		{"negative fixed cost", func(p *model.Parameters) { p.FixedMonthlyCost = dec(t, "-1") }},
		{"negative starting units", func(p *model.Parameters) { p.StartingUnits = dec(t, "-1") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams(t)
			tc.mutate(&p)
			if _, err := Project(p); !errors.Is(err, model.ErrInvalidInput) {
				t.Errorf("Project error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestProjectIdempotent(t *testing.T) {
	p := baseParams(t)
	p.MonthlyGrowthPercent = dec(t, "7.5")
	p.PriceScenarioPercent = dec(t, "-3")

	a, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	b, err := Project(p)
	if err != nil {
		t.Fatalf("Project (second call): %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Revenue.Equal(b[i].Revenue) || !a[i].NetProfit.Equal(b[i].NetProfit) {
			t.Errorf("period %d differs between identical calls", i+1)
		}
	}
}

func TestProjectNegativeGrowthClampsAtZero(t *testing.T) {
	p := baseParams(t)
	p.StartingUnits = dec(t, "10")
	p.MonthlyGrowthPercent = dec(t, "-150") // growth factor -0.5: clamps immediately
	p.HorizonMonths = 4

	records, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	for i, r := range records {
		if r.UnitsSold.IsNegative() {
			t.Errorf("period %d: UnitsSold = %s, must never be negative", i+1, r.UnitsSold)
		}
	}
	// After the first period every period is fully clamped.
	for i := 1; i < len(records); i++ {
		if !records[i].UnitsSold.IsZero() {
			t.Errorf("period %d: UnitsSold = %s, want 0", i+1, records[i].UnitsSold)
		}
	}
}

func TestZeroRevenueMarginsAreZero(t *testing.T) {
	p := baseParams(t)
	p.StartingUnits = decimal.Zero

	records, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	for i, r := range records {
		if !r.Revenue.IsZero() {
			t.Fatalf("period %d: Revenue = %s, want 0", i+1, r.Revenue)
		}
		if !r.GrossMarginPct.IsZero() || !r.NetMarginPct.IsZero() {
			t.Errorf("period %d: margins = %s/%s, want 0/0 at zero revenue",
				i+1, r.GrossMarginPct, r.NetMarginPct)
		}
		// Fixed costs still bite even with no sales.
		if !r.NetProfit.Equal(dec(t, "-20000")) {
			t.Errorf("period %d: NetProfit = %s, want -20000", i+1, r.NetProfit)
		}
	}
}

func TestBreakEvenSentinel(t *testing.T) {
	p := baseParams(t)

	// Price below cost: unreachable.
	p.SellingPrice = dec(t, "15")
	if be := BreakEven(p); be.Achievable {
		t.Errorf("price < cost: got achievable %s, want not achievable", be.UnitsPerMonth)
	}

	// Price equal to cost: contribution exactly 0, still unreachable.
	p.SellingPrice = dec(t, "20")
	if be := BreakEven(p); be.Achievable {
		t.Errorf("price == cost: got achievable %s, want not achievable", be.UnitsPerMonth)
	}

	// Scenario adjustment can push contribution below zero.
	p.SellingPrice = dec(t, "21")
	p.PriceScenarioPercent = dec(t, "-10") // effective 18.90 < cost 20
	if be := BreakEven(p); be.Achievable {
		t.Errorf("scenario-adjusted price < cost: got achievable, want not achievable")
	}

	// And back above.
	p.PriceScenarioPercent = dec(t, "10") // effective 23.10
	be := BreakEven(p)
	if !be.Achievable {
		t.Fatal("positive contribution: want achievable")
	}
	// 20000 / 3.10
	if !be.UnitsPerMonth.Round(0).Equal(dec(t, "6452")) {
		t.Errorf("BreakEven = %s, want ~6452", be.UnitsPerMonth)
	}
}

func TestSummarizeEmptyRejected(t *testing.T) {
	if _, err := Summarize(baseParams(t), nil); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("Summarize(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Summarize(baseParams(t), []model.PeriodRecord{}); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("Summarize(empty) error = %v, want ErrInvalidInput", err)
	}
}

// TestSummarizeMeanOfRatios pins the aggregation choice: the average net
// margin is the arithmetic mean of per-period margins, which differs from
// the margin computed on totals whenever period revenues are unequal.
func TestSummarizeMeanOfRatios(t *testing.T) {
	p := model.Parameters{
		SellingPrice:         dec(t, "10"),
		UnitCost:             dec(t, "5"),
		FixedMonthlyCost:     dec(t, "100"),
		HorizonMonths:        2,
		StartingUnits:        dec(t, "100"),
		MonthlyGrowthPercent: dec(t, "100"), // period 2 revenue is double period 1
	}

	records, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	s, err := Summarize(p, records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	// Period 1: revenue 1000, net 400, margin 40%.
	// Period 2: revenue 2000, net 900, margin 45%.
	meanOfRatios := dec(t, "42.5")
	if !s.AvgNetMarginPct.Equal(meanOfRatios) {
		t.Errorf("AvgNetMarginPct = %s, want %s", s.AvgNetMarginPct, meanOfRatios)
	}

	// Ratio of sums would be 1300/3000*100 = 43.33...; assert we did NOT
	// report that.
	ratioOfSums := s.TotalNetProfit.Div(s.TotalRevenue).Mul(dec(t, "100"))
	if s.AvgNetMarginPct.Equal(ratioOfSums) {
		t.Errorf("AvgNetMarginPct equals ratio-of-sums %s; aggregation choice regressed", ratioOfSums)
	}
}

func TestSummarizeTotalsAndHealth(t *testing.T) {
	p := baseParams(t)
	records, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	s, err := Summarize(p, records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if !s.TotalRevenue.Equal(dec(t, "21000")) {
		t.Errorf("TotalRevenue = %s, want 21000", s.TotalRevenue)
	}
	if !s.TotalNetProfit.Equal(dec(t, "-107400")) {
		t.Errorf("TotalNetProfit = %s, want -107400", s.TotalNetProfit)
	}
	if !s.ContributionPerUnit.Equal(dec(t, "30")) {
		t.Errorf("ContributionPerUnit = %s, want 30", s.ContributionPerUnit)
	}

	// Only the contribution bonus applies: net profit negative, growth
	// zero, fixed cost far above mean revenue.
	if s.HealthScore != 30 {
		t.Errorf("HealthScore = %d, want 30", s.HealthScore)
	}
}

func TestHealthScoreFullMarks(t *testing.T) {
	p := model.Parameters{
		SellingPrice:         dec(t, "100"),
		UnitCost:             dec(t, "30"),
		FixedMonthlyCost:     dec(t, "1000"),
		HorizonMonths:        6,
		StartingUnits:        dec(t, "500"),
		MonthlyGrowthPercent: dec(t, "5"),
	}
	records, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	s, err := Summarize(p, records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.HealthScore != 100 {
		t.Errorf("HealthScore = %d, want 100", s.HealthScore)
	}
}

func TestCalendarLabels(t *testing.T) {
	p := baseParams(t)
	p.LabelStyle = model.LabelCalendar
	p.StartMonth = 11 // November: exercises the year wrap
	p.HorizonMonths = 4

	records, err := Project(p)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	want := []string{"Nov", "Dec", "Jan", "Feb"}
	for i, r := range records {
		if r.Label != want[i] {
			t.Errorf("period %d label = %q, want %q", i+1, r.Label, want[i])
		}
	}
}
