// Package export writes projection tables and summaries as CSV or XLSX.
// Exported numbers are raw decimal strings: no currency symbols, no
// thousands separators. Display formatting belongs to the presentation
// layer, not the export.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"margincast/internal/model"
)

// PeriodHeader is the column order of the projection export, matching the
// field order of PeriodRecord.
var PeriodHeader = []string{
	"Period",
	"UnitsSold",
	"Revenue",
	"COGS",
	"GrossProfit",
	"NetProfit",
	"GrossMarginPercent",
	"NetMarginPercent",
}

// NotAchievable is the exported value for a degenerate break-even. It is a
// word, not a number, so downstream consumers cannot mistake it for zero.
const NotAchievable = "not achievable"

// WritePeriodsCSV writes one header row and one row per period.
func WritePeriodsCSV(w io.Writer, records []model.PeriodRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PeriodHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Label,
			r.UnitsSold.String(),
			r.Revenue.String(),
			r.COGS.String(),
			r.GrossProfit.String(),
			r.NetProfit.String(),
			r.GrossMarginPct.String(),
			r.NetMarginPct.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing period %d: %w", r.Period, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the summary as metric/value rows.
func WriteSummaryCSV(w io.Writer, s model.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range summaryRows(s) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing metric %s: %w", row[0], err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func summaryRows(s model.Summary) [][]string {
	breakEven := NotAchievable
	if s.BreakEven.Achievable {
		breakEven = s.BreakEven.UnitsPerMonth.String()
	}
	return [][]string{
		{"Periods", fmt.Sprintf("%d", s.Periods)},
		{"TotalRevenue", s.TotalRevenue.String()},
		{"TotalCOGS", s.TotalCOGS.String()},
		{"TotalGrossProfit", s.TotalGrossProfit.String()},
		{"TotalNetProfit", s.TotalNetProfit.String()},
		{"AvgGrossMarginPercent", s.AvgGrossMarginPct.String()},
		{"AvgNetMarginPercent", s.AvgNetMarginPct.String()},
		{"ContributionPerUnit", s.ContributionPerUnit.String()},
		{"BreakEvenUnitsPerMonth", breakEven},
		{"HealthScore", fmt.Sprintf("%d", s.HealthScore)},
	}
}
