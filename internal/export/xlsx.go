package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"margincast/internal/model"
)

const (
	sheetProjection = "Projection"
	sheetSummary    = "Summary"
)

// WriteWorkbook writes the projection and summary to an XLSX workbook at
// path. Numeric cells hold numbers (not strings) so the spreadsheet can
// chart them directly; margins are percentages, not fractions.
func WriteWorkbook(path string, records []model.PeriodRecord, s model.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetProjection); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, name := range PeriodHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetProjection, cell, name); err != nil {
			return fmt.Errorf("writing header %s: %w", name, err)
		}
	}

	for i, r := range records {
		values := []any{
			r.Label,
			r.UnitsSold.InexactFloat64(),
			r.Revenue.InexactFloat64(),
			r.COGS.InexactFloat64(),
			r.GrossProfit.InexactFloat64(),
			r.NetProfit.InexactFloat64(),
			r.GrossMarginPct.InexactFloat64(),
			r.NetMarginPct.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetProjection, cell, v); err != nil {
				return fmt.Errorf("writing period %d: %w", r.Period, err)
			}
		}
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	for i, row := range summaryRows(s) {
		nameCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, nameCell, row[0]); err != nil {
			return fmt.Errorf("writing summary metric %s: %w", row[0], err)
		}
		if err := f.SetCellValue(sheetSummary, valueCell, row[1]); err != nil {
			return fmt.Errorf("writing summary value %s: %w", row[0], err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
