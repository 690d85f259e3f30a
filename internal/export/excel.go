// Package export writes mix design results to spreadsheet and PDF files
// for sharing outside the terminal.
package export

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomix/internal/mix"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Mix Designs"

// TableRow is one empirical design across the selectable input grid.
type TableRow struct {
	StrengthMPa float64
	SlumpMm     float64
	Result      *mix.Result
}

// ExportTable writes a grid of empirical mix designs to an xlsx workbook.
func ExportTable(path string, rows []TableRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("no designs to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"Strength (MPa)", "Slump (mm)",
		"Cement (kg)", "Water (kg)", "Fine Agg. (kg)", "Coarse Agg. (kg)", "w/c",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []float64{
			row.StrengthMPa, row.SlumpMm,
			row.Result.Cement, row.Result.Water, row.Result.Fine, row.Result.Coarse,
			row.Result.WCRatio,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, round(v)); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "G", 15); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
