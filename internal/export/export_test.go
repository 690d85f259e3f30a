package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomix/internal/material"
	"github.com/alexiusacademia/gomix/internal/mix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows(t *testing.T) []TableRow {
	t.Helper()
	var rows []TableRow
	for _, s := range []float64{20, 30, 40} {
		result, err := mix.DesignEmpirical(mix.EmpiricalInputs{StrengthMPa: s, SlumpMm: 75})
		require.NoError(t, err)
		rows = append(rows, TableRow{StrengthMPa: s, SlumpMm: 75, Result: result})
	}
	return rows
}

func TestExportTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixes.xlsx")
	require.NoError(t, ExportTable(path, sampleRows(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Strength (MPa)", header)

	// Second data row: strength 30, slump 75 → cement 400
	cement, err := f.GetCellValue(sheetName, "C3")
	require.NoError(t, err)
	assert.Equal(t, "400", cement)
}

func TestExportTableEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixes.xlsx")
	assert.Error(t, ExportTable(path, nil))
}

func TestExportPDF(t *testing.T) {
	base, err := mix.DesignEmpirical(mix.EmpiricalInputs{StrengthMPa: 30, SlumpMm: 75})
	require.NoError(t, err)
	opt := mix.NewOptimizer(material.DefaultSubstitution(), 1).Optimize(base, mix.EmpiricalInputs{StrengthMPa: 30, SlumpMm: 75})

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, ReportData{
		Method:      "Empirical",
		StrengthMPa: 30,
		SlumpMm:     75,
		Base:        base,
		Optimized:   opt,
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDFWithoutResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	assert.Error(t, ExportPDF(path, ReportData{Method: "Empirical"}))
}
