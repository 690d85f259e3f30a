package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMixChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix.png")
	err := ExportMixChart(MixDiagramData{
		Title: "Mix Proportions",
		Bars: []Bar{
			{Label: "Cement", Value: 400},
			{Label: "Water", Value: 190},
			{Label: "Fine agg.", Value: 675},
			{Label: "Coarse agg.", Value: 1000},
		},
	}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportComparisonChartMismatch(t *testing.T) {
	err := ExportComparisonChart("Comparison",
		[]Bar{{Label: "Cement", Value: 400}},
		nil,
		filepath.Join(t.TempDir(), "cmp.png"))
	assert.Error(t, err)
}
