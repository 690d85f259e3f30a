package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawASCIIMixChart(t *testing.T) {
	out := DrawASCIIMixChart(MixDiagramData{
		Title: "MIX PROPORTIONS",
		Bars: []Bar{
			{Label: "Cement", Value: 400},
			{Label: "Water", Value: 190},
			{Label: "Coarse agg.", Value: 1000},
		},
	})

	assert.Contains(t, out, "MIX PROPORTIONS")
	assert.Contains(t, out, "Cement")
	assert.Contains(t, out, "400.0 kg")
	assert.Contains(t, out, "1000.0 kg")

	// The largest quantity gets the longest bar
	var cementLen, coarseLen int
	for _, line := range strings.Split(out, "\n") {
		bar := strings.Count(line, "█")
		switch {
		case strings.Contains(line, "Cement"):
			cementLen = bar
		case strings.Contains(line, "Coarse"):
			coarseLen = bar
		}
	}
	assert.Greater(t, coarseLen, cementLen)
}

func TestDrawASCIIMixChartEmpty(t *testing.T) {
	out := DrawASCIIMixChart(MixDiagramData{Title: "EMPTY"})
	assert.Contains(t, out, "no quantities")
}

func TestDrawVolumeBalance(t *testing.T) {
	out := DrawVolumeBalance(MixDiagramData{
		CementVolume: 0.127,
		WaterVolume:  0.200,
		FineVolume:   0.269,
		CoarseVolume: 0.404,
	})

	assert.Contains(t, out, "ABSOLUTE VOLUME BALANCE")
	assert.Contains(t, out, "Cement")
	assert.Contains(t, out, "Total: 1.0000 m³")
}

func TestDrawVolumeBalanceNoVolumes(t *testing.T) {
	assert.Empty(t, DrawVolumeBalance(MixDiagramData{}))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Cement: 400.0 kg", "Water: 190.0 kg"})

	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "Cement: 400.0 kg")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
}
