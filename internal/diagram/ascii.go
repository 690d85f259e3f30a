package diagram

import (
	"fmt"
	"strings"
)

// Bar is a single labeled quantity in a proportions chart.
type Bar struct {
	Label string
	Value float64 // kg/m³
}

// MixDiagramData holds data for drawing a mix proportions chart.
type MixDiagramData struct {
	Title string
	Bars  []Bar

	// Component absolute volumes (m³), drawn as a stacked unit-volume bar
	// when non-zero (volumetric method only)
	CementVolume float64
	WaterVolume  float64
	FineVolume   float64
	CoarseVolume float64
}

// DrawASCIIMixChart renders a horizontal bar chart of material quantities.
func DrawASCIIMixChart(data MixDiagramData) string {
	var sb strings.Builder

	barWidth := 40

	maxVal := 0.0
	maxLabel := 0
	for _, b := range data.Bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
		if len(b.Label) > maxLabel {
			maxLabel = len(b.Label)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len(data.Title))))
	sb.WriteString("\n")

	if maxVal <= 0 {
		sb.WriteString("  (no quantities to draw)\n")
		return sb.String()
	}

	for _, b := range data.Bars {
		barLen := int(b.Value / maxVal * float64(barWidth))
		if barLen < 1 && b.Value > 0 {
			barLen = 1
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.1f kg\n",
			maxLabel, b.Label, strings.Repeat("█", barLen), b.Value))
	}

	return sb.String()
}

// DrawVolumeBalance renders the absolute-volume split as a stacked bar over
// the 1 m³ unit volume.
func DrawVolumeBalance(data MixDiagramData) string {
	var sb strings.Builder

	total := data.CementVolume + data.WaterVolume + data.FineVolume + data.CoarseVolume
	if total <= 0 {
		return ""
	}

	width := 50
	segments := []struct {
		name string
		vol  float64
		fill string
	}{
		{"Cement", data.CementVolume, "▓"},
		{"Water", data.WaterVolume, "░"},
		{"Fine agg.", data.FineVolume, "▒"},
		{"Coarse agg.", data.CoarseVolume, "█"},
	}

	sb.WriteString("\n")
	sb.WriteString("  ABSOLUTE VOLUME BALANCE (1 m³)\n")
	sb.WriteString("  ──────────────────────────────\n\n")

	sb.WriteString("  │")
	used := 0
	for i, s := range segments {
		segLen := int(s.vol / total * float64(width))
		if i == len(segments)-1 {
			segLen = width - used
		}
		used += segLen
		sb.WriteString(strings.Repeat(s.fill, segLen))
	}
	sb.WriteString("│\n\n")

	for _, s := range segments {
		sb.WriteString(fmt.Sprintf("  %s %-12s %.4f m³ (%4.1f%%)\n",
			s.fill, s.name, s.vol, s.vol/total*100))
	}
	sb.WriteString(fmt.Sprintf("\n  Total: %.4f m³\n", total))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
