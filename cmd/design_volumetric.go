package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gomix/internal/diagram"
	"github.com/alexiusacademia/gomix/internal/material"
	"github.com/alexiusacademia/gomix/internal/mix"
	"github.com/spf13/cobra"
)

var (
	// Design inputs
	volStrength float64
	volWCRatio  float64
	volFineFrac float64

	// Output options
	volShowDiagram bool
	volExportFile  string
)

var volumetricCmd = &cobra.Command{
	Use:   "volumetric",
	Short: "Proportion a mix by the absolute-volume method",
	Long: `Proportion a concrete mix for 1 m³ using the absolute-volume method.

Cement content is fixed at the trial value (400 kg/m³ by default), water
follows from the water-cement ratio, and the aggregates fill the remaining
volume split by the fine aggregate fraction. Component volumes are balanced
against the material specific gravities so they sum to exactly 1 m³.

Out-of-range inputs are clamped to the selectable ranges:
  w/c ratio      0.30 – 0.70
  fine fraction  0.30 – 0.60

Examples:
  # 30 MPa mix at w/c = 0.5 with 40% fine aggregate
  gomix design volumetric --strength 30 --wc 0.5 --fine-fraction 0.4

  # With volume balance diagram and chart export
  gomix design volumetric --strength 30 --wc 0.5 --fine-fraction 0.4 --diagram -o mix.png`,
	Run: runVolumetric,
}

func init() {
	designCmd.AddCommand(volumetricCmd)

	volumetricCmd.Flags().Float64VarP(&volStrength, "strength", "s", 30, "Target compressive strength (MPa)")
	volumetricCmd.Flags().Float64Var(&volWCRatio, "wc", 0.5, "Water-cement ratio by mass")
	volumetricCmd.Flags().Float64VarP(&volFineFrac, "fine-fraction", "f", 0.4, "Fine aggregate share of aggregate volume")

	volumetricCmd.Flags().BoolVar(&volShowDiagram, "diagram", false, "Show ASCII proportions and volume balance diagrams")
	volumetricCmd.Flags().StringVarP(&volExportFile, "output", "o", "", "Export proportions chart to file (png, svg, pdf)")
}

func runVolumetric(cmd *cobra.Command, args []string) {
	props, _, err := loadMaterials()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	wc := clampWarn("w/c ratio", volWCRatio, material.WCRatioMin, material.WCRatioMax)
	fineFrac := clampWarn("fine fraction", volFineFrac, material.FineFracMin, material.FineFracMax)

	result, err := mix.DesignVolumetric(mix.VolumetricInputs{
		StrengthMPa:           volStrength,
		WaterCementRatio:      wc,
		FineAggregateFraction: fineFrac,
	}, props)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONCRETE MIX DESIGN - ABSOLUTE VOLUME METHOD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Target strength (f'c):\t%.0f MPa\n", volStrength)
	fmt.Fprintf(w, "  Water-cement ratio:\t%.2f\n", wc)
	fmt.Fprintf(w, "  Fine aggregate fraction:\t%.2f\n", fineFrac)
	fmt.Fprintf(w, "  Trial cement content:\t%.0f kg/m³\n", props.CementContent)
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  SG cement:\t%.2f\n", props.SGCement)
	fmt.Fprintf(w, "  SG fine aggregate:\t%.2f\n", props.SGFine)
	fmt.Fprintf(w, "  SG coarse aggregate:\t%.2f\n", props.SGCoarse)
	fmt.Fprintf(w, "  SG water:\t%.2f\n", props.SGWater)
	w.Flush()
	fmt.Println()

	fmt.Println("VOLUME BALANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cement volume:\t%.4f m³\n", result.CementVolume)
	fmt.Fprintf(w, "  Water volume:\t%.4f m³\n", result.WaterVolume)
	fmt.Fprintf(w, "  Fine aggregate volume:\t%.4f m³\n", result.FineVolume)
	fmt.Fprintf(w, "  Coarse aggregate volume:\t%.4f m³\n", result.CoarseVolume)
	fmt.Fprintf(w, "  Total:\t%.4f m³\n", result.TotalVolume())
	w.Flush()
	fmt.Println()

	fmt.Println("MIX QUANTITIES (per 1 m³):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("DESIGNED MIX", []string{
		fmt.Sprintf("Cement:           %8.1f kg", result.Cement),
		fmt.Sprintf("Water:            %8.1f kg", result.Water),
		fmt.Sprintf("Fine aggregate:   %8.1f kg", result.Fine),
		fmt.Sprintf("Coarse aggregate: %8.1f kg", result.Coarse),
	}))
	fmt.Println()

	if volShowDiagram {
		data := volumetricDiagramData(result)
		fmt.Println(diagram.DrawASCIIMixChart(data))
		fmt.Println(diagram.DrawVolumeBalance(data))
	}

	if volExportFile != "" {
		data := volumetricDiagramData(result)
		if err := diagram.ExportMixChart(data, volExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", volExportFile)
		}
	}
}

func volumetricDiagramData(result *mix.Result) diagram.MixDiagramData {
	return diagram.MixDiagramData{
		Title: "MIX PROPORTIONS (kg per m³)",
		Bars: []diagram.Bar{
			{Label: "Cement", Value: result.Cement},
			{Label: "Water", Value: result.Water},
			{Label: "Fine agg.", Value: result.Fine},
			{Label: "Coarse agg.", Value: result.Coarse},
		},
		CementVolume: result.CementVolume,
		WaterVolume:  result.WaterVolume,
		FineVolume:   result.FineVolume,
		CoarseVolume: result.CoarseVolume,
	}
}
