package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomix/internal/export"
	"github.com/alexiusacademia/gomix/internal/material"
	"github.com/alexiusacademia/gomix/internal/mix"
	"github.com/spf13/cobra"
)

var (
	tableOutput       string
	tableStepStrength float64
	tableStepSlump    float64
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate a spreadsheet of empirical mixes across the input ranges",
	Long: `Generate empirical mix designs across the selectable input ranges
(strength 20–60 MPa, slump 25–150 mm) and write them to an xlsx workbook.

Examples:
  # Default 5 MPa / 25 mm steps
  gomix table --output mixes.xlsx

  # Coarser grid
  gomix table --output mixes.xlsx --step-strength 10 --step-slump 50`,
	Run: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "mixes.xlsx", "Output workbook path")
	tableCmd.Flags().Float64Var(&tableStepStrength, "step-strength", 5, "Strength step (MPa)")
	tableCmd.Flags().Float64Var(&tableStepSlump, "step-slump", 25, "Slump step (mm)")
}

func runTable(cmd *cobra.Command, args []string) {
	if tableStepStrength <= 0 || tableStepSlump <= 0 {
		fmt.Println("Error: steps must be positive")
		return
	}

	var rows []export.TableRow
	for s := material.StrengthMin; s <= material.StrengthMax; s += tableStepStrength {
		for sl := material.SlumpMin; sl <= material.SlumpMax; sl += tableStepSlump {
			result, err := mix.DesignEmpirical(mix.EmpiricalInputs{StrengthMPa: s, SlumpMm: sl})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			rows = append(rows, export.TableRow{StrengthMPa: s, SlumpMm: sl, Result: result})
		}
	}

	if err := export.ExportTable(tableOutput, rows); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %d mix designs to %s\n", len(rows), tableOutput)
}
