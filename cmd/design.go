package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomix/internal/material"
	"github.com/spf13/cobra"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Concrete mix proportioning per cubic meter",
	Long: `Proportion a concrete mix for 1 m³ of concrete.

Subcommands:
  volumetric - Absolute-volume method from w/c ratio and aggregate split
  empirical  - Rule-of-thumb method from target strength and slump

The two methods use independent formula sets and are not reconciled
with each other.`,
}

// Shared flag across design subcommands: optional materials config file
var materialsFile string

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.PersistentFlags().StringVar(&materialsFile, "config", "", "Materials YAML file overriding default properties")
}

// loadMaterials resolves the material properties and substitution ratios,
// reading the --config file when one was given.
func loadMaterials() (material.Properties, material.Substitution, error) {
	if materialsFile == "" {
		return material.Default(), material.DefaultSubstitution(), nil
	}
	return material.LoadConfig(materialsFile)
}

// clampWarn limits v to [lo, hi] and prints a warning when it was clamped.
// Range validation lives here at the presentation boundary; the calculators
// assume in-range inputs.
func clampWarn(name string, v, lo, hi float64) float64 {
	clamped := material.Clamp(v, lo, hi)
	if clamped != v {
		fmt.Printf("  Warning: %s %.2f outside [%.2f, %.2f], using %.2f\n", name, v, lo, hi, clamped)
	}
	return clamped
}
