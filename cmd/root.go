package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gomix/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomix",
	Short: "Concrete Mix Design Tool",
	Long: `gomix - Go Concrete Mix Designer

A CLI tool for proportioning concrete mixes for 1 m³ of concrete.

This tool helps engineers perform:
  - Absolute-volume mix proportioning (fixed cement content)
  - Empirical mix proportioning from strength and slump
  - Sustainable mix optimization (SCM and recycled aggregate substitution)
  - Mix table generation across the selectable input ranges

The formulas are simplified rules of thumb for preliminary design,
not a substitute for trial batches or code-based proportioning.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomix v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Concrete Mix Designer                                ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for proportioning concrete mixes per cubic meter.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Absolute-volume method with material specific gravities")
		fmt.Println("    • Empirical proportioning from target strength and slump")
		fmt.Println("    • Sustainable mix optimization with SCM and recycled aggregate")
		fmt.Println("    • Spreadsheet, PDF and chart export of designed mixes")
		fmt.Println()
		fmt.Println("  Use 'gomix --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
