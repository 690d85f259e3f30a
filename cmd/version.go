package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomix/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomix",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomix v%s\n", version.Version)
		fmt.Println("Concrete Mix Design Tool")
		fmt.Println("Simplified proportioning for preliminary mix design")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
