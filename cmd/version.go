package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcw",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get())
		fmt.Println("Reinforced Concrete Wall Shear Capacity Tool")
		fmt.Println("Based on ACI 318 Section 18.10 and the overstrength annex method")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
