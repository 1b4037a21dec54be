package cmd

import (
	"github.com/spf13/cobra"
)

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Single structural wall shear analysis",
	Long: `Analyze the shear capacity of one reinforced concrete
structural wall given on the command line.

Subcommands:
  analyze  - Calculate section properties and both shear capacities

All calculations follow ACI 318 Section 18.10.4 and the
overstrength annex method.`,
}

func init() {
	rootCmd.AddCommand(wallCmd)
}
