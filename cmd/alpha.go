package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	alphaFrom  float64
	alphaTo    float64
	alphaSteps int
	alphaPlot  bool
)

var alphaCmd = &cobra.Command{
	Use:   "alpha",
	Short: "Tabulate the wall shear coefficient αc",
	Long: `Print the shear coefficient αc of ACI 318 Section 18.10.4.1
against the wall height-to-length ratio hw/lw.

  αc = 0.25 for hw/lw <= 1.5
  αc = 0.17 for hw/lw >= 2.0
  linear interpolation in between

Examples:
  gorcw alpha
  gorcw alpha --from 1 --to 3 --steps 9 --plot`,
	RunE: runAlpha,
}

func init() {
	rootCmd.AddCommand(alphaCmd)

	alphaCmd.Flags().Float64Var(&alphaFrom, "from", 1.0, "First hw/lw ratio")
	alphaCmd.Flags().Float64Var(&alphaTo, "to", 2.5, "Last hw/lw ratio")
	alphaCmd.Flags().IntVar(&alphaSteps, "steps", 11, "Number of ratios tabulated")
	alphaCmd.Flags().BoolVar(&alphaPlot, "plot", false, "Show ASCII curve")
}

func runAlpha(cmd *cobra.Command, args []string) error {
	if alphaTo <= alphaFrom {
		return fmt.Errorf("invalid range: from=%.2f, to=%.2f", alphaFrom, alphaTo)
	}
	if alphaSteps < 2 {
		return fmt.Errorf("invalid steps: %d", alphaSteps)
	}

	ratios, alphas := diagram.AlphaSamples(alphaFrom, alphaTo, alphaSteps)

	fmt.Println()
	fmt.Println("SHEAR COEFFICIENT αc:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  hw/lw\tαc\n")
	fmt.Fprintf(w, "  ─────\t──\n")
	for i := range ratios {
		fmt.Fprintf(w, "  %.3f\t%.4f\n", ratios[i], alphas[i])
	}
	w.Flush()
	fmt.Println()

	if alphaPlot {
		fmt.Println(diagram.DrawAlphaCurve(alphaFrom, alphaTo, 60))
	}
	return nil
}
