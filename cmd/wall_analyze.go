package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/aci"
	"github.com/alexiusacademia/gorcw/internal/shear"
	"github.com/spf13/cobra"
)

var (
	// Section inputs
	wallTag     string
	wallLength  float64
	wallThick   float64
	wallHeight  float64
	wallBarDia  float64
	wallBars    float64
	wallSpacing float64

	// Material inputs
	wallFc     float64
	wallFy     float64
	wallFce    float64
	wallFye    float64
	wallLambda float64
)

var wallAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze shear capacity of a structural wall",
	Long: `Calculate the design shear capacity (φVn) of a reinforced
concrete structural wall by the standard and annex methods.

  Standard: φVn = 0.6 Acv(0.083 αc λ √f'c + ρt fy)
  Annex:    φVn = 0.9 Ω × 1.5 Acv(0.17 αc λ √f'c + ρt fye)
            Ω = (f'c/f'ce)(fy/fye)

Examples:
  # 200 mm long, 20 mm thick, 300 mm tall wall with 10-12mm bars at 25 mm
  gorcw wall analyze --lw 200 --hw 20 --htw 300 --phit 12 --bars 10 --s 25 \
    --fc 28 --fy 420 --fce 28 --fye 420`,
	RunE: runWallAnalyze,
}

func init() {
	wallCmd.AddCommand(wallAnalyzeCmd)

	wallAnalyzeCmd.Flags().StringVar(&wallTag, "tag", "W1", "Section tag")

	// Geometry flags
	wallAnalyzeCmd.Flags().Float64Var(&wallLength, "lw", 0, "Wall length lw (mm) [required]")
	wallAnalyzeCmd.Flags().Float64Var(&wallThick, "hw", 0, "Wall web thickness used for Acv (mm) [required]")
	wallAnalyzeCmd.Flags().Float64Var(&wallHeight, "htw", 0, "Total wall height (mm) [required]")

	// Reinforcement flags
	wallAnalyzeCmd.Flags().Float64Var(&wallBarDia, "phit", 0, "Web bar diameter (mm) [required]")
	wallAnalyzeCmd.Flags().Float64Var(&wallBars, "bars", 0, "Number of web bars [required]")
	wallAnalyzeCmd.Flags().Float64Var(&wallSpacing, "s", 0, "Web bar spacing (mm) [required]")

	// Material flags
	wallAnalyzeCmd.Flags().Float64Var(&wallFc, "fc", 28, "Specified concrete strength f'c (MPa)")
	wallAnalyzeCmd.Flags().Float64Var(&wallFy, "fy", 420, "Specified steel yield strength fy (MPa)")
	wallAnalyzeCmd.Flags().Float64Var(&wallFce, "fce", 0, "Expected concrete strength f'ce (MPa), defaults to f'c")
	wallAnalyzeCmd.Flags().Float64Var(&wallFye, "fye", 0, "Expected steel yield strength fye (MPa), defaults to fy")
	wallAnalyzeCmd.Flags().Float64Var(&wallLambda, "lambda", 0, "Lightweight concrete factor λ, defaults to config default_lambda")

	for _, name := range []string{"lw", "hw", "htw", "phit", "bars", "s"} {
		wallAnalyzeCmd.MarkFlagRequired(name)
	}
}

func runWallAnalyze(cmd *cobra.Command, args []string) error {
	lambda := wallLambda
	if !cmd.Flags().Changed("lambda") {
		lambda = cfg.DefaultLambda
	}

	in := shear.Input{
		Tag:     wallTag,
		Lw:      wallLength,
		Hw:      wallThick,
		Htw:     wallHeight,
		PhiT:    wallBarDia,
		NumBars: wallBars,
		S:       wallSpacing,
		Fc:      wallFc,
		Fy:      wallFy,
		Fce:     wallFce,
		Fye:     wallFye,
		Lambda:  &lambda,
	}
	if !cmd.Flags().Changed("fce") {
		in.Fce = in.Fc
	}
	if !cmd.Flags().Changed("fye") {
		in.Fye = in.Fy
	}

	ev, err := shear.Evaluate(in)
	if err != nil {
		return err
	}
	sec, mat, res := ev.Section, ev.Material, ev.Result

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STRUCTURAL WALL SHEAR ANALYSIS - ACI 318 §18.10")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Section: %s\n", sec.Tag())
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wall length (lw):\t%.0f mm\n", sec.WallLength())
	fmt.Fprintf(w, "  Web thickness (h):\t%.0f mm\n", sec.WallHeight())
	fmt.Fprintf(w, "  Wall height (hw):\t%.0f mm\n", sec.TotalWallHeight())
	fmt.Fprintf(w, "  Web bars:\t%g - %.0fmm @ %.0f mm\n", sec.NumBars(), sec.BarDiameter(), sec.Spacing())
	fmt.Fprintf(w, "  f'c / f'ce:\t%.1f / %.1f MPa\n", mat.Fc(), mat.Fce())
	fmt.Fprintf(w, "  fy / fye:\t%.1f / %.1f MPa\n", mat.Fy(), mat.Fye())
	fmt.Fprintf(w, "  λ:\t%.2f\n", mat.Lambda())
	w.Flush()
	fmt.Println()

	// Section properties
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shear area (Acv):\t%.0f mm²\n", sec.SectionArea())
	fmt.Fprintf(w, "  Moment of inertia (Ig):\t%.4g mm⁴\n", sec.MomentOfInertia())
	fmt.Fprintf(w, "  hw/lw:\t%.3f\n", sec.HeightToLengthRatio())
	fmt.Fprintf(w, "  Bar area:\t%.2f mm²\n", sec.BarArea())
	fmt.Fprintf(w, "  Web steel area:\t%.2f mm²\n", sec.ReinforcementArea())
	fmt.Fprintf(w, "  ρt:\t%.6f\n", sec.Rho())
	fmt.Fprintf(w, "  αc:\t%.4f\n", sec.AlphaC())
	w.Flush()
	fmt.Println()

	// Overstrength
	fmt.Println("OVERSTRENGTH:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  f'c / f'ce:\t%.4f\n", mat.ConcreteOverstrength())
	fmt.Fprintf(w, "  fy / fye:\t%.4f\n", mat.SteelOverstrength())
	fmt.Fprintf(w, "  Total (Ω):\t%.4f\n", mat.TotalOverstrength())
	w.Flush()
	fmt.Println()

	// Capacities
	fmt.Println("SHEAR CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Method\tφ\tVn (kN)\tφVn (kN)\n")
	fmt.Fprintf(w, "  ──────\t─\t───────\t────────\n")
	fmt.Fprintf(w, "  Standard\t%.2f\t%.2f\t%.2f\n", aci.PhiShear, res.NominalStandard/1000, res.DesignStandard/1000)
	fmt.Fprintf(w, "  Annex\t%.3f\t%.2f\t%.2f\n", res.PhiAnnex, res.NominalAnnex/1000, res.DesignAnnex/1000)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  STANDARD φVn = %.2f kN\n", res.DesignStandard/1000)
	fmt.Printf("  ║  ANNEX    φVn = %.2f kN\n", res.DesignAnnex/1000)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	return nil
}
