package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcw/internal/batch"
	"github.com/alexiusacademia/gorcw/internal/diagram"
	"github.com/alexiusacademia/gorcw/internal/log"
	"github.com/alexiusacademia/gorcw/internal/report"
	"github.com/alexiusacademia/gorcw/internal/table"
	"github.com/spf13/cobra"
)

var (
	batchInput      string
	batchOutput     string
	batchWorkers    int
	batchOnError    string
	batchPrecision  int
	batchTranspose  bool
	batchDetail     bool
	batchChart      string
	batchAlphaChart string
	batchReport     string
	batchSummary    bool
	batchBars       bool
	batchQuiet      bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate shear capacities for a table of walls",
	Long: `Read a table of wall sections and materials (CSV or XLSX),
calculate both design shear capacities for every row and write
a result table keyed by section tag.

Required input columns (case and surrounding spaces are ignored):
  tag, l_w, h_w, h_tw, phi_t, num_bars, s, f_c, f_y, f_ce, f_ye
Optional:
  lambda_c (defaults to 1.0 or default_lambda from the config)

Output columns:
  tag, design_capacity_standard, design_capacity_annex

Examples:
  # Read inputs.csv and write outputs.csv in the current directory
  gorcw batch

  # Excel in, Excel out, with a chart and a PDF report
  gorcw batch -i walls.xlsx -o capacities.xlsx --chart capacities.png --report walls.pdf

  # Skip invalid rows instead of stopping, four workers
  gorcw batch -i walls.csv --on-error skip --workers 4 --summary`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// File flags
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "inputs.csv", "Input table (.csv or .xlsx)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "outputs.csv", "Output table (.csv or .xlsx)")

	// Run flags
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 1, "Number of rows calculated in parallel")
	batchCmd.Flags().StringVar(&batchOnError, "on-error", "abort", "Row failure policy: abort or skip")

	// Output layout flags
	batchCmd.Flags().IntVar(&batchPrecision, "precision", -1, "Decimal places in CSV output (-1 = shortest exact)")
	batchCmd.Flags().BoolVar(&batchTranspose, "transpose", false, "Write tags, standard and annex capacities as three lines")
	batchCmd.Flags().BoolVar(&batchDetail, "detail", false, "Add nominal capacities and section properties to the output")

	// Report flags
	batchCmd.Flags().StringVar(&batchChart, "chart", "", "Export capacity bar chart (png, svg, pdf)")
	batchCmd.Flags().StringVar(&batchAlphaChart, "alpha-chart", "", "Export αc curve with every wall marked (png, svg, pdf)")
	batchCmd.Flags().StringVar(&batchReport, "report", "", "Write a PDF report")
	batchCmd.Flags().BoolVar(&batchSummary, "summary", false, "Print capacity statistics")
	batchCmd.Flags().BoolVar(&batchBars, "bars", false, "Print ASCII capacity bars")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Do not print the result table")
}

// applyBatchConfig fills every flag the user did not set from the config file
func applyBatchConfig(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("input") {
		batchInput = cfg.Input
	}
	if !flags.Changed("output") {
		batchOutput = cfg.Output
	}
	if !flags.Changed("workers") {
		batchWorkers = cfg.Workers
	}
	if !flags.Changed("on-error") {
		batchOnError = cfg.OnError
	}
	if !flags.Changed("precision") && cfg.Precision != nil {
		batchPrecision = *cfg.Precision
	}
	if !flags.Changed("transpose") {
		batchTranspose = cfg.Transpose
	}
	if !flags.Changed("detail") {
		batchDetail = cfg.Detail
	}
	if !flags.Changed("chart") {
		batchChart = cfg.Chart
	}
	if !flags.Changed("report") {
		batchReport = cfg.Report
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	applyBatchConfig(cmd)

	policy, err := batch.ParsePolicy(batchOnError)
	if err != nil {
		return err
	}
	if batchPrecision < -1 {
		return fmt.Errorf("invalid precision: %d", batchPrecision)
	}

	rows, err := table.ReadFile(batchInput, table.ReadOptions{DefaultLambda: cfg.DefaultLambda})
	if err != nil {
		return fmt.Errorf("reading %s: %w", batchInput, err)
	}
	log.Infow("input loaded", "file", batchInput, "rows", len(rows))

	result, err := batch.Run(cmd.Context(), rows, batch.Options{Workers: batchWorkers, Policy: policy})
	if err != nil {
		return err
	}
	outputs := result.Outputs()

	err = table.WriteFile(batchOutput, outputs, table.WriteOptions{
		Precision: batchPrecision,
		Transpose: batchTranspose,
		Detail:    batchDetail,
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", batchOutput, err)
	}

	if !batchQuiet {
		printBatchResults(outputs, result.Failed)
	}

	summary := result.Summarize()
	if batchSummary {
		printBatchSummary(summary)
	}

	bars := make([]diagram.CapacityBar, len(outputs))
	for i, o := range outputs {
		bars[i] = diagram.CapacityBar{Tag: o.Tag, Standard: o.DesignStandard, Annex: o.DesignAnnex}
	}
	if batchBars {
		fmt.Println(diagram.DrawCapacityBars(bars, 40))
	}

	if batchChart != "" {
		if err := diagram.ExportCapacityChart(bars, batchChart); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Printf("Chart exported to: %s\n", batchChart)
	}

	if batchAlphaChart != "" {
		points := make([]diagram.WallPoint, len(outputs))
		for i, o := range outputs {
			points[i] = diagram.WallPoint{Tag: o.Tag, Ratio: o.HeightToLengthRatio, AlphaC: o.AlphaC}
		}
		if err := diagram.ExportAlphaCurve(points, batchAlphaChart); err != nil {
			return fmt.Errorf("exporting αc chart: %w", err)
		}
		fmt.Printf("αc chart exported to: %s\n", batchAlphaChart)
	}

	if batchReport != "" {
		err := report.WriteFile(batchReport, report.Input{
			Source:  batchInput,
			Outputs: outputs,
			Summary: summary,
			Failed:  result.Failed,
		})
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to: %s\n", batchReport)
	}

	fmt.Printf("Data saved to %s (%d of %d walls)\n", batchOutput, len(outputs), len(rows))
	return nil
}

func printBatchResults(outputs []table.Output, failed []*batch.RowError) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STRUCTURAL WALL SHEAR CAPACITY - ACI 318 §18.10")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tag\thw/lw\tαc\tρt\tφVn std (kN)\tφVn annex (kN)\n")
	fmt.Fprintf(w, "  ───\t─────\t──\t──\t────────────\t──────────────\n")
	for _, o := range outputs {
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.5f\t%.2f\t%.2f\n",
			o.Tag, o.HeightToLengthRatio, o.AlphaC, o.Rho, o.DesignStandard/1000, o.DesignAnnex/1000)
	}
	w.Flush()
	fmt.Println()

	if len(failed) > 0 {
		fmt.Println("SKIPPED ROWS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, f := range failed {
			fmt.Printf("  ⚠ %v\n", f)
		}
		fmt.Println()
	}
}

func printBatchSummary(s batch.Summary) {
	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rows:\t%d (calculated %d, failed %d)\n", s.Rows, s.Succeeded, s.Failed)
	fmt.Fprintf(w, "  \tMin (kN)\tMax (kN)\tMean (kN)\tMedian (kN)\tStd dev (kN)\n")
	for _, c := range []struct {
		name string
		st   batch.Stats
	}{
		{"Standard φVn:", s.Standard},
		{"Annex φVn:", s.Annex},
	} {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n", c.name,
			c.st.Min/1000, c.st.Max/1000, c.st.Mean/1000, c.st.Median/1000, c.st.StdDev/1000)
	}
	fmt.Fprintf(w, "  Mean annex/standard:\t%.3f\n", s.MeanAnnexRatio)
	w.Flush()
	fmt.Println()
}
