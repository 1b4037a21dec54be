package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gorcw/internal/config"
	"github.com/alexiusacademia/gorcw/internal/log"
	"github.com/alexiusacademia/gorcw/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debugLog   bool

	// cfg is loaded before any subcommand runs
	cfg = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "gorcw",
	Short: "Reinforced Concrete Wall Shear Capacity Tool",
	Long: `gorcw - Go Reinforced Concrete Wall shear calculator

A CLI tool for the shear capacity of reinforced concrete
structural walls based on ACI 318 Section 18.10.

This tool helps structural engineers compute:
  - Standard design shear capacity φVn (φ = 0.6)
  - Overstrength annex shear capacity φVn (φ = 0.9 Ω)
  - Wall section properties (Acv, Ig, hw/lw, ρt, αc)
  - Batch results for whole tables of walls (CSV or XLSX)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if !cmd.Flags().Changed("debug") {
			debugLog = cfg.Log.Debug
		}
		return log.Init(debugLog)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcw v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Wall Shear Calculator            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the shear capacity of reinforced concrete")
		fmt.Println("  structural walls (ACI 318 Section 18.10 and annex method).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Batch calculation from CSV or XLSX tables")
		fmt.Println("    • Single wall analysis with full section properties")
		fmt.Println("    • Shear coefficient αc table and curve")
		fmt.Println("    • Charts, PDF reports and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gorcw --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
}
