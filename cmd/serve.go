package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexiusacademia/gorcw/internal/api"
	"github.com/alexiusacademia/gorcw/internal/log"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shear calculator over HTTP",
	Long: `Start an HTTP server exposing the calculator as JSON endpoints.

Endpoints:
  POST /api/capacity   one wall row   -> capacities and section properties
  POST /api/batch      array of rows  -> array of results or per-row errors
  GET  /api/alpha?r=   hw/lw ratio    -> αc
  GET  /healthz

Examples:
  gorcw serve --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("addr") {
		serveAddr = cfg.Server.Addr
	}

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           api.NewRouter(&api.Handler{DefaultLambda: cfg.DefaultLambda}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", serveAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-cmd.Context().Done():
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
