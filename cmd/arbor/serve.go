package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	httpAdapter "github.com/aretw0/arbor/pkg/adapters/http"
	"github.com/aretw0/arbor/pkg/observability"
)

// shutdownGrace bounds how long in-flight requests may run after a signal.
const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the topics over HTTP",
	Long:  `Starts the arbor engine in stateless server mode, exposing a JSON API over HTTP and Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		metrics := observability.NewMetrics()
		_, logger, engine, closeFn, err := setup(sc, cmd, true, arbor.WithLifecycleHooks(metrics.Hooks()))
		if err != nil {
			return err
		}
		defer closeFn()
		metrics.ObserveTopics(engine.Topics())

		srv := &http.Server{
			Addr: ":" + port,
			Handler: httpAdapter.NewHandler(engine,
				httpAdapter.WithMetrics(metrics.Handler()),
				httpAdapter.WithLogger(logger),
			),
		}

		listenErr := make(chan error, 1)
		go func() {
			logger.Info("starting arbor server", "addr", srv.Addr, "topics", len(engine.Topics()))
			listenErr <- srv.ListenAndServe()
		}()

		select {
		case err := <-listenErr:
			return err
		case <-sc.Done():
		}

		logger.Info("shutting down", "signal", sc.Signal(), "grace", shutdownGrace)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "error", err)
			return srv.Close()
		}
		logger.Info("arbor server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "HTTP listen port")
}
