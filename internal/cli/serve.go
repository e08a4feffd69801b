// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mixrate/engine"
	"github.com/katalvlaran/mixrate/internal/metrics"
)

func newServeEngineCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		laziness   []float64
	)

	cmd := &cobra.Command{
		Use:   "serve-engine",
		Short: "Serve the global-opt protocol with the in-process engine",
		Long: `Serves POST /v1/global-opt, GET /healthz and GET /metrics. The engine
searches lazy Metropolis-Hastings chains for the smallest mixing rate. Point
"mixrate sample --engine-url" at this server to exercise the remote path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Engine.Addr = addr
			}
			if cmd.Flags().Changed("laziness") {
				cfg.Engine.Laziness = laziness
			}
			if err := validLaziness(cfg.Engine.Laziness); err != nil {
				return err
			}

			ln, err := net.Listen("tcp", cfg.Engine.Addr)
			if err != nil {
				return fmt.Errorf("serve-engine: %w", err)
			}
			return serveEngine(cmd.Context(), ln, cfg.Engine.Laziness)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	f.StringVar(&addr, "addr", defaultEngineAddr, "listen address")
	f.Float64SliceVar(&laziness, "laziness", nil, "holding probabilities to search (default engine grid)")

	return cmd
}

// serveEngine serves on ln until ctx is cancelled, then shuts down.
func serveEngine(ctx context.Context, ln net.Listener, laziness []float64) error {
	logger := loggerFromContext(ctx)
	reg := metrics.NewRegistry()
	handler := engine.NewHandler(engine.NewLocalEngine(laziness...), logger,
		engine.WithRequestObserver(reg),
		engine.WithRoute("/metrics", reg.Handler()),
	)
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logger.Info("engine listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve-engine: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	logger.Info("engine shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve-engine: %w", err)
	}

	return nil
}
