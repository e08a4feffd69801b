// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mixrate/candidate"
	"github.com/katalvlaran/mixrate/engine"
	"github.com/katalvlaran/mixrate/internal/metrics"
	"github.com/katalvlaran/mixrate/sampler"
)

type sampleOpts struct {
	configPath  string
	samples     int
	sizes       []int
	producers   []string
	allowLoops  bool
	forceLoops  bool
	workers     int
	seed        int64
	output      string
	engineURL   string
	tolerance   float64
	metricsAddr string
}

func newSampleCmd() *cobra.Command {
	var opts sampleOpts

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Compare producers by mixing rate on random connected graphs",
		Long: `Draws random connected symmetric graphs and stochastic target vectors,
builds a transition matrix with every selected producer and records its mixing
rate (+Inf when the producer fails). The report is written as sample_<k>.json.

Producers:
  mh      Metropolis-Hastings on the input graph
  sdp-mh  Metropolis-Hastings on the local-degree reweighted graph
  go      in-process global optimization (lazy chain search)
  mgo     global optimization through the engine (--engine-url, else in-process)`,
		Example: `  mixrate sample -s 100 -n 8,16,32
  mixrate sample --config mixrate.toml -f mh,mgo --engine-url http://127.0.0.1:8750`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			applySampleFlags(cmd, &cfg, opts)
			return runSample(cmd.Context(), cmd, cfg, opts.metricsAddr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	f.IntVarP(&opts.samples, "samples", "s", sampler.DefaultSamples, "samples per network size")
	f.IntSliceVarP(&opts.sizes, "sizes", "n", sampler.DefaultSizes, "network sizes")
	f.StringSliceVarP(&opts.producers, "producers", "f", sampler.DefaultProducers, "producers to compare, in report order")
	f.BoolVarP(&opts.allowLoops, "allow-self-loops", "a", true, "allow self-loops in generated graphs")
	f.BoolVarP(&opts.forceLoops, "force-self-loops", "e", true, "force a self-loop on every node")
	f.IntVarP(&opts.workers, "workers", "w", 0, "parallel samples (0 = one per CPU)")
	f.Int64Var(&opts.seed, "seed", 0, "seed for reproducible runs (0 = random)")
	f.StringVarP(&opts.output, "output", "o", defaultOutputDir, "report directory")
	f.StringVar(&opts.engineURL, "engine-url", "", "remote engine base URL for mgo")
	f.Float64Var(&opts.tolerance, "tolerance", defaultTolerance, "validate optimizer output at this tolerance (0 disables)")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while sampling")

	return cmd
}

// applySampleFlags lets explicitly set flags override file values.
func applySampleFlags(cmd *cobra.Command, cfg *fileConfig, opts sampleOpts) {
	f := cmd.Flags()
	if f.Changed("samples") {
		cfg.Sampler.Samples = opts.samples
	}
	if f.Changed("sizes") {
		cfg.Sampler.Sizes = opts.sizes
	}
	if f.Changed("producers") {
		cfg.Sampler.Producers = opts.producers
	}
	if f.Changed("allow-self-loops") {
		cfg.Sampler.AllowSelfLoops = opts.allowLoops
	}
	if f.Changed("force-self-loops") {
		cfg.Sampler.ForceSelfLoops = opts.forceLoops
	}
	if f.Changed("workers") {
		cfg.Sampler.Workers = opts.workers
	}
	if f.Changed("seed") {
		cfg.Sampler.Seed = opts.seed
	}
	if f.Changed("output") {
		cfg.Output = opts.output
	}
	if f.Changed("engine-url") {
		cfg.Engine.URL = opts.engineURL
	}
	if f.Changed("tolerance") {
		cfg.Tolerance = opts.tolerance
	}
}

func runSample(ctx context.Context, cmd *cobra.Command, cfg fileConfig, metricsAddr string) error {
	logger := loggerFromContext(ctx)
	reg := metrics.NewRegistry()

	if metricsAddr != "" {
		stop, err := serveMetrics(ctx, metricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	producers, release, err := newProducers(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			logger.Warn("engine release", "err", err)
		}
	}()

	prog := newProgress(logger)
	report, err := sampler.Run(ctx, cfg.Sampler, producers, logger, reg)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Sampled %d graphs", len(cfg.Sampler.Sizes)*cfg.Sampler.Samples))

	path, err := sampler.WriteReport(cfg.Output, report)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

// newProducers builds all four producers. The returned release function
// drops the engine handle.
func newProducers(cfg fileConfig) ([]candidate.Producer, func() error, error) {
	var opts []candidate.Option
	if cfg.Tolerance < 0 {
		return nil, nil, fmt.Errorf("tolerance must be ≥ 0, got %g", cfg.Tolerance)
	}
	if cfg.Tolerance > 0 {
		opts = append(opts, candidate.WithValidation(cfg.Tolerance))
	}
	if err := validLaziness(cfg.Engine.Laziness); err != nil {
		return nil, nil, err
	}

	start := engine.Local(cfg.Engine.Laziness...)
	if cfg.Engine.URL != "" {
		start = engine.Dial(cfg.Engine.URL)
	}
	handle := engine.NewBridge(start).Acquire()

	producers := []candidate.Producer{
		candidate.NewMetropolisHastings(opts...),
		candidate.NewOptimizedMetropolisHastings(candidate.LocalDegreeOptimizer{}, opts...),
		candidate.NewTransition(candidate.EngineOptimizer{Engine: engine.NewLocalEngine(cfg.Engine.Laziness...)}, opts...),
		candidate.NewEngine(handle, opts...),
	}

	return producers, handle.Release, nil
}

func validLaziness(grid []float64) error {
	for _, x := range grid {
		if !(x >= 0 && x < 1) {
			return fmt.Errorf("engine laziness %g outside [0,1)", x)
		}
	}
	return nil
}

// serveMetrics serves reg on addr until stop is called or ctx ends.
func serveMetrics(ctx context.Context, addr string, reg *metrics.Registry, logger *log.Logger) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}, nil
}
