// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mixrate/builder"
	"github.com/katalvlaran/mixrate/candidate"
	"github.com/katalvlaran/mixrate/internal/metrics"
	"github.com/katalvlaran/mixrate/matrix"
)

// Recorder receives one call per producer run with one of the metrics.Outcome*
// labels. *metrics.Registry satisfies it.
type Recorder interface {
	RecordSample(producer, outcome string, rate float64, d time.Duration)
}

// Run executes cfg against producers and returns the collected rates.
//
// Producers are looked up by cfg.Producers (report order); an empty list
// uses producers as given. Producers must be safe for concurrent use.
// logger and rec may be nil.
//
// Errors: ErrInvalidConfig, candidate.ErrUnknownProducer, generator errors,
// and ctx.Err() when cancelled. A producer that fails on a sample records
// +Inf for it and the run continues.
func Run(ctx context.Context, cfg Config, producers []candidate.Producer, logger *log.Logger, rec Recorder) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Producers) > 0 {
		var err error
		if producers, err = candidate.Select(cfg.Producers, producers...); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}
	if len(producers) == 0 {
		return nil, fmt.Errorf("%w: no producers", ErrInvalidConfig)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	report := &Report{RunID: uuid.New(), Created: time.Now().UTC(), Seed: cfg.Seed}
	// rates[size][producer][sample]; every task writes a disjoint column.
	rates := make([][][]Rate, len(cfg.Sizes))
	for si := range cfg.Sizes {
		rates[si] = make([][]Rate, len(producers))
		for pi := range producers {
			rates[si][pi] = make([]Rate, cfg.Samples)
		}
	}

	logger.Info("sampling", "run", report.RunID, "sizes", cfg.Sizes, "samples", cfg.Samples, "workers", workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for si, size := range cfg.Sizes {
		for sample := 0; sample < cfg.Samples; sample++ {
			t := task{size: size, sample: sample, seed: taskSeed(cfg.Seed, si, sample)}
			out := column(rates[si], sample)
			g.Go(func() error {
				return t.run(gctx, cfg, producers, out, logger, rec)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for si, size := range cfg.Sizes {
		sr := SizeResult{Size: size, Producers: make([]ProducerResult, len(producers))}
		for pi, p := range producers {
			sr.Producers[pi] = ProducerResult{Name: p.Name(), MixingRates: rates[si][pi]}
			st := sr.Producers[pi].Stats()
			logger.Info("result", "size", size, "producer", p.Name(),
				"feasible", st.Feasible, "infeasible", st.Infeasible, "mean", st.Mean)
		}
		report.Sizes = append(report.Sizes, sr)
	}

	return report, nil
}

// column returns setters for rates[*][sample].
func column(bySize [][]Rate, sample int) []*Rate {
	out := make([]*Rate, len(bySize))
	for pi := range bySize {
		out[pi] = &bySize[pi][sample]
	}

	return out
}

type task struct {
	size, sample int
	seed         int64 // 0 keeps the builder's crypto default
}

func (t task) run(ctx context.Context, cfg Config, producers []candidate.Producer, out []*Rate, logger *log.Logger, rec Recorder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var opts []builder.BuilderOption
	if t.seed != 0 {
		opts = append(opts, builder.WithRand(rand.New(rand.NewSource(t.seed))))
	}

	a, err := builder.NewSymmetricConnected(t.size, cfg.AllowSelfLoops, cfg.ForceSelfLoops, opts...)
	if err != nil {
		return fmt.Errorf("sample %d of size %d: %w", t.sample+1, t.size, err)
	}
	v, err := builder.RandomDistribution(t.size, opts...)
	if err != nil {
		return fmt.Errorf("sample %d of size %d: %w", t.sample+1, t.size, err)
	}

	for pi, p := range producers {
		rate, err := produce(ctx, p, a, v, logger, rec)
		if err != nil {
			return err
		}
		*out[pi] = Rate(rate)
	}
	logger.Debug("sample", "size", t.size, "n", t.sample+1)

	return nil
}

// produce runs one producer and reports its rate. Only cancellation is
// returned as an error.
func produce(ctx context.Context, p candidate.Producer, a *matrix.Dense, v []float64, logger *log.Logger, rec Recorder) (float64, error) {
	start := time.Now()
	res, err := p.Produce(ctx, a, v)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeFeasible
	rate := res.MixingRate
	switch {
	case err != nil && ctx.Err() != nil:
		return 0, ctx.Err()
	case err != nil:
		logger.Warn("producer failed", "producer", p.Name(), "err", err)
		outcome, rate = metrics.OutcomeError, math.Inf(1)
	case !res.Feasible():
		outcome, rate = metrics.OutcomeInfeasible, math.Inf(1)
	}
	if rec != nil {
		rec.RecordSample(p.Name(), outcome, rate, elapsed)
	}

	return rate, nil
}

// taskSeed derives a per-task seed so results do not depend on scheduling.
func taskSeed(seed int64, sizeIndex, sample int) int64 {
	if seed == 0 {
		return 0
	}
	// splitmix64 finalizer over (seed, size index, sample)
	z := uint64(seed) + uint64(sizeIndex)<<32 + uint64(sample)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		z = 1
	}

	return int64(z)
}
