package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"speechgrade/internal/analyze"
)

// runSequential analyzes inputs one at a time.
func runSequential(ctx context.Context, analyzer *analyze.Analyzer, tr Transcriber, limiter *rate.Limiter, opts Options) error {
	for i, path := range opts.Inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		slog.Info("analyzing",
			"file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)),
			"input", filepath.Base(path))

		if _, err := processFile(ctx, analyzer, tr, limiter, path, opts); err != nil {
			return fmt.Errorf("input %d/%d: %w", i+1, len(opts.Inputs), err)
		}
	}
	return nil
}

// runConcurrent analyzes inputs with bounded parallelism. Analyses share no
// state, so no coordination beyond the errgroup and the API rate limiter is
// needed.
func runConcurrent(ctx context.Context, analyzer *analyze.Analyzer, tr Transcriber, limiter *rate.Limiter, opts Options) error {
	slog.Info("starting concurrent analysis",
		"inputs", len(opts.Inputs),
		"max_concurrent", opts.MaxConcurrent)

	g, gctx := errgroup.WithContext(ctx)
	if opts.MaxConcurrent > 0 {
		g.SetLimit(opts.MaxConcurrent)
	}

	for i, path := range opts.Inputs {
		i, path := i, path
		g.Go(func() error {
			if _, err := processFile(gctx, analyzer, tr, limiter, path, opts); err != nil {
				return fmt.Errorf("input %d/%d: %w", i+1, len(opts.Inputs), err)
			}
			return nil
		})
	}

	return g.Wait()
}
