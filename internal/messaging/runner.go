package messaging

import (
	"context"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Runner runs several workers with one handler until the context ends or a worker fails.
type Runner struct {
	workers []Worker
	handler MessageHandler
}

func NewRunner(workers []Worker, handler MessageHandler) *Runner {
	return &Runner{workers: workers, handler: handler}
}

func (r *Runner) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, w := range r.workers {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.ErrorContext(ctx, "Worker panic recovered",
						"worker_idx", i, "panic", rec, "stack", string(debug.Stack()))
				}
				if closeErr := w.Close(); closeErr != nil {
					slog.ErrorContext(ctx, "Failed to close worker", "worker_idx", i, "error", closeErr)
				}
			}()
			return w.Start(ctx, r.handler)
		})
	}

	return g.Wait()
}
