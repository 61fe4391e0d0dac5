package worker

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker runs until ctx is cancelled.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager supervises a fixed set of workers sharing one lifetime.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start blocks until ctx is cancelled or a worker fails. A failing worker
// cancels the rest; its error is returned once all of them have stopped.
func (m *Manager) Start(ctx context.Context) error {
	if len(m.workers) == 0 {
		<-ctx.Done()
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range m.workers {
		i, w := i, w
		g.Go(func() error {
			if err := w.Start(gctx); err != nil {
				slog.Error("worker stopped", "worker", i, "error", err)
				return fmt.Errorf("worker %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
