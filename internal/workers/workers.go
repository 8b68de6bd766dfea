package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type named struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []named
}

func NewWorkers() *Workers {
	return &Workers{}
}

// Add registers w under name. The name prefixes any error w returns.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers = append(w.workers, named{name: name, worker: worker})
	return w
}

// Run starts every worker and waits until all of them return. The first
// error cancels the context shared by the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, nw := range w.workers {
		nw := nw
		g.Go(func() error {
			if err := nw.worker.Run(gctx); err != nil {
				return fmt.Errorf("%s: %w", nw.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
