package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// Named pairs a worker with the label used in logs and errors.
type Named struct {
	Name   string
	Worker Worker
}

type Workers struct {
	workers []Named
	logger  *logger.Logger
}

// NewWorkers creates an empty group.
func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers w under name. It must not be called after Run.
func (w *Workers) Add(name string, worker Worker) {
	w.workers = append(w.workers, Named{Name: name, Worker: worker})
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them return. The context
// is shared but never cancelled by the group itself. Errors from all workers
// are joined in registration order.
func (w *Workers) Run(ctx context.Context) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs = make([]error, len(w.workers))
	)

	for i, named := range w.workers {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s: %w: %v", named.Name, ErrWorkerPanicked, r)
				}
				if err != nil {
					w.logger.Err(err).Str("worker", named.Name).Msg("worker finished with error")
				} else {
					w.logger.Debug().Str("worker", named.Name).Msg("worker finished")
				}
				mu.Lock()
				errs[i] = err
				mu.Unlock()
			}()

			if err := named.Worker.Run(ctx); err != nil {
				return fmt.Errorf("%s: %w", named.Name, err)
			}
			return nil
		})
	}

	_ = g.Wait()
	return errors.Join(errs...)
}
