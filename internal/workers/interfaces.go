// Package workers runs the long-lived parts of the application side by side.
//
// It defines the Worker interface and a Workers aggregate that starts every
// worker in its own goroutine and waits for all of them. A failing worker
// never cancels its siblings.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the work is done or ctx is cancelled. Sessions and the
// status server are workers.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
