package workers

import "errors"

// ErrWorkerPanicked wraps a panic recovered from a worker's Run.
var ErrWorkerPanicked = errors.New("worker panicked")
