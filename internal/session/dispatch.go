package session

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// DefaultPollInterval bounds how long the dispatch loop waits for an event
// before re-checking the lifecycle state.
const DefaultPollInterval = time.Second

type eventHandler func(ctx context.Context, ev models.Event) error

// dispatcher delivers transport events to a handler one at a time.
type dispatcher struct {
	events   <-chan models.Event
	handle   eventHandler
	state    *Lifecycle
	interval time.Duration
	logger   *logger.Logger
}

// run blocks until ctx is done, the lifecycle leaves the running state or
// the event channel is closed.
func (d *dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil || !d.state.Running() {
			return
		}

		select {
		case <-ctx.Done():
			return
		case ev, ok := <-d.events:
			if !ok {
				d.logger.Debug().Msg("event channel closed, stopping dispatch")
				return
			}
			d.dispatch(ctx, ev)
		case <-ticker.C:
		}
	}
}

func (d *dispatcher) dispatch(ctx context.Context, ev models.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Err(fmt.Errorf("panic: %v", r)).
				Stringer("event", ev.Kind).
				Msg("event handler panicked")
		}
	}()

	if err := d.handle(ctx, ev); err != nil {
		d.logger.Error().Err(err).Stringer("event", ev.Kind).Msg("error in event loop")
	}
}

// drain discards events left over from a previous connection.
func drain(events <-chan models.Event) int {
	n := 0
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}
