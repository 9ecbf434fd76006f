package session

import "sync/atomic"

// RunState is the lifecycle state shared between a session and its event
// handlers.
type RunState int32

const (
	// StateStarting covers connecting and logging on.
	StateStarting RunState = iota
	// StateConnected is set once logon succeeded.
	StateConnected
	// StateStopping is set when the session shuts down on purpose.
	StateStopping
)

func (s RunState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateConnected:
		return "connected"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Lifecycle holds a [RunState]. It is safe for concurrent use and is passed
// by pointer to everything that needs to observe shutdown.
type Lifecycle struct {
	state atomic.Int32
}

// Load returns the current state.
func (l *Lifecycle) Load() RunState {
	return RunState(l.state.Load())
}

// Store replaces the current state.
func (l *Lifecycle) Store(s RunState) {
	l.state.Store(int32(s))
}

// Running reports whether the session has not been asked to stop.
func (l *Lifecycle) Running() bool {
	return l.Load() != StateStopping
}

// DisconnectOutcome tells the attempt runner what a disconnect means.
type DisconnectOutcome int

const (
	// OutcomeClean means the disconnect was expected and nothing follows.
	OutcomeClean DisconnectOutcome = iota
	// OutcomeRetry means the connection was lost and the attempt must end
	// so the supervisor can start a new one.
	OutcomeRetry
)

func (o DisconnectOutcome) String() string {
	if o == OutcomeRetry {
		return "retry"
	}
	return "clean"
}
