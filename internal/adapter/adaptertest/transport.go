// Package adaptertest provides an in-memory [adapter.Transport] for tests.
//
// By default the transport behaves like a healthy remote service: Connect
// emits a connected event, a logon command is answered with a successful
// logon followed by account info, and Disconnect emits one disconnected
// event per connection. Hooks replace any of these behaviours.
package adaptertest

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/models"
)

var _ adapter.Transport = (*Transport)(nil)

// ErrNotConnected is returned by Send while disconnected.
var ErrNotConnected = errors.New("adaptertest: not connected")

// Transport is a scriptable in-memory transport.
type Transport struct {
	// OnConnect runs for every Connect call with its 1-based index. A nil
	// hook emits a connected event.
	OnConnect func(t *Transport, n int) error

	// OnSend runs for every Send while connected. A nil hook answers logon
	// commands with a successful logon and account info.
	OnSend func(t *Transport, msg models.Message) error

	events chan models.Event

	mu          sync.Mutex
	connected   bool
	connects    int
	disconnects int
	sent        []models.Message
}

// NewTransport returns a transport with a buffered event channel.
func NewTransport() *Transport {
	return &Transport{events: make(chan models.Event, 64)}
}

// Connect implements [adapter.Transport].
func (t *Transport) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	t.connects++
	n := t.connects
	hook := t.OnConnect
	t.mu.Unlock()

	t.setConnected(true)
	if hook != nil {
		if err := hook(t, n); err != nil {
			t.setConnected(false)
			return err
		}
		return nil
	}

	t.Emit(models.Event{Kind: models.EventConnected})
	return nil
}

// Disconnect implements [adapter.Transport].
func (t *Transport) Disconnect() error {
	t.mu.Lock()
	wasConnected := t.connected
	t.connected = false
	if wasConnected {
		t.disconnects++
	}
	t.mu.Unlock()

	if wasConnected {
		t.Emit(models.Event{Kind: models.EventDisconnected})
	}
	return nil
}

// Send implements [adapter.Transport].
func (t *Transport) Send(ctx context.Context, msg models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	if !t.connected {
		t.mu.Unlock()
		return ErrNotConnected
	}
	t.sent = append(t.sent, msg)
	hook := t.OnSend
	t.mu.Unlock()

	if hook != nil {
		return hook(t, msg)
	}
	if msg.Type == models.MessageLogOn {
		t.Emit(models.Event{Kind: models.EventLoggedOn, Result: models.ResultOK})
		t.Emit(models.Event{Kind: models.EventAccountInfo})
	}
	return nil
}

// Events implements [adapter.Transport].
func (t *Transport) Events() <-chan models.Event {
	return t.events
}

// Emit queues an event as if it came from the remote service.
func (t *Transport) Emit(ev models.Event) {
	t.events <- ev
}

// Drop simulates the remote side closing the connection.
func (t *Transport) Drop() {
	t.mu.Lock()
	wasConnected := t.connected
	t.connected = false
	t.mu.Unlock()

	if wasConnected {
		t.Emit(models.Event{Kind: models.EventDisconnected})
	}
}

func (t *Transport) setConnected(v bool) {
	t.mu.Lock()
	t.connected = v
	t.mu.Unlock()
}

// Connects returns how many times Connect was called.
func (t *Transport) Connects() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connects
}

// Disconnects returns how many established connections were closed locally.
func (t *Transport) Disconnects() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disconnects
}

// Sent returns a copy of every message sent so far.
func (t *Transport) Sent() []models.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Message(nil), t.sent...)
}

// SentOfType returns the sent messages of type typ in order.
func (t *Transport) SentOfType(typ models.MessageType) []models.Message {
	var out []models.Message
	for _, m := range t.Sent() {
		if m.Type == typ {
			out = append(out, m)
		}
	}
	return out
}
