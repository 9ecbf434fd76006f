// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	eventBufferSize = 64
	maxFrameSize    = 1 << 20
)

var errUnknownFrame = errors.New("unknown frame type")

// inboundFrame is one newline-terminated JSON object read from the gateway.
type inboundFrame struct {
	Type           string             `json:"type"`
	Result         models.LogOnResult `json:"result"`
	ExtendedResult models.LogOnResult `json:"extended_result"`
}

var frameKinds = map[string]models.EventKind{
	"logged_on":    models.EventLoggedOn,
	"logged_off":   models.EventLoggedOff,
	"account_info": models.EventAccountInfo,
}

// TCPTransport talks to the gateway over a TCP connection, optionally
// wrapped in TLS. Commands and notifications are JSON objects, one per line.
//
// The event channel outlives connections. Each established connection emits
// one connected event followed, when it ends for any reason, by one
// disconnected event.
type TCPTransport struct {
	address   string
	dialer    *net.Dialer
	tlsConfig *tls.Config
	events    chan models.Event
	logger    *logger.Logger

	mu   sync.Mutex
	conn net.Conn
	done chan struct{}
	stop chan struct{}

	writeMu sync.Mutex
}

var _ Transport = (*TCPTransport)(nil)

// NewTCPTransport builds a transport for cfg.TransportAddress. It does not
// dial; call Connect.
func NewTCPTransport(cfg config.Adapter, log *logger.Logger) (*TCPTransport, error) {
	host, _, err := net.SplitHostPort(strings.TrimSpace(cfg.TransportAddress))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	t := &TCPTransport{
		address: strings.TrimSpace(cfg.TransportAddress),
		dialer:  &net.Dialer{Timeout: cfg.DialTimeout},
		events:  make(chan models.Event, eventBufferSize),
		logger:  log,
	}
	if cfg.TransportTLS {
		t.tlsConfig = &tls.Config{
			ServerName:         host,
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: cfg.TLSInsecureSkipVerify, //nolint:gosec // opt-in for self-signed gateways
		}
	}
	return t, nil
}

// Events implements [Transport].
func (t *TCPTransport) Events() <-chan models.Event {
	return t.events
}

// Connect implements [Transport].
func (t *TCPTransport) Connect(ctx context.Context) error {
	if t.current() != nil {
		return ErrAlreadyConnected
	}

	conn, err := t.dial(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if t.conn != nil {
		t.mu.Unlock()
		_ = conn.Close()
		return ErrAlreadyConnected
	}
	if t.stop != nil {
		close(t.stop)
	}
	done, stop := make(chan struct{}), make(chan struct{})
	t.conn = conn
	t.done = done
	t.stop = stop
	t.mu.Unlock()

	t.logger.Debug().Str("address", t.address).Msg("connected to gateway")
	t.emit(models.Event{Kind: models.EventConnected})
	go t.readLoop(conn, done, stop)
	return nil
}

// Disconnect implements [Transport]. It closes the connection and waits for
// the reader to finish. A disconnected event nobody is reading any more is
// discarded.
func (t *TCPTransport) Disconnect() error {
	t.mu.Lock()
	conn, done, stop := t.conn, t.done, t.stop
	t.conn = nil
	t.stop = nil
	t.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	if conn == nil {
		if done != nil {
			<-done
		}
		return nil
	}

	err := conn.Close()
	<-done
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}

// Send implements [Transport]. The write deadline follows ctx.
func (t *TCPTransport) Send(ctx context.Context, msg models.Message) error {
	conn := t.current()
	if conn == nil {
		return ErrNotConnected
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Type, err)
	}
	data = append(data, '\n')

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	deadline, _ := ctx.Deadline()
	if err = conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if _, err = conn.Write(data); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return ErrNotConnected
		}
		return fmt.Errorf("write %s message: %w", msg.Type, err)
	}
	return nil
}

func (t *TCPTransport) dial(ctx context.Context) (net.Conn, error) {
	var (
		conn net.Conn
		err  error
	)
	if t.tlsConfig != nil {
		td := &tls.Dialer{NetDialer: t.dialer, Config: t.tlsConfig}
		conn, err = td.DialContext(ctx, "tcp", t.address)
	} else {
		conn, err = t.dialer.DialContext(ctx, "tcp", t.address)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", t.address, err)
	}
	return conn, nil
}

func (t *TCPTransport) current() net.Conn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn
}

func (t *TCPTransport) readLoop(conn net.Conn, done, stop chan struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxFrameSize)
	for scanner.Scan() {
		ev, err := decodeFrame(scanner.Bytes())
		if err != nil {
			t.logger.Warn().Err(err).Msg("skipping gateway frame")
			continue
		}
		t.emit(ev)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		t.logger.Warn().Err(err).Msg("gateway connection read failed")
	}

	t.mu.Lock()
	if t.conn == conn {
		t.conn = nil
	}
	t.mu.Unlock()

	_ = conn.Close()

	// Disconnected is never dropped for lack of room. It waits for the
	// consumer until Disconnect or the next Connect releases it.
	ev := models.Event{Kind: models.EventDisconnected}
	select {
	case t.events <- ev:
		return
	default:
	}
	select {
	case t.events <- ev:
	case <-stop:
		t.logger.Debug().Msg("disconnected event discarded after shutdown")
	}
}

// emit never blocks. A full buffer means nobody is consuming and the frame is
// dropped.
func (t *TCPTransport) emit(ev models.Event) {
	select {
	case t.events <- ev:
	default:
		t.logger.Warn().Stringer("event", ev.Kind).Msg("event buffer full, dropping event")
	}
}

func decodeFrame(line []byte) (models.Event, error) {
	var frame inboundFrame
	if err := json.Unmarshal(line, &frame); err != nil {
		return models.Event{}, fmt.Errorf("decode frame: %w", err)
	}
	kind, ok := frameKinds[frame.Type]
	if !ok {
		return models.Event{}, fmt.Errorf("%w: %q", errUnknownFrame, frame.Type)
	}
	return models.Event{
		Kind:           kind,
		Result:         frame.Result,
		ExtendedResult: frame.ExtendedResult,
	}, nil
}
