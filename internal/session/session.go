// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/models"
)

// DefaultLoginTimeout bounds the wait for a logon result in one attempt.
const DefaultLoginTimeout = 10 * time.Minute

// StatusObserver receives a snapshot whenever a session changes phase.
// Update is called synchronously and must not block.
type StatusObserver interface {
	Update(status models.SessionStatus)
}

// Config holds the collaborators of a [Session].
type Config struct {
	// Account is copied by New.
	Account models.AccountConfig

	Transport     adapter.Transport
	Authenticator adapter.Authenticator

	// Tokens is optional. Without it every attempt performs a credential
	// exchange.
	Tokens store.TokenStorage

	// Observer is optional.
	Observer StatusObserver

	// Supervisor is optional and defaults to [NewSupervisor] with the
	// production backoff.
	Supervisor *Supervisor

	Logger *logger.Logger

	// LoginTimeout defaults to [DefaultLoginTimeout].
	LoginTimeout time.Duration

	// PollInterval defaults to [DefaultPollInterval].
	PollInterval time.Duration
}

// Session keeps one account connected, logged on and active until its
// context is cancelled or the supervisor gives up.
type Session struct {
	account     models.AccountConfig
	transport   adapter.Transport
	credentials *credentials
	observer    StatusObserver
	supervisor  *Supervisor
	logger      *logger.Logger

	loginTimeout time.Duration
	pollInterval time.Duration

	state   Lifecycle
	started atomic.Bool

	mu     sync.Mutex
	status models.SessionStatus
}

// New validates cfg and returns an idle session.
func New(cfg Config) (*Session, error) {
	if cfg.Account.Username == "" {
		return nil, fmt.Errorf("%w: empty username", ErrInvalidSessionConfig)
	}
	if cfg.Transport == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrInvalidSessionConfig)
	}
	if cfg.Authenticator == nil {
		return nil, fmt.Errorf("%w: nil authenticator", ErrInvalidSessionConfig)
	}

	account := cfg.Account.Clone()

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.ForAccount(account.Username)

	supervisor := cfg.Supervisor
	if supervisor == nil {
		supervisor = NewSupervisor(log)
	}
	loginTimeout := cfg.LoginTimeout
	if loginTimeout <= 0 {
		loginTimeout = DefaultLoginTimeout
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	s := &Session{
		account:   account,
		transport: cfg.Transport,
		credentials: &credentials{
			account: account,
			auth:    cfg.Authenticator,
			tokens:  cfg.Tokens,
			now:     time.Now,
			logger:  log,
		},
		observer:     cfg.Observer,
		supervisor:   supervisor,
		logger:       log,
		loginTimeout: loginTimeout,
		pollInterval: pollInterval,
		status: models.SessionStatus{
			Username:  account.Username,
			Phase:     models.PhaseDisconnected,
			UpdatedAt: time.Now(),
		},
	}
	return s, nil
}

// Username returns the account the session keeps alive.
func (s *Session) Username() string {
	return s.account.Username
}

// Status returns the latest snapshot.
func (s *Session) Status() models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Start runs the session until ctx is cancelled or retries are exhausted.
//
// It returns nil after a cancellation and an error wrapping
// [ErrRetriesExhausted] when the supervisor gave up. A session can be
// started only once.
func (s *Session) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	s.logger.Info().Msg("starting session")
	s.state.Store(StateStarting)

	err := s.supervisor.Run(ctx, s.connectAndRun)
	s.state.Store(StateStopping)

	if errors.Is(err, ErrRetriesExhausted) {
		s.logger.Warn().Err(err).Msg("could not re-login after multiple attempts, stopping")
		s.setPhase(models.PhaseFailed, err)
		return err
	}

	s.logger.Info().Msg("session stopped")
	s.setPhase(models.PhaseStopped, nil)
	return nil
}

// connectAndRun is one connection attempt. It only returns on failure or
// cancellation; a healthy session stays inside the post-login wait.
func (s *Session) connectAndRun(ctx context.Context, n int) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	log := &logger.Logger{Logger: s.logger.With().
		Int("attempt", n).
		Str("attempt_id", utils.NewAttemptID()).
		Logger()}

	s.state.Store(StateStarting)
	s.setAttempt(n)
	s.setPhase(models.PhaseConnecting, nil)

	if stale := drain(s.transport.Events()); stale > 0 {
		log.Debug().Int("events", stale).Msg("discarded stale events")
	}

	attemptCtx, cancel := context.WithCancel(ctx)
	a := newAttempt()
	h := newHandlers(s, a, &s.state, log)
	d := &dispatcher{
		events:   s.transport.Events(),
		handle:   h.handle,
		state:    &s.state,
		interval: s.pollInterval,
		logger:   log,
	}

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		d.run(attemptCtx)
	}()

	defer func() {
		cancel()
		<-loopDone
		a.exchanges.Wait()
		if dErr := s.transport.Disconnect(); dErr != nil {
			log.Debug().Err(dErr).Msg("error disconnecting transport")
		}
		if err != nil && ctx.Err() == nil {
			s.setPhase(models.PhaseDisconnected, err)
		}
	}()

	log.Info().Msg("connecting")
	if err = s.transport.Connect(attemptCtx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	if err = a.gate.Wait(attemptCtx, s.loginTimeout); err != nil {
		if errors.Is(err, ErrLoginTimeout) {
			log.Warn().Dur("timeout", s.loginTimeout).Msg("login timed out")
		}
		return err
	}
	s.state.Store(StateConnected)

	select {
	case <-ctx.Done():
		s.state.Store(StateStopping)
		return ctx.Err()
	case <-a.drops:
		return ErrConnectionLost
	}
}

func (s *Session) setAttempt(n int) {
	s.mu.Lock()
	s.status.Attempt = n
	s.mu.Unlock()
}

func (s *Session) setPhase(phase models.Phase, err error) {
	s.mu.Lock()
	s.status.Phase = phase
	s.status.UpdatedAt = time.Now()
	if err != nil {
		s.status.LastError = err.Error()
	} else if phase == models.PhaseActive {
		s.status.LastError = ""
	}
	snapshot := s.status
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.Update(snapshot)
	}
}
