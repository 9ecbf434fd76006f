// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

const (
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 15
	// DefaultBaseDelay is the wait before the first retry.
	DefaultBaseDelay = 2 * time.Second
	// DefaultMaxDelay caps the wait between retries.
	DefaultMaxDelay = 60 * time.Second
)

// Delay returns the wait before retry k (k >= 1): min(60s, 2^k s).
func Delay(k int) time.Duration {
	if k < 1 {
		k = 1
	}
	if k > 6 {
		return DefaultMaxDelay
	}
	return min(time.Duration(1<<k)*time.Second, DefaultMaxDelay)
}

// DefaultBackoff builds the production backoff: exponential from
// [DefaultBaseDelay], capped at [DefaultMaxDelay], stopping after
// [DefaultMaxRetries] retries. It yields exactly Delay(1)..Delay(15).
func DefaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(DefaultMaxRetries,
		retry.WithCappedDuration(DefaultMaxDelay,
			retry.NewExponential(DefaultBaseDelay)))
}

// Operation is one connection attempt. attempt starts at 1.
type Operation func(ctx context.Context, attempt int) error

// Supervisor retries an [Operation] with backoff.
//
// Every error returned by the operation is retryable, except when ctx is
// done: then Run returns ctx.Err() without scheduling another attempt.
type Supervisor struct {
	newBackoff func() retry.Backoff
	logger     *logger.Logger
}

// SupervisorOption customizes a [Supervisor].
type SupervisorOption func(*Supervisor)

// WithBackoff replaces the backoff factory. The factory is called once per
// Run so retry state never leaks between runs.
func WithBackoff(newBackoff func() retry.Backoff) SupervisorOption {
	return func(s *Supervisor) {
		s.newBackoff = newBackoff
	}
}

// NewSupervisor returns a supervisor using [DefaultBackoff] unless
// overridden.
func NewSupervisor(log *logger.Logger, opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		newBackoff: DefaultBackoff,
		logger:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes op until it succeeds, ctx is done or retries are exhausted.
// Exhaustion is reported as [ErrRetriesExhausted] wrapping the last error.
func (s *Supervisor) Run(ctx context.Context, op Operation) error {
	var (
		attempt int
		lastErr error
	)

	backoff := s.newBackoff()
	logged := retry.BackoffFunc(func() (time.Duration, bool) {
		next, stop := backoff.Next()
		if stop {
			return 0, true
		}
		s.logger.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Dur("backoff", next).
			Msgf("connection/login failed: %v. retrying in %s", lastErr, next)
		return next, false
	})

	err := retry.Do(ctx, logged, func(ctx context.Context) error {
		attempt++
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = err
		return retry.RetryableError(err)
	})

	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return fmt.Errorf("%w (%d attempts): %w", ErrRetriesExhausted, attempt, err)
	}
}
