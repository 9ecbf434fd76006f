// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"
	"time"
)

// LoginGate is a single-use completion signal for one logon attempt.
//
// It is resolved at most once, either by Succeed or by Fail. Later calls
// return false and leave the recorded outcome unchanged.
type LoginGate struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewLoginGate returns an unresolved gate.
func NewLoginGate() *LoginGate {
	return &LoginGate{done: make(chan struct{})}
}

// Succeed resolves the gate with success. It reports whether this call
// resolved the gate.
func (g *LoginGate) Succeed() bool {
	return g.resolve(nil)
}

// Fail resolves the gate with err. It reports whether this call resolved the
// gate.
func (g *LoginGate) Fail(err error) bool {
	if err == nil {
		err = ErrAuthentication
	}
	return g.resolve(err)
}

func (g *LoginGate) resolve(err error) bool {
	resolved := false
	g.once.Do(func() {
		g.err = err
		resolved = true
		close(g.done)
	})
	return resolved
}

// Done is closed once the gate is resolved.
func (g *LoginGate) Done() <-chan struct{} {
	return g.done
}

// Resolved reports whether the gate has an outcome.
func (g *LoginGate) Resolved() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Succeeded reports whether the gate was resolved with success.
func (g *LoginGate) Succeeded() bool {
	return g.Resolved() && g.err == nil
}

// Err returns the failure the gate was resolved with. It is nil while the
// gate is unresolved or after success.
func (g *LoginGate) Err() error {
	if !g.Resolved() {
		return nil
	}
	return g.err
}

// Wait blocks until the gate is resolved, timeout elapses or ctx is done.
//
// On timeout the gate is failed with [ErrLoginTimeout], on cancellation with
// [ErrLoginCancelled]. If another resolution won the race, that one is
// returned instead.
func (g *LoginGate) Wait(ctx context.Context, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-g.done:
	case <-waitCtx.Done():
		if ctx.Err() != nil {
			g.Fail(ErrLoginCancelled)
		} else {
			g.Fail(ErrLoginTimeout)
		}
	}

	<-g.done
	return g.err
}
