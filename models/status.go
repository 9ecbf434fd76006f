// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Phase is the coarse state of a session as seen from the outside.
type Phase string

const (
	PhaseDisconnected   Phase = "disconnected"
	PhaseConnecting     Phase = "connecting"
	PhaseAuthenticating Phase = "authenticating"
	PhaseLoggedOn       Phase = "logged_on"
	PhaseActive         Phase = "active"
	PhaseStopped        Phase = "stopped"
	PhaseFailed         Phase = "failed"
)

// Terminal reports whether the session will not make further attempts.
func (p Phase) Terminal() bool {
	return p == PhaseStopped || p == PhaseFailed
}

// SessionStatus is a point-in-time snapshot of one session.
type SessionStatus struct {
	Username  string    `json:"username"`
	Phase     Phase     `json:"phase"`
	Attempt   int       `json:"attempt"`
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
