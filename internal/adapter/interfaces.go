// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects sessions to the remote service.
//
// [Transport] is the connection that carries logon and activity commands and
// delivers events. [Authenticator] performs the credential exchange that
// yields a refresh token. The package ships a TCP/TLS JSON-lines transport
// ([NewTCPTransport]) and a REST authenticator built on resty
// ([NewHTTPAuthenticator]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport is a connection to the remote service.
//
// Events delivers notifications for the lifetime of the transport, across
// reconnects. Connect must emit [models.EventConnected] once the link is up
// and every established connection emits exactly one
// [models.EventDisconnected] when it ends.
type Transport interface {
	// Connect establishes the connection.
	Connect(ctx context.Context) error

	// Disconnect closes the current connection. It returns once the
	// disconnect event has been queued. Calling it while disconnected is a
	// no-op.
	Disconnect() error

	// Send writes one command to the remote service.
	Send(ctx context.Context, msg models.Message) error

	// Events returns the notification channel.
	Events() <-chan models.Event
}

// Authenticator starts credential exchanges.
type Authenticator interface {
	// BeginAuthSession submits the credentials and returns a handle to poll
	// for the outcome.
	BeginAuthSession(ctx context.Context, creds models.Credentials) (AuthSession, error)
}

// AuthSession is one in-flight credential exchange.
type AuthSession interface {
	// PollForResult blocks until the exchange completes, is denied or ctx is
	// done.
	PollForResult(ctx context.Context) (models.AuthResult, error)
}

// GuardCodeProvider supplies second-factor codes requested during the
// credential exchange.
type GuardCodeProvider interface {
	GuardCode(ctx context.Context, username string, kind models.GuardKind) (string, error)
}
