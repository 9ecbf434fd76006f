package session

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/models"
)

var (
	// ErrLoginTimeout is the gate resolution when no logon result arrived
	// within the login timeout.
	ErrLoginTimeout = errors.New("login timed out")

	// ErrLoginCancelled is the gate resolution when the session context was
	// cancelled while waiting for logon.
	ErrLoginCancelled = errors.New("login cancelled")

	// ErrDisconnectedDuringLogin is the gate resolution when the transport
	// dropped before a logon result arrived.
	ErrDisconnectedDuringLogin = errors.New("disconnected during login")

	// ErrConnectionLost ends an attempt whose connection dropped after a
	// successful logon.
	ErrConnectionLost = errors.New("connection lost")

	// ErrAuthentication wraps failures of the credential exchange.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRetriesExhausted is returned by [Supervisor.Run] and [Session.Start]
	// once every retry failed. It wraps the last attempt error.
	ErrRetriesExhausted = errors.New("could not re-login after multiple attempts")

	// ErrAlreadyStarted is returned when Start is called on a running session.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrInvalidSessionConfig is returned by [New] when a required
	// collaborator or field is missing.
	ErrInvalidSessionConfig = errors.New("invalid session configuration")

	errUnknownEvent = errors.New("unknown event")
	errEmptyToken   = errors.New("authentication returned an empty refresh token")
)

// LogOnError reports a logon rejected by the remote service.
type LogOnError struct {
	Result         models.LogOnResult
	ExtendedResult models.LogOnResult
}

func (e *LogOnError) Error() string {
	return fmt.Sprintf("login failed: %s / %s", e.Result, e.ExtendedResult)
}
