package adapter

import "errors"

// HTTP status errors returned by the authenticator. They are produced by
// mapHTTPError and wrap the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrAuthDenied is returned by PollForResult when the authentication
	// service rejected the credentials or the second factor.
	ErrAuthDenied = errors.New("authentication denied")

	// ErrGuardCodeRequired is returned when the service asks for a code and
	// no [GuardCodeProvider] is configured.
	ErrGuardCodeRequired = errors.New("guard code required but no provider is configured")

	// ErrInvalidAuthResponse is returned for responses missing mandatory
	// fields.
	ErrInvalidAuthResponse = errors.New("invalid authentication response")

	// ErrNotConnected is returned by Send while the transport is down.
	ErrNotConnected = errors.New("transport is not connected")

	// ErrAlreadyConnected is returned by Connect on a live transport.
	ErrAlreadyConnected = errors.New("transport is already connected")

	// ErrInvalidAddress is returned for an empty or malformed address.
	ErrInvalidAddress = errors.New("invalid address")
)
