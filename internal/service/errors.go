package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
	// build carries no version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSessionNotFound is returned by [StatusService.Get] for an account
	// that is not managed by this process.
	ErrSessionNotFound = errors.New("session not found")
)
