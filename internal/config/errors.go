package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot start a keeper.
var (
	// ErrNoAccounts indicates that no source provided any account.
	ErrNoAccounts = errors.New("no accounts configured")
	// ErrInvalidAccount indicates an account without username or password.
	ErrInvalidAccount = errors.New("invalid account configuration")
	// ErrDuplicateAccount indicates two accounts sharing a username,
	// compared case-insensitively.
	ErrDuplicateAccount = errors.New("duplicate account")
	// ErrInvalidStorageConfigs indicates invalid token storage settings
	// (for example, an unknown backend or a missing DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a missing transport address or a zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidConfigFile indicates a config file that could not be decoded.
	ErrInvalidConfigFile = errors.New("invalid config file")
)
