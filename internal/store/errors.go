package store

import "errors"

// Sentinel errors returned by token storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned by Get when no token is stored for the
	// username.
	ErrTokenNotFound = errors.New("token not found")

	// ErrEmptyUsername is returned when a storage call is made without a
	// username.
	ErrEmptyUsername = errors.New("empty username")

	// ErrInvalidUsername is returned by the file storage for usernames that
	// cannot be used as a file name.
	ErrInvalidUsername = errors.New("username is not a valid file name")

	// ErrUnsealToken is returned by the sealed storage when a stored blob
	// cannot be decrypted.
	ErrUnsealToken = errors.New("failed to unseal stored token")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown token storage backend")
)

// Low-level database operation errors. These are wrapped by the SQL storage
// when a statement fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with
	// squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the token column fails.
	ErrScanningRow = errors.New("failed to scan token row")
)
