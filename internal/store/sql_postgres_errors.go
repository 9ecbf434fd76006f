package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] what to do with a failed token
// upsert or delete.
type ErrorClassification int

const (
	// NonRetryable means the token write failed for good and the error goes
	// back to the session unchanged.
	NonRetryable ErrorClassification = iota

	// Retryable means the same write may go through on another attempt.
	Retryable
)

// PostgresErrorClassifier decides whether a refresh token write that failed
// against PostgreSQL is worth repeating.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns a classifier for the postgres dialect.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] when the token write never reached the server
// or was rolled back by it for reasons unrelated to the row itself.
// A bad username or a constraint failure will fail the same way again, so
// everything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var (
		connectErr *pgconn.ConnectError
		pgErr      *pgconn.PgError
	)

	switch {
	case err == nil:
		return NonRetryable
	case errors.As(err, &connectErr), pgconn.SafeToRetry(err):
		return Retryable
	case errors.As(err, &pgErr):
		return ClassifyPgError(pgErr)
	default:
		return NonRetryable
	}
}

// ClassifyPgError maps the SQLSTATE of a rejected token write to an
// [ErrorClassification]. Lost connections (class 08), rollbacks such as
// deadlocks between two sessions saving the same account (class 40) and a
// server that is still starting or shutting down are retried.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}
