package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/migrations"
)

// Dialect names understood by goose and used to pick placeholders.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

const (
	writeRetries   = 3
	writeBaseDelay = 100 * time.Millisecond
)

// DB wraps a database handle together with its dialect and the classifier
// deciding which driver errors are transient.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded token schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op, retrying it with exponential backoff while the
// classifier reports the error as [Retryable]. Without a classifier op runs
// once.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return op(ctx)
	}

	backoff := retry.WithMaxRetries(writeRetries, retry.NewExponential(writeBaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
