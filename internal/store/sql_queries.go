package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tokensTable = "tokens"

	upsertTokenSuffix = "ON CONFLICT (username) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at"
)

func newStatementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (s *SQLTokenStorage) buildGetTokenQuery(username string) (string, []any, error) {
	return s.builder.
		Select("token").
		From(tokensTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (s *SQLTokenStorage) buildPutTokenQuery(username string, token []byte, now time.Time) (string, []any, error) {
	return s.builder.
		Insert(tokensTable).
		Columns("username", "token", "updated_at").
		Values(username, token, now.UTC()).
		Suffix(upsertTokenSuffix).
		ToSql()
}

func (s *SQLTokenStorage) buildDeleteTokenQuery(username string) (string, []any, error) {
	return s.builder.
		Delete(tokensTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}
