package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/models"
)

// tokenLeeway treats tokens expiring this soon as already expired.
const tokenLeeway = time.Minute

// logOnToken is what the logon command needs.
type logOnToken struct {
	accountName string
	token       string
	stored      bool
}

// credentials resolves the token presented at logon, preferring a stored
// refresh token over a new credential exchange.
type credentials struct {
	account models.AccountConfig
	auth    adapter.Authenticator
	tokens  store.TokenStorage
	now     func() time.Time
	logger  *logger.Logger
}

func (c *credentials) resolve(ctx context.Context) (logOnToken, error) {
	if token, ok := c.stored(ctx); ok {
		c.logger.Info().Msg("logging on with stored refresh token")
		return logOnToken{accountName: c.account.Username, token: token, stored: true}, nil
	}

	authSession, err := c.auth.BeginAuthSession(ctx, models.Credentials{
		Username:          c.account.Username,
		Password:          c.account.Password,
		PersistentSession: true,
	})
	if err != nil {
		return logOnToken{}, fmt.Errorf("begin auth session: %w", err)
	}

	result, err := authSession.PollForResult(ctx)
	if err != nil {
		return logOnToken{}, fmt.Errorf("poll auth result: %w", err)
	}
	if result.RefreshToken == "" {
		return logOnToken{}, errEmptyToken
	}

	accountName := result.AccountName
	if accountName == "" {
		accountName = c.account.Username
	}

	c.save(ctx, result.RefreshToken)

	return logOnToken{accountName: accountName, token: result.RefreshToken}, nil
}

func (c *credentials) stored(ctx context.Context) (string, bool) {
	if c.tokens == nil {
		return "", false
	}

	raw, err := c.tokens.Get(ctx, c.account.Username)
	if errors.Is(err, store.ErrTokenNotFound) {
		return "", false
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("could not read stored token")
		return "", false
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	if utils.TokenExpired(token, c.now(), tokenLeeway) {
		c.logger.Info().Msg("stored refresh token expired")
		c.forget(ctx)
		return "", false
	}

	return token, true
}

func (c *credentials) save(ctx context.Context, token string) {
	if c.tokens == nil {
		return
	}
	if err := c.tokens.Put(ctx, c.account.Username, []byte(token)); err != nil {
		c.logger.Warn().Err(err).Msg("could not store refresh token")
	}
}

// forget removes a stored token the remote service rejected.
func (c *credentials) forget(ctx context.Context) {
	if c.tokens == nil {
		return
	}
	if err := c.tokens.Delete(ctx, c.account.Username); err != nil {
		c.logger.Warn().Err(err).Msg("could not delete stored token")
		return
	}
	c.logger.Info().Msg("stored refresh token removed")
}
