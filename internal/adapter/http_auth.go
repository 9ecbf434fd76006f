package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	authStatusPending  = "pending"
	authStatusComplete = "complete"
	authStatusDenied   = "denied"

	defaultAuthPollInterval = 2 * time.Second

	// minAuthPollInterval is the floor for intervals suggested by the service.
	minAuthPollInterval = defaultAuthPollInterval / 4
)

// GuardCodeFunc adapts a plain function to [GuardCodeProvider].
type GuardCodeFunc func(ctx context.Context, username string, kind models.GuardKind) (string, error)

// GuardCode implements [GuardCodeProvider].
func (f GuardCodeFunc) GuardCode(ctx context.Context, username string, kind models.GuardKind) (string, error) {
	return f(ctx, username, kind)
}

type beginAuthResponse struct {
	SessionID    string           `json:"session_id"`
	Interval     float64          `json:"interval"`
	Confirmation models.GuardKind `json:"confirmation"`
}

type guardCodeRequest struct {
	Code string `json:"code"`
}

type authStatusResponse struct {
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	AccountName  string `json:"account_name"`
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

// HTTPAuthenticator runs credential exchanges against the REST
// authentication service.
type HTTPAuthenticator struct {
	client       *resty.Client
	guard        GuardCodeProvider
	pollInterval time.Duration
	logger       *logger.Logger
}

var _ Authenticator = (*HTTPAuthenticator)(nil)

// NewHTTPAuthenticator creates an authenticator for cfg.AuthURL. guard may be
// nil, in which case exchanges that require a code fail with
// [ErrGuardCodeRequired].
func NewHTTPAuthenticator(cfg config.Adapter, guard GuardCodeProvider, log *logger.Logger) (*HTTPAuthenticator, error) {
	baseURL, err := normalizeBaseURL(cfg.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultAuthPollInterval
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPAuthenticator{
		client:       client,
		guard:        guard,
		pollInterval: interval,
		logger:       log,
	}, nil
}

// BeginAuthSession implements [Authenticator]. When the service asks for a
// code, the guard provider is consulted and the code submitted before the
// session is returned.
func (h *HTTPAuthenticator) BeginAuthSession(ctx context.Context, creds models.Credentials) (AuthSession, error) {
	var begin beginAuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&begin).
		Post("/auth/sessions")
	if err != nil {
		return nil, fmt.Errorf("begin auth session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if begin.SessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", ErrInvalidAuthResponse)
	}

	switch begin.Confirmation {
	case models.GuardNone:
	case models.GuardDeviceTouch:
		h.logger.Info().Str("account", creds.Username).Msg("confirm the login on your device")
	case models.GuardDeviceCode, models.GuardEmailCode:
		if err = h.submitGuardCode(ctx, begin.SessionID, creds.Username, begin.Confirmation); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown confirmation %q", ErrInvalidAuthResponse, begin.Confirmation)
	}

	interval := h.pollInterval
	if begin.Interval > 0 {
		interval = max(time.Duration(begin.Interval*float64(time.Second)), minAuthPollInterval)
	}

	return &httpAuthSession{
		client:    h.client,
		sessionID: begin.SessionID,
		interval:  interval,
	}, nil
}

func (h *HTTPAuthenticator) submitGuardCode(ctx context.Context, sessionID, username string, kind models.GuardKind) error {
	if h.guard == nil {
		return ErrGuardCodeRequired
	}

	code, err := h.guard.GuardCode(ctx, username, kind)
	if err != nil {
		return fmt.Errorf("get %s: %w", kind, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", sessionID).
		SetBody(guardCodeRequest{Code: strings.TrimSpace(code)}).
		Post("/auth/sessions/{id}/code")
	if err != nil {
		return fmt.Errorf("submit guard code request: %w", err)
	}
	return mapHTTPError(resp)
}

type httpAuthSession struct {
	client    *resty.Client
	sessionID string
	interval  time.Duration
}

// PollForResult implements [AuthSession].
func (s *httpAuthSession) PollForResult(ctx context.Context) (models.AuthResult, error) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return models.AuthResult{}, ctx.Err()
		case <-timer.C:
		}

		status, err := s.poll(ctx)
		if err != nil {
			return models.AuthResult{}, err
		}

		switch status.Status {
		case authStatusPending:
			timer.Reset(s.interval)
		case authStatusComplete:
			if status.RefreshToken == "" {
				return models.AuthResult{}, fmt.Errorf("%w: missing refresh token", ErrInvalidAuthResponse)
			}
			return models.AuthResult{
				AccountName:  status.AccountName,
				RefreshToken: status.RefreshToken,
				AccessToken:  status.AccessToken,
			}, nil
		case authStatusDenied:
			return models.AuthResult{}, fmt.Errorf("%w: %s", ErrAuthDenied, status.Reason)
		default:
			return models.AuthResult{}, fmt.Errorf("%w: unknown status %q", ErrInvalidAuthResponse, status.Status)
		}
	}
}

func (s *httpAuthSession) poll(ctx context.Context) (authStatusResponse, error) {
	var status authStatusResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", s.sessionID).
		SetResult(&status).
		Get("/auth/sessions/{id}")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return authStatusResponse{}, ctxErr
		}
		return authStatusResponse{}, fmt.Errorf("poll auth session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return authStatusResponse{}, err
	}
	return status, nil
}

// normalizeBaseURL accepts host:port or a full URL and returns the URL
// without a trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
