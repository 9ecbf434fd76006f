// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestAuthenticator(t *testing.T, serverURL string, guard GuardCodeProvider) *HTTPAuthenticator {
	t.Helper()
	a, err := NewHTTPAuthenticator(config.Adapter{
		AuthURL:        serverURL,
		RequestTimeout: 2 * time.Second,
		PollInterval:   5 * time.Millisecond,
	}, guard, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── NewHTTPAuthenticator ──────────────────────────────────────────────────────

func TestNewHTTPAuthenticator_InvalidURL(t *testing.T) {
	_, err := NewHTTPAuthenticator(config.Adapter{AuthURL: "  "}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8088", want: "http://localhost:8088"},
		{raw: "https://auth.example.com/", want: "https://auth.example.com"},
		{raw: " http://127.0.0.1:1/api ", want: "http://127.0.0.1:1/api"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── exchange ──────────────────────────────────────────────────────────────────

func TestHTTPAuthenticator_Success(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/sessions":
			var creds models.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "alice", creds.Username)
			assert.Equal(t, "secret", creds.Password)
			assert.True(t, creds.PersistentSession)
			writeJSON(t, w, http.StatusCreated, beginAuthResponse{SessionID: "s1"})
		case r.Method == http.MethodGet && r.URL.Path == "/auth/sessions/s1":
			if polls.Add(1) < 3 {
				writeJSON(t, w, http.StatusOK, authStatusResponse{Status: authStatusPending})
				return
			}
			writeJSON(t, w, http.StatusOK, authStatusResponse{
				Status:       authStatusComplete,
				AccountName:  "alice_acc",
				RefreshToken: "refresh",
				AccessToken:  "access",
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAuthenticator(t, srv.URL, nil)
	session, err := a.BeginAuthSession(context.Background(), models.Credentials{
		Username: "alice", Password: "secret", PersistentSession: true,
	})
	require.NoError(t, err)

	result, err := session.PollForResult(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AuthResult{AccountName: "alice_acc", RefreshToken: "refresh", AccessToken: "access"}, result)
	assert.EqualValues(t, 3, polls.Load())
}

func TestHTTPAuthenticator_GuardCode(t *testing.T) {
	var submitted atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/sessions":
			writeJSON(t, w, http.StatusOK, beginAuthResponse{SessionID: "s2", Confirmation: models.GuardEmailCode})
		case "/auth/sessions/s2/code":
			var req guardCodeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			submitted.Store(req.Code)
			w.WriteHeader(http.StatusNoContent)
		case "/auth/sessions/s2":
			writeJSON(t, w, http.StatusOK, authStatusResponse{Status: authStatusComplete, RefreshToken: "r"})
		}
	}))
	defer srv.Close()

	var askedKind models.GuardKind
	guard := GuardCodeFunc(func(_ context.Context, username string, kind models.GuardKind) (string, error) {
		assert.Equal(t, "bob", username)
		askedKind = kind
		return " 12345 ", nil
	})

	a := newTestAuthenticator(t, srv.URL, guard)
	session, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.GuardEmailCode, askedKind)
	assert.Equal(t, "12345", submitted.Load())

	result, err := session.PollForResult(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r", result.RefreshToken)
}

func TestHTTPAuthenticator_GuardCodeWithoutProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, beginAuthResponse{SessionID: "s3", Confirmation: models.GuardDeviceCode})
	}))
	defer srv.Close()

	a := newTestAuthenticator(t, srv.URL, nil)
	_, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "bob"})
	assert.ErrorIs(t, err, ErrGuardCodeRequired)
}

func TestHTTPAuthenticator_GuardProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, beginAuthResponse{SessionID: "s3", Confirmation: models.GuardDeviceCode})
	}))
	defer srv.Close()

	providerErr := errors.New("prompt closed")
	a := newTestAuthenticator(t, srv.URL, GuardCodeFunc(func(context.Context, string, models.GuardKind) (string, error) {
		return "", providerErr
	}))
	_, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "bob"})
	assert.ErrorIs(t, err, providerErr)
}

func TestHTTPAuthenticator_BeginErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: map[string]string{"error": "bad password"}, wantErr: ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, body: map[string]string{}, wantErr: ErrTooManyRequests},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: map[string]string{}, wantErr: ErrServiceUnavailable},
		{name: "missing session id", status: http.StatusOK, body: beginAuthResponse{}, wantErr: ErrInvalidAuthResponse},
		{name: "unknown confirmation", status: http.StatusOK, body: beginAuthResponse{SessionID: "x", Confirmation: "carrier_pigeon"}, wantErr: ErrInvalidAuthResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAuthenticator(t, srv.URL, nil)
			_, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "u"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPAuthSession_PollOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		status  authStatusResponse
		wantErr error
	}{
		{name: "denied", status: authStatusResponse{Status: authStatusDenied, Reason: "wrong code"}, wantErr: ErrAuthDenied},
		{name: "complete without token", status: authStatusResponse{Status: authStatusComplete}, wantErr: ErrInvalidAuthResponse},
		{name: "unknown status", status: authStatusResponse{Status: "exploded"}, wantErr: ErrInvalidAuthResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					writeJSON(t, w, http.StatusOK, beginAuthResponse{SessionID: "s"})
					return
				}
				writeJSON(t, w, http.StatusOK, tt.status)
			}))
			defer srv.Close()

			a := newTestAuthenticator(t, srv.URL, nil)
			session, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "u"})
			require.NoError(t, err)

			_, err = session.PollForResult(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPAuthSession_PollHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(t, w, http.StatusOK, beginAuthResponse{SessionID: "s"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAuthenticator(t, srv.URL, nil)
	session, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "u"})
	require.NoError(t, err)

	_, err = session.PollForResult(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPAuthSession_PollCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(t, w, http.StatusOK, beginAuthResponse{SessionID: "s", Interval: 60})
			return
		}
		writeJSON(t, w, http.StatusOK, authStatusResponse{Status: authStatusPending})
	}))
	defer srv.Close()

	a := newTestAuthenticator(t, srv.URL, nil)
	session, err := a.BeginAuthSession(context.Background(), models.Credentials{Username: "u"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = session.PollForResult(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHTTPAuthenticator_SuggestedIntervalIsClamped(t *testing.T) {
	tests := []struct {
		name      string
		suggested float64
		want      time.Duration
	}{
		{name: "none uses configured", suggested: 0, want: 5 * time.Millisecond},
		{name: "tiny is raised to floor", suggested: 0.001, want: minAuthPollInterval},
		{name: "reasonable is kept", suggested: 5, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusCreated, beginAuthResponse{SessionID: "s", Interval: tt.suggested})
			}))
			defer srv.Close()

			session, err := newTestAuthenticator(t, srv.URL, nil).
				BeginAuthSession(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
			require.NoError(t, err)

			httpSession, ok := session.(*httpAuthSession)
			require.True(t, ok)
			assert.Equal(t, tt.want, httpSession.interval)
		})
	}
}
