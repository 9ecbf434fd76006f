package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/handler"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/server"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/session"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/tui"
	"github.com/MKhiriev/go-session-keeper/internal/workers"
	"github.com/MKhiriev/go-session-keeper/models"
)

// App owns every long-lived component of the process.
type App struct {
	sessions []*session.Session
	server   server.Server
	services *service.Services
	storages *store.Storages

	logger *logger.Logger
}

// NewApp builds the application from a validated configuration. Nothing
// connects until [App.Run].
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg.App.Version != "" && buildInfo.Version == "N/A" {
		buildInfo.Version = cfg.App.Version
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create token storage: %w", err)
	}

	app := &App{storages: storages, logger: log}
	if err = app.build(cfg, buildInfo); err != nil {
		return nil, errors.Join(err, storages.Close())
	}
	return app, nil
}

func (a *App) build(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo) error {
	services, err := service.NewServices(buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}
	a.services = services

	var guard adapter.GuardCodeProvider
	if cfg.App.Interactive {
		guard = tui.New(a.logger)
	}

	auth, err := adapter.NewHTTPAuthenticator(cfg.Adapter, guard, a.logger)
	if err != nil {
		return fmt.Errorf("create authenticator: %w", err)
	}

	for _, account := range cfg.Accounts {
		accountLog := a.logger.ForAccount(account.Username)

		transport, err := adapter.NewTCPTransport(cfg.Adapter, accountLog)
		if err != nil {
			return fmt.Errorf("create transport for %s: %w", account.Username, err)
		}

		s, err := session.New(session.Config{
			Account:       account,
			Transport:     transport,
			Authenticator: auth,
			Tokens:        a.storages.Tokens,
			Observer:      services.StatusService,
			Logger:        a.logger,
			LoginTimeout:  cfg.Session.LoginTimeout,
		})
		if err != nil {
			return fmt.Errorf("create session for %s: %w", account.Username, err)
		}

		services.StatusService.Register(account.Username)
		a.sessions = append(a.sessions, s)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, a.logger)
	if errors.Is(err, handler.ErrNoHandlersAreCreated) {
		a.logger.Info().Msg("status server disabled")
		return nil
	}
	if err != nil {
		return err
	}

	a.server, err = server.NewServer(handlers, cfg.Server, a.logger)
	return err
}

// Run starts every session and the status server. It returns once all
// sessions have stopped; the status server is shut down afterwards.
//
// A session that gives up is logged and does not affect the others or the
// returned error. Only a status server failure is reported.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Int("accounts", len(a.sessions)).Msg("starting sessions")

	serverCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()

	sessions := workers.NewWorkers(a.logger)
	for _, s := range a.sessions {
		sessions.Add(s.Username(), workers.WorkerFunc(s.Start))
	}

	root := workers.NewWorkers(a.logger)
	root.Add("sessions", workers.WorkerFunc(func(ctx context.Context) error {
		defer stopServer()
		if err := sessions.Run(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("some sessions stopped with errors")
		}
		return nil
	}))

	var serverErr error
	if a.server != nil {
		root.Add("status-server", workers.WorkerFunc(func(context.Context) error {
			serverErr = a.server.Run(serverCtx)
			return serverErr
		}))
	}

	_ = root.Run(ctx)

	a.logger.Info().Msg("all sessions stopped")
	return serverErr
}

// Statuses returns the latest snapshot of every session.
func (a *App) Statuses(ctx context.Context) []models.SessionStatus {
	return a.services.StatusService.List(ctx)
}

// Close releases the token storage.
func (a *App) Close() error {
	return a.storages.Close()
}
