package server

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/handler"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a server for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating status servers...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, ErrNoServersAreCreated
	}

	return servers, nil
}

// Run serves every created server until ctx is cancelled. If one server
// fails the others are shut down and the first error is returned.
func (s *server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(func() error { return s.httpServer.Run(gctx) })
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.Run(gctx) })
	}

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("status server failed")
		return err
	}

	s.logger.Info().Msg("status servers shut down gracefully")
	return nil
}
