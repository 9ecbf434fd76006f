package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

type httpServer struct {
	address         string
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		address: cfg.HTTPAddress,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		shutdownTimeout: cfg.RequestTimeout,
		logger:          logger,
	}
}

func (h *httpServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", h.address)
	if err != nil {
		return fmt.Errorf("HTTP server listen on %s: %w", h.address, err)
	}
	return h.serve(ctx, lis)
}

func (h *httpServer) serve(ctx context.Context, lis net.Listener) error {
	h.logger.Info().Str("address", lis.Addr().String()).Msg("launching HTTP server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
		_ = h.server.Close()
	}
	<-errCh

	h.logger.Info().Msg("HTTP server stopped")
	return nil
}
