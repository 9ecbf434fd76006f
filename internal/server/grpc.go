package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-session-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

type grpcServer struct {
	address string
	handler *myGRPC.Handler
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		address: cfg.GRPCAddress,
		handler: handler,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return g.serve(ctx, lis)
}

func (g *grpcServer) serve(ctx context.Context, lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("launching gRPC server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- g.server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("gRPC server Serve: %w", err)
	case <-ctx.Done():
	}

	// health watchers see NOT_SERVING before the connection goes away
	g.handler.Shutdown()
	g.server.GracefulStop()
	<-errCh

	g.logger.Info().Msg("gRPC server stopped")
	return nil
}
