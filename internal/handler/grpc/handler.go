// Package grpc exposes session liveness through the standard
// grpc.health.v1 service. Every configured account is a health service name
// that reports SERVING while its session is active.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/models"
)

// Handler is the root gRPC transport handler.
//
// It owns the health server and keeps it in sync with the status service.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler], seeds a NOT_SERVING entry for every
// known session and subscribes to status updates.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	for _, status := range services.StatusService.List(context.Background()) {
		h.setStatus(status)
	}
	services.StatusService.Subscribe(h.setStatus)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status models.SessionStatus) {
	serving := servingStatus(status.Phase)
	h.health.SetServingStatus(status.Username, serving)

	h.logger.Debug().
		Str("account", status.Username).
		Str("health", serving.String()).
		Msg("health status updated")
}

func servingStatus(phase models.Phase) healthpb.HealthCheckResponse_ServingStatus {
	if phase == models.PhaseActive {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}
