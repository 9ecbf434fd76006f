package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/models"
)

func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 16)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_TracksSessionPhase(t *testing.T) {
	services, err := service.NewServices(models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	services.StatusService.Register("alice")

	h := NewHandler(services, logger.Nop())
	client := newHealthClient(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, "alice"))

	services.StatusService.Update(models.SessionStatus{Username: "alice", Phase: models.PhaseActive})
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, "alice"))

	services.StatusService.Update(models.SessionStatus{Username: "alice", Phase: models.PhaseConnecting, Attempt: 1})
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, "alice"))

	// the overall server status is always registered
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
}

func TestHandler_UnknownService(t *testing.T) {
	services, err := service.NewServices(models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	client := newHealthClient(t, NewHandler(services, logger.Nop()))

	_, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "ghost"})
	assert.Error(t, err)
}

func TestHandler_Shutdown(t *testing.T) {
	services, err := service.NewServices(models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, logger.Nop())
	client := newHealthClient(t, h)

	services.StatusService.Update(models.SessionStatus{Username: "bob", Phase: models.PhaseActive})
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, "bob"))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, "bob"))

	services.StatusService.Update(models.SessionStatus{Username: "bob", Phase: models.PhaseActive})
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, "bob"))
}

func TestServingStatus(t *testing.T) {
	for _, phase := range []models.Phase{
		models.PhaseDisconnected, models.PhaseConnecting, models.PhaseAuthenticating,
		models.PhaseLoggedOn, models.PhaseStopped, models.PhaseFailed,
	} {
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(phase), phase)
	}
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(models.PhaseActive))
}
