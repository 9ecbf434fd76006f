package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

type statusService struct {
	mu       sync.RWMutex
	order    []string
	statuses map[string]models.SessionStatus

	listenersMu sync.RWMutex
	listeners   []func(models.SessionStatus)

	logger *logger.Logger
}

// NewStatusService creates an empty in-memory [StatusService]. Usernames are
// matched case-insensitively.
func NewStatusService(logger *logger.Logger) StatusService {
	return &statusService{
		statuses: make(map[string]models.SessionStatus),
		logger:   logger,
	}
}

func (s *statusService) Register(username string) {
	key := statusKey(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.statuses[key]; ok {
		return
	}
	s.order = append(s.order, key)
	s.statuses[key] = models.SessionStatus{Username: username, Phase: models.PhaseDisconnected}
}

func (s *statusService) Update(status models.SessionStatus) {
	key := statusKey(status.Username)

	s.mu.Lock()
	if _, ok := s.statuses[key]; !ok {
		s.order = append(s.order, key)
	}
	s.statuses[key] = status
	s.mu.Unlock()

	s.logger.Debug().
		Str("account", status.Username).
		Str("phase", string(status.Phase)).
		Int("attempt", status.Attempt).
		Msg("session status updated")

	s.listenersMu.RLock()
	listeners := s.listeners
	s.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(status)
	}
}

func (s *statusService) List(ctx context.Context) []models.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SessionStatus, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.statuses[key])
	}
	return out
}

func (s *statusService) Get(ctx context.Context, username string) (models.SessionStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.statuses[statusKey(username)]
	if !ok {
		return models.SessionStatus{}, fmt.Errorf("%w: %s", ErrSessionNotFound, username)
	}
	return status, nil
}

func (s *statusService) Subscribe(fn func(models.SessionStatus)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func statusKey(username string) string {
	return strings.ToLower(username)
}
