package service

import (
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// Services groups the services used by the status surface.
type Services struct {
	AppInfoService AppInfoService
	StatusService  StatusService
}

// NewServices builds the services for one process.
func NewServices(buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		StatusService:  NewStatusService(logger),
	}, nil
}
