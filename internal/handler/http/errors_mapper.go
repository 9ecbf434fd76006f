package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-keeper/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrSessionNotFound:       http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
