// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the read side of the keeper: build information and
// the latest status of every managed session.
package service

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// StatusService keeps the most recent [models.SessionStatus] of each
// account. Update is called by sessions and satisfies the session status
// observer contract.
type StatusService interface {
	// Register announces an account before its session starts so that it is
	// listed in configuration order.
	Register(username string)

	// Update records a new status and notifies subscribers.
	Update(status models.SessionStatus)

	// List returns all statuses in registration order.
	List(ctx context.Context) []models.SessionStatus

	// Get returns the status of one account or [ErrSessionNotFound].
	Get(ctx context.Context, username string) (models.SessionStatus, error)

	// Subscribe registers fn to be called after every Update.
	Subscribe(fn func(models.SessionStatus))
}
