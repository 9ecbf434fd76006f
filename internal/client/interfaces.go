// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the keeper process.
type Client interface {
	// Run blocks until ctx is cancelled or every session has stopped.
	Run(ctx context.Context) error

	// Close releases resources opened by the constructor.
	Close() error
}
