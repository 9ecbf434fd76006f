package server

import "context"

// Server defines the lifecycle contract for the status servers.
//
// Run blocks until ctx is cancelled or a listener fails, then releases every
// resource before returning. A clean shutdown returns nil.
type Server interface {
	Run(ctx context.Context) error
}
