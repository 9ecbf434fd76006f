// Package server runs the optional status servers.
//
// The HTTP server exposes the JSON status API and the gRPC server exposes
// grpc.health.v1. Both listen until the context passed to Run is cancelled
// and then shut down gracefully.
package server
