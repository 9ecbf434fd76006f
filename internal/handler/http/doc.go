// Package http implements the read-only status API of the session keeper.
//
// It exposes the latest status of every managed session and the build
// information. Requests are tagged with a trace id and access-logged before
// they reach the handlers.
package http
