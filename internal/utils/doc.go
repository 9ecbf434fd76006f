// Package utils holds small helpers shared across packages: JSON responses
// for the status API, refresh token inspection and attempt identifiers.
package utils
