package utils

import "github.com/google/uuid"

// NewAttemptID returns a time-ordered identifier used to correlate the log
// lines of one connection attempt. It falls back to a random UUID if the
// clock-based generator fails.
func NewAttemptID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
