// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the operator dismisses the prompt.
	ErrUserQuit = errors.New("guard code prompt dismissed")

	// ErrUnsupportedGuard is returned for guard kinds that take no code.
	ErrUnsupportedGuard = errors.New("guard kind does not take a code")
)
