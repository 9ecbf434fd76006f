// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoHandlersAreCreated is returned by NewHandlers when neither an HTTP nor
// a gRPC status address is configured. Callers treat it as "status surface
// disabled".
var ErrNoHandlersAreCreated = errors.New("no handlers are created")
