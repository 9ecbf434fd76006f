// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the session keeper process together.
//
// It opens token storage, builds one transport and session per configured
// account, starts the optional status servers and runs everything until
// the root context is cancelled.
package client
