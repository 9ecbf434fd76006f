// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps one authenticated account connected and active.
//
// A [Session] owns a transport and drives it through connect, credential
// exchange, logon and activity announcement. Each connection attempt gets
// its own context, event dispatch goroutine and [LoginGate]. The
// [Supervisor] retries failed attempts with capped exponential backoff and
// gives up after a bounded number of retries.
//
// Transport events are consumed by a single dispatch goroutine per attempt,
// so handlers never run concurrently with each other. The only value
// written from more than one goroutine is the login gate, which records its
// first resolution and ignores the rest.
package session
