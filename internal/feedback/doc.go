// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package feedback persists issued recommendations and the ratings students
// give them.
//
// # Backends
//
//   - DuckDB (package database): the default, columnar and queryable
//   - Badger: embedded key-value store, one JSON value per row
//   - Memory: process-local, for tests and ephemeral deployments
//
// # Decorators
//
// Store implementations are wrapped at startup:
//
//	store = feedback.WithMetrics(store, "duckdb")
//	store = feedback.WithCircuitBreaker(store, "feedback-store")
//
// WithMetrics records per-operation latency and errors. WithCircuitBreaker
// stops calling a failing backend; while the circuit is open every call
// fails fast with ErrUnavailable. ErrNotFound is a normal answer and never
// trips the breaker.
//
// Persistence is best effort for recommendations: callers log failures and
// return the bundle without IDs.
package feedback
