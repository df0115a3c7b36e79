// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package main

import (
	"fmt"
	"io"

	"github.com/tomtom215/pathwise/internal/config"
	"github.com/tomtom215/pathwise/internal/database"
	"github.com/tomtom215/pathwise/internal/feedback"
	"github.com/tomtom215/pathwise/internal/logging"
	"github.com/tomtom215/pathwise/internal/supervisor/services"
)

// storeComponents is the feedback store served to the API together with the
// raw backend, which owns the underlying resources.
type storeComponents struct {
	// Store is the instrumented, possibly circuit-broken store.
	Store feedback.Store

	// Maintainer is the backend's housekeeping hook; nil for memory.
	Maintainer services.Maintainer

	backend io.Closer
}

// Close closes the backend.
func (s *storeComponents) Close() error {
	return s.backend.Close()
}

// initStore opens the configured backend and wraps it with metrics and, when
// enabled, a circuit breaker.
func initStore(cfg *config.Config) (*storeComponents, error) {
	var (
		base       feedback.Store
		maintainer services.Maintainer
	)

	switch cfg.Store.Backend {
	case config.BackendDuckDB:
		db, err := database.New(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open duckdb store: %w", err)
		}
		base, maintainer = db, db

	case config.BackendBadger:
		bs, err := feedback.OpenBadgerStore(feedback.BadgerOptions{
			Path:     cfg.Store.BadgerPath,
			InMemory: cfg.Store.BadgerInMemory,
		})
		if err != nil {
			return nil, fmt.Errorf("open badger store: %w", err)
		}
		base, maintainer = bs, bs
		logging.Info().
			Str("path", cfg.Store.BadgerPath).
			Bool("in_memory", cfg.Store.BadgerInMemory).
			Msg("BadgerDB feedback store opened")

	case config.BackendMemory:
		base = feedback.NewMemoryStore()
		logging.Warn().Msg("Using in-memory feedback store; ratings are lost on restart")

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	store := feedback.WithMetrics(base, cfg.Store.Backend)
	if cfg.Store.CircuitBreaker {
		store = feedback.WithCircuitBreaker(store, "feedback-"+cfg.Store.Backend)
		logging.Info().Msg("Feedback store circuit breaker enabled")
	}

	return &storeComponents{Store: store, Maintainer: maintainer, backend: base}, nil
}
