// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pathwise/internal/config"
	"github.com/tomtom215/pathwise/internal/feedback"
	"github.com/tomtom215/pathwise/internal/logging"
	"github.com/tomtom215/pathwise/internal/recommend"
)

// defaultRequestTimeout bounds handler work when the server timeout is unset.
const defaultRequestTimeout = 10 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, decoding and validation helpers
//   - handlers_health.go: root, health, liveness and readiness
//   - handlers_recommend.go: POST /recommend
//   - handlers_ratings.go: ratings and rating summary
//   - handlers_models.go: model metrics
type Handler struct {
	engine    *recommend.Engine
	store     feedback.Store
	config    *config.Config
	version   string
	startTime time.Time
	logger    zerolog.Logger
}

// NewHandler creates a handler over engine and store. store may be nil, in
// which case recommendations are not persisted and rating endpoints answer
// 503.
//
//	handler := api.NewHandler(engine, store, cfg, version)
func NewHandler(engine *recommend.Engine, store feedback.Store, cfg *config.Config, version string) *Handler {
	return &Handler{
		engine:    engine,
		store:     store,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
		logger:    logging.WithComponent("api"),
	}
}

// requestTimeout returns the per-request handler timeout.
func (h *Handler) requestTimeout() time.Duration {
	if h.config != nil && h.config.Server.Timeout > 0 {
		return h.config.Server.Timeout
	}
	return defaultRequestTimeout
}

// storeBackend names the configured feedback backend for health output.
func (h *Handler) storeBackend() string {
	if h.store == nil {
		return "none"
	}
	if h.config == nil {
		return "unknown"
	}
	return h.config.Store.Backend
}
