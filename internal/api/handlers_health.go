// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/pathwise/internal/models"
)

// welcomeEndpoints lists the public routes for GET /.
var welcomeEndpoints = []string{
	"POST /api/v1/recommend",
	"POST /api/v1/ratings",
	"GET /api/v1/ratings",
	"GET /api/v1/ratings/summary",
	"GET /api/v1/model-metrics",
	"GET /api/v1/health",
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":   "Welcome to the Pathwise course and career recommendation API",
		"version":   h.version,
		"endpoints": welcomeEndpoints,
	}, time.Now())
}

// Health handles GET /api/v1/health.
//
// The service is "healthy" when models are loaded and the feedback store
// answers a ping; otherwise "degraded". Recommendations keep working while
// degraded, so the status code is always 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	storeConnected := h.pingStore(r)
	modelsLoaded := h.engine != nil

	status := "healthy"
	if !storeConnected || !modelsLoaded {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:         status,
		Version:        h.version,
		StoreBackend:   h.storeBackend(),
		StoreConnected: storeConnected,
		ModelsLoaded:   modelsLoaded,
		Uptime:         time.Since(h.startTime).Seconds(),
	}
	if modelsLoaded {
		health.SelectedModel = h.engine.Registry().SelectedName()
	}

	respondSuccess(w, http.StatusOK, health, start)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when models are loaded and the feedback store answers.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	storeConnected := h.pingStore(r)
	ready := h.engine != nil && storeConnected

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"models_loaded":   h.engine != nil,
			"store_connected": storeConnected,
			"ready_to_serve":  ready,
			"uptime":          time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

func (h *Handler) pingStore(r *http.Request) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := contextWithTimeout(r, 2*time.Second)
	defer cancel()
	return h.store.Ping(ctx) == nil
}
