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

// ModelMetrics handles GET /api/v1/model-metrics.
func (h *Handler) ModelMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Models are not loaded", nil)
		return
	}

	reg := h.engine.Registry()
	table := reg.Metrics()
	scores := make(map[string]models.ModelScores, len(table))
	for name, m := range table {
		scores[name] = models.ModelScores{
			Accuracy:  m.Accuracy,
			Precision: m.Precision,
			Recall:    m.Recall,
			F1Score:   m.F1Score,
		}
	}

	respondSuccess(w, http.StatusOK, models.ModelMetricsResponse{
		SelectedModel:    reg.SelectedName(),
		SelectedAccuracy: reg.Accuracy(),
		Metrics:          scores,
	}, start)
}
