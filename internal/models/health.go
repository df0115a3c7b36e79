// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package models

// HealthStatus represents the health check response
type HealthStatus struct {
	Status         string  `json:"status"` // "healthy" or "degraded"
	Version        string  `json:"version"`
	StoreBackend   string  `json:"store_backend"`
	StoreConnected bool    `json:"store_connected"`
	ModelsLoaded   bool    `json:"models_loaded"`
	SelectedModel  string  `json:"selected_model,omitempty"`
	Uptime         float64 `json:"uptime_seconds"`
}

// ModelScores holds the evaluation metrics reported for one model.
type ModelScores struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
}

// ModelMetricsResponse is the body of GET /api/v1/model-metrics.
type ModelMetricsResponse struct {
	SelectedModel    string                 `json:"selected_model"`
	SelectedAccuracy float64                `json:"selected_accuracy"`
	Metrics          map[string]ModelScores `json:"metrics"`
}
