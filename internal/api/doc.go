// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

/*
Package api provides the HTTP REST API layer for Pathwise.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for recommendations, ratings, model metrics
    and health
  - Response formatting: the models.APIResponse envelope
    {status, data, metadata, error}

Endpoints:

	GET  /                        welcome message and endpoint list
	POST /api/v1/recommend        course and career bundle for a student
	POST /api/v1/ratings          rate a recommendation (1..5)
	GET  /api/v1/ratings          all ratings, oldest first
	GET  /api/v1/ratings/summary  count, average and per-star counts
	GET  /api/v1/model-metrics    evaluation metrics and the selected model
	GET  /api/v1/health           health, /live and /ready probes
	GET  /metrics                 Prometheus exposition

Middleware Stack:

Every route runs RequestID, RealIP, Recoverer, CORS and Compression. API
routes add per-IP rate limiting (go-chi/httprate), security headers and
Prometheus instrumentation.

Persistence:

Recommendations are persisted best effort. When the feedback store fails or
its circuit breaker is open, POST /api/v1/recommend still returns 200 and
the bundle simply carries no IDs.

Usage Example:

	handler := api.NewHandler(engine, store, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: ":8000", Handler: router.SetupChi()}
*/
package api
