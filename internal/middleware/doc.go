// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: request and correlation IDs for logging.Ctx
  - PrometheusMetrics: per-route request count, latency and in-flight gauge
  - Compression: gzip for clients that send Accept-Encoding: gzip

All three use the func(http.HandlerFunc) http.HandlerFunc shape. The api
package adapts them to chi's func(http.Handler) http.Handler:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
