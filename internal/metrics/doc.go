// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are package-level promauto globals registered with the default
// registry. Callers use the Record helpers rather than touching label values
// directly:
//
//	start := time.Now()
//	bundle, err := engine.Recommend(ctx, input)
//	metrics.RecordRecommendation("success", time.Since(start), len(bundle.Courses), len(bundle.Careers))
//
// # Metric Families
//
//   - api_*: request counts, latency and in-flight requests per route
//   - recommendations_total, recommendation_*: engine outcomes and latency
//   - recommend_cache_*: bundle cache efficiency
//   - catalog_matches_total: exact, fuzzy and failed catalog joins
//   - model_accuracy: accuracy of every loaded model
//   - feedback_store_*: store latency and errors per backend
//   - ratings_total: submitted ratings by star value
//   - circuit_breaker_*: feedback store breaker state
package metrics
