// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

/*
Package models defines the data structures shared between the HTTP API and the
feedback stores.

  - APIResponse, Metadata, APIError: the JSON envelope used by every endpoint
  - StoredRecommendation, Rating, RatingSummary: feedback persisted by the
    DuckDB, Badger and in-memory stores
  - HealthStatus, ModelMetricsResponse: operational endpoints

Recommendation bundles themselves are defined by the recommend package.
*/
package models
