// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package database implements the DuckDB feedback store.
//
// # Overview
//
// DuckDB is the default backend for feedback.Store. It keeps every issued
// recommendation and every rating in two tables whose IDs come from DuckDB
// sequences:
//
//   - recommendations: id, user_id, course_name, career_name, created_at
//   - ratings: id, recommendation_id, rating (1..5), comment, created_at
//
// Rating summaries are computed in SQL with a GROUP BY over the rating column.
//
// # Files
//
//   - database.go: lifecycle (open, initialize, close)
//   - database_schema.go: sequences, tables and indexes
//   - migrations.go: versioned migrations tracked in schema_migrations
//   - database_connection.go: pool settings and conflict retries
//   - feedback_store.go: the feedback.Store implementation
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	ids, err := db.SaveRecommendations(ctx, rows)
//
// An empty path or ":memory:" opens an in-memory database, which tests use.
//
// # Thread Safety
//
// DB is safe for concurrent use. database/sql pools the connections and
// DuckDB serialises conflicting writes; conflicts are retried.
package database
