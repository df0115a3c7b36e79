// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

/*
Package main is the entry point for the Pathwise server.

Pathwise scores a student's grades, interests, skills, intelligence scores
and aptitudes with pre-trained models and returns course and career
recommendations. Recommendations are persisted so students can rate them.

# Startup

 1. Configuration: koanf (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Reference data: course catalog, career catalog, course outlook CSVs
 4. Models: three course classifiers, the career classifier, its label
    decoder and the metrics document; the most accurate course model wins
 5. Feedback store: DuckDB, BadgerDB or memory, instrumented and optionally
    behind a circuit breaker
 6. Supervisor tree: maintenance service and the HTTP server

Any failure before the tree starts is fatal.

# Environment

	HTTP_PORT=8000
	ARTIFACTS_DIR=/srv/pathwise/artifacts
	STORE_BACKEND=duckdb            # duckdb, badger or memory
	DUCKDB_PATH=/data/pathwise.duckdb
	STORE_CIRCUIT_BREAKER=true
	LOG_LEVEL=info

See package config for the full list.

# Signals

SIGINT and SIGTERM cancel the tree. The HTTP server drains in-flight requests
within SHUTDOWN_TIMEOUT, then the store is closed.
*/
package main
