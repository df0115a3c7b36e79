// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package config loads Pathwise configuration with koanf.
//
// Values are layered in increasing priority: built-in defaults, an optional
// YAML file, then environment variables. Only environment variables listed in
// envMappings are read.
//
// # Common Variables
//
//	HTTP_PORT              listen port (default 8000)
//	LOG_LEVEL, LOG_FORMAT  logging (info, json)
//	ARTIFACTS_DIR          base directory for datasets and models
//	COURSE_CATALOG_PATH    course catalog CSV, relative to ARTIFACTS_DIR
//	STORE_BACKEND          duckdb, badger or memory (default duckdb)
//	DUCKDB_PATH            DuckDB file for the feedback store
//	STORE_MAINTENANCE_INTERVAL  checkpoint and GC period; 0 disables
//	CORS_ORIGINS           comma-separated allowed origins
//	RATE_LIMIT_REQUESTS    requests per RATE_LIMIT_WINDOW per client IP
//	RECOMMEND_CACHE_TTL    lifetime of cached recommendation bundles
//
// # Config File
//
// CONFIG_PATH names the file explicitly. Otherwise config.yaml in the working
// directory and /etc/pathwise/config.yaml are tried. Keys follow the koanf
// tags on Config:
//
//	server:
//	  port: 8000
//	artifacts:
//	  dir: /srv/pathwise/artifacts
//	store:
//	  backend: badger
//	  badger_path: /srv/pathwise/feedback
package config
