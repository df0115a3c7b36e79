// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package config

import (
	"path/filepath"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Artifacts  ArtifactsConfig  `koanf:"artifacts"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Store      StoreConfig      `koanf:"store"`
	Database   DatabaseConfig   `koanf:"database"`
	Security   SecurityConfig   `koanf:"security"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"` // per-request handler timeout
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// LoggingConfig holds structured logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ArtifactsConfig locates the reference datasets and pre-trained models
// loaded at startup. Relative paths are resolved against Dir.
type ArtifactsConfig struct {
	Dir string `koanf:"dir"`

	CourseCatalog string `koanf:"course_catalog"`
	CareerCatalog string `koanf:"career_catalog"`
	CourseOutlook string `koanf:"course_outlook"`

	RandomForestModel string `koanf:"random_forest_model"`
	XGBoostModel      string `koanf:"xgboost_model"`
	SVMModel          string `koanf:"svm_model"`
	CareerModel       string `koanf:"career_model"`
	CareerLabels      string `koanf:"career_labels"`
	Metrics           string `koanf:"metrics"`
}

// Resolve returns p joined to Dir unless p is already absolute.
func (a *ArtifactsConfig) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || a.Dir == "" {
		return p
	}
	return filepath.Join(a.Dir, p)
}

// RecommendConfig holds recommendation engine settings
type RecommendConfig struct {
	MaxCourses   int           `koanf:"max_courses"`
	MaxCareers   int           `koanf:"max_careers"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// StoreConfig selects the feedback store backend
type StoreConfig struct {
	Backend        string `koanf:"backend"` // duckdb, badger, memory
	CircuitBreaker bool   `koanf:"circuit_breaker"`
	BadgerPath     string `koanf:"badger_path"`
	BadgerInMemory bool   `koanf:"badger_in_memory"`

	// MaintenanceInterval paces DuckDB checkpoints, Badger value log GC and
	// expired cache cleanup. Zero disables the maintenance service.
	MaintenanceInterval time.Duration `koanf:"maintenance_interval"`
}

// Store backends.
const (
	BackendDuckDB = "duckdb"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// SupervisorConfig tunes restart behaviour of the suture tree
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}
