// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/pathwise/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateSupervisor()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging, or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	required := []struct{ env, value string }{
		{"COURSE_CATALOG_PATH", c.Artifacts.CourseCatalog},
		{"CAREER_CATALOG_PATH", c.Artifacts.CareerCatalog},
		{"COURSE_OUTLOOK_PATH", c.Artifacts.CourseOutlook},
		{"RANDOM_FOREST_MODEL_PATH", c.Artifacts.RandomForestModel},
		{"XGBOOST_MODEL_PATH", c.Artifacts.XGBoostModel},
		{"SVM_MODEL_PATH", c.Artifacts.SVMModel},
		{"CAREER_MODEL_PATH", c.Artifacts.CareerModel},
		{"CAREER_LABELS_PATH", c.Artifacts.CareerLabels},
		{"MODEL_METRICS_PATH", c.Artifacts.Metrics},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.env)
		}
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxCourses < 1 || c.Recommend.MaxCourses > 5 {
		return fmt.Errorf("RECOMMEND_MAX_COURSES must be between 1 and 5, got %d", c.Recommend.MaxCourses)
	}
	if c.Recommend.MaxCareers < 1 || c.Recommend.MaxCareers > 5 {
		return fmt.Errorf("RECOMMEND_MAX_CAREERS must be between 1 and 5, got %d", c.Recommend.MaxCareers)
	}
	if c.Recommend.CacheEnabled {
		if c.Recommend.CacheSize < 1 {
			return fmt.Errorf("RECOMMEND_CACHE_SIZE must be positive when caching is enabled, got %d", c.Recommend.CacheSize)
		}
		if c.Recommend.CacheTTL <= 0 {
			return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled, got %v", c.Recommend.CacheTTL)
		}
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.MaintenanceInterval < 0 {
		return fmt.Errorf("STORE_MAINTENANCE_INTERVAL must be non-negative, got %v", c.Store.MaintenanceInterval)
	}
	switch c.Store.Backend {
	case BackendDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when STORE_BACKEND=duckdb")
		}
		if c.Database.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
		}
	case BackendBadger:
		if c.Store.BadgerPath == "" && !c.Store.BadgerInMemory {
			return fmt.Errorf("BADGER_PATH is required when STORE_BACKEND=badger and BADGER_IN_MEMORY=false")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be duckdb, badger, or memory, got %q", c.Store.Backend)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_THRESHOLD must be positive, got %v", c.Supervisor.FailureThreshold)
	}
	if c.Supervisor.FailureDecay <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_DECAY must be positive, got %v", c.Supervisor.FailureDecay)
	}
	return nil
}
