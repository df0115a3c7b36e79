// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "prod" }, "ENVIRONMENT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"missing catalog", func(c *Config) { c.Artifacts.CourseCatalog = " " }, "COURSE_CATALOG_PATH"},
		{"missing metrics", func(c *Config) { c.Artifacts.Metrics = "" }, "MODEL_METRICS_PATH"},
		{"too many courses", func(c *Config) { c.Recommend.MaxCourses = 6 }, "RECOMMEND_MAX_COURSES"},
		{"no careers", func(c *Config) { c.Recommend.MaxCareers = 0 }, "RECOMMEND_MAX_CAREERS"},
		{"cache without size", func(c *Config) { c.Recommend.CacheSize = 0 }, "RECOMMEND_CACHE_SIZE"},
		{"cache disabled ignores size", func(c *Config) {
			c.Recommend.CacheEnabled = false
			c.Recommend.CacheSize = 0
		}, ""},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, "STORE_BACKEND"},
		{"duckdb without path", func(c *Config) { c.Database.Path = "" }, "DUCKDB_PATH"},
		{"negative maintenance interval", func(c *Config) { c.Store.MaintenanceInterval = -time.Second }, "STORE_MAINTENANCE_INTERVAL"},
		{"maintenance disabled", func(c *Config) { c.Store.MaintenanceInterval = 0 }, ""},
		{"badger without path", func(c *Config) {
			c.Store.Backend = BackendBadger
			c.Store.BadgerPath = ""
		}, "BADGER_PATH"},
		{"badger in memory", func(c *Config) {
			c.Store.Backend = BackendBadger
			c.Store.BadgerPath = ""
			c.Store.BadgerInMemory = true
		}, ""},
		{"memory backend", func(c *Config) {
			c.Store.Backend = BackendMemory
			c.Database.Path = ""
		}, ""},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"supervisor threshold", func(c *Config) { c.Supervisor.FailureThreshold = 0 }, "SUPERVISOR_FAILURE_THRESHOLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}
