// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"fmt"
	"time"
)

// MaxListLength is the upper bound for both recommendation lists.
const MaxListLength = 5

// Config contains all configuration for the recommendation engine.
type Config struct {
	// MaxCourses caps the course list.
	// Default: 5.
	MaxCourses int `json:"max_courses"`

	// MaxCareers caps the career list.
	// Default: 5.
	MaxCareers int `json:"max_careers"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains parameters for the bundle cache. Bundles depend only
// on the input and the loaded models, so entries never go stale while the
// process runs; TTL bounds memory held by one-off inputs.
type CacheConfig struct {
	// Enabled turns caching on.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is how long a bundle stays cached.
	// Default: 10m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries bounds the number of cached bundles.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxCourses: MaxListLength,
		MaxCareers: MaxListLength,
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxCourses < 1 || c.MaxCourses > MaxListLength {
		return fmt.Errorf("max_courses must be between 1 and %d, got %d", MaxListLength, c.MaxCourses)
	}
	if c.MaxCareers < 1 || c.MaxCareers > MaxListLength {
		return fmt.Errorf("max_careers must be between 1 and %d, got %d", MaxListLength, c.MaxCareers)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
