// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pathwise/internal/cache"
	"github.com/tomtom215/pathwise/internal/dataset"
	"github.com/tomtom215/pathwise/internal/logging"
	"github.com/tomtom215/pathwise/internal/metrics"
)

// Engine scores students against the loaded models and reference data.
// It is safe for concurrent use: the registry and datasets are read-only and
// the bundle cache is internally locked.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	registry *Registry
	data     *dataset.Datasets

	cache *cache.LRU[*Bundle]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine over reg and data.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, reg *Registry, data *dataset.Datasets, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: registry is required", ErrRegistry)
	}
	if data == nil {
		data = &dataset.Datasets{}
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		registry: reg,
		data:     data,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Bundle](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	for kind, m := range reg.Metrics() {
		metrics.SetModelAccuracy(kind, m.Accuracy)
	}
	e.logger.Info().
		Str("course_model", reg.SelectedName()).
		Float64("accuracy", reg.Accuracy()).
		Int("courses", len(data.Courses)).
		Int("careers", len(data.Careers)).
		Int("outlook", len(data.Outlook)).
		Msg("recommendation engine ready")

	return e, nil
}

// Recommend builds the course and career bundle for input. The returned
// bundle is owned by the caller.
//
// A missing intelligence score yields a *ValidationError. Unknown subjects,
// grades and aptitude ratings are scored with defaults rather than rejected.
func (e *Engine) Recommend(ctx context.Context, input *StudentInput) (*Bundle, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if input == nil {
		return nil, e.fail(start, &ValidationError{Missing: []string{"input"}})
	}
	if err := ctx.Err(); err != nil {
		return nil, e.fail(start, err)
	}

	careerRow, err := EncodeCareerRow(input)
	if err != nil {
		return nil, e.fail(start, err)
	}

	key := cache.GenerateKey("recommend", input)
	if bundle, ok := e.lookup(key); ok {
		metrics.RecordRecommendation("success", time.Since(start), len(bundle.Courses), len(bundle.Careers))
		return bundle, nil
	}

	bundle, err := e.build(input, careerRow)
	if err != nil {
		return nil, e.fail(start, err)
	}
	if e.cache != nil {
		e.cache.Add(key, bundle.Clone())
	}

	metrics.RecordRecommendation("success", time.Since(start), len(bundle.Courses), len(bundle.Careers))
	e.requestLogger(ctx).Debug().
		Float64("average_points", bundle.AveragePoints).
		Int("courses", len(bundle.Courses)).
		Int("careers", len(bundle.Careers)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return bundle, nil
}

func (e *Engine) build(input *StudentInput, careerRow FeatureRow) (*Bundle, error) {
	points, average := ScoreGrades(input.Grades)
	courseType := CourseType(average)

	courses, err := e.recommendCourses(input, EncodeCourseRow(input), courseType)
	if err != nil {
		return nil, err
	}
	careers, err := e.recommendCareers(careerRow)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		AveragePoints:       average,
		ProfileRating:       ProfileRating(average),
		ModelAccuracy:       e.registry.Accuracy(),
		CourseModel:         e.registry.SelectedName(),
		SubjectGradesPoints: points,
		Courses:             courses,
		Careers:             careers,
	}, nil
}

// requestLogger tags the engine logger with the request ID carried by ctx.
func (e *Engine) requestLogger(ctx context.Context) *zerolog.Logger {
	l := e.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}

// lookup returns a private copy of a cached bundle.
func (e *Engine) lookup(key string) (*Bundle, bool) {
	if e.cache == nil {
		return nil, false
	}
	cached, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil, false
	}
	e.cacheHits.Add(1)
	return cached.Clone(), true
}

func (e *Engine) fail(start time.Time, err error) error {
	outcome := "error"
	if errors.Is(err, ErrInvalidInput) {
		outcome = "invalid_input"
	} else {
		e.errorCount.Add(1)
	}
	metrics.RecordRecommendation(outcome, time.Since(start), 0, 0)
	return err
}

// Registry returns the model registry the engine was built with.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Stats returns the current engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
	}
	return s
}

// Maintain evicts expired bundles from the cache.
func (e *Engine) Maintain(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.cache == nil {
		return nil
	}
	if n := e.cache.CleanupExpired(); n > 0 {
		e.logger.Debug().Int("evicted", n).Msg("expired bundles evicted")
	}
	return nil
}

// ClearCache drops every cached bundle.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
		e.logger.Debug().Msg("cache cleared")
	}
}
