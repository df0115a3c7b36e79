// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pathwise/internal/config"
	"github.com/tomtom215/pathwise/internal/dataset"
	"github.com/tomtom215/pathwise/internal/recommend"
	"github.com/tomtom215/pathwise/internal/recommend/artifact"
)

// initRecommend loads the reference datasets and model artifacts and builds
// the engine. Every error is fatal to startup.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	a := &cfg.Artifacts

	data, err := dataset.Load(dataset.Paths{
		CourseCatalog: a.Resolve(a.CourseCatalog),
		CareerCatalog: a.Resolve(a.CareerCatalog),
		CourseOutlook: a.Resolve(a.CourseOutlook),
	})
	if err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	logger.Info().
		Int("courses", len(data.Courses)).
		Int("careers", len(data.Careers)).
		Int("outlook", len(data.Outlook)).
		Msg("reference datasets loaded")

	reg, err := artifact.LoadRegistry(artifact.Paths{
		RandomForest: a.Resolve(a.RandomForestModel),
		XGBoost:      a.Resolve(a.XGBoostModel),
		SVM:          a.Resolve(a.SVMModel),
		CareerModel:  a.Resolve(a.CareerModel),
		CareerLabels: a.Resolve(a.CareerLabels),
		Metrics:      a.Resolve(a.Metrics),
	})
	if err != nil {
		return nil, fmt.Errorf("load models: %w", err)
	}

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), reg, data, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return engine, nil
}

// buildEngineConfig maps the recommend section of the application config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		MaxCourses: cfg.Recommend.MaxCourses,
		MaxCareers: cfg.Recommend.MaxCareers,
		Cache: recommend.CacheConfig{
			Enabled:    cfg.Recommend.CacheEnabled,
			TTL:        cfg.Recommend.CacheTTL,
			MaxEntries: cfg.Recommend.CacheSize,
		},
	}
}
