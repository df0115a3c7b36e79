// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Maintainer is a component with periodic housekeeping.
//
// Satisfied by:
//   - *database.DB (checkpoint)
//   - *feedback.BadgerStore (value log GC)
//   - *recommend.Engine (expired cache eviction)
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// MaintenanceTask names a Maintainer for logging.
type MaintenanceTask struct {
	Name   string
	Target Maintainer
}

// MaintenanceServiceConfig holds configuration for the maintenance service.
type MaintenanceServiceConfig struct {
	// Interval between maintenance runs.
	// Default: 10m
	Interval time.Duration

	// RunTimeout bounds a single task.
	// Default: 2m
	RunTimeout time.Duration

	// RunOnStartup runs every task once before the first tick.
	RunOnStartup bool
}

// MaintenanceService runs each task on a fixed interval. A failing task is
// logged and retried on the next tick; it never stops the service.
type MaintenanceService struct {
	tasks  []MaintenanceTask
	config MaintenanceServiceConfig
	logger zerolog.Logger
	name   string
}

// NewMaintenanceService creates a maintenance service over tasks.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(tasks []MaintenanceTask, cfg MaintenanceServiceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 2 * time.Minute
	}
	return &MaintenanceService{
		tasks:  append([]MaintenanceTask(nil), tasks...),
		config: cfg,
		logger: logger.With().Str("service", "maintenance").Logger(),
		name:   "maintenance",
	}
}

// Serve implements suture.Service.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().
		Int("tasks", len(s.tasks)).
		Dur("interval", s.config.Interval).
		Msg("maintenance service starting")

	if s.config.RunOnStartup {
		s.runAll(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("maintenance service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// RunOnce runs every task once and returns the first error.
func (s *MaintenanceService) RunOnce(ctx context.Context) error {
	var first error
	for _, task := range s.tasks {
		if err := s.run(ctx, task); err != nil && first == nil {
			first = fmt.Errorf("%s: %w", task.Name, err)
		}
	}
	return first
}

func (s *MaintenanceService) runAll(ctx context.Context) {
	for _, task := range s.tasks {
		if ctx.Err() != nil {
			return
		}
		if err := s.run(ctx, task); err != nil {
			s.logger.Warn().Err(err).Str("task", task.Name).Msg("maintenance task failed")
		}
	}
}

func (s *MaintenanceService) run(ctx context.Context, task MaintenanceTask) error {
	runCtx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	start := time.Now()
	if err := task.Target.Maintain(runCtx); err != nil {
		return err
	}
	s.logger.Debug().
		Str("task", task.Name).
		Dur("duration", time.Since(start)).
		Msg("maintenance task complete")
	return nil
}

// String identifies the service in supervisor events.
func (s *MaintenanceService) String() string {
	return s.name
}
