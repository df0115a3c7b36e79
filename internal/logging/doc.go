// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package logging provides the zerolog-based structured logger shared by every
// Pathwise component.
//
// The global logger is configured once at startup:
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	    Caller: cfg.Logging.Caller,
//	})
//
// and then used through the level helpers:
//
//	logging.Info().Str("model", reg.SelectedName()).Msg("model registry loaded")
//	logging.Error().Err(err).Msg("persist recommendations")
//
// # Request Context
//
// The request ID middleware stores a request ID and a short correlation ID in
// the request context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("feedback store unavailable")
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog so that the suture supervisor's
// sutureslog event hook logs through the same writer.
//
// # Output Formats
//
// "json" (default) writes one object per line with time, level and message
// fields. "console" uses zerolog.ConsoleWriter for local development.
package logging
