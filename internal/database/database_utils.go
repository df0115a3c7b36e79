// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/pathwise/internal/logging"
)

// enableProfiling turns on DuckDB query profiling when ENABLE_QUERY_PROFILING=true.
func (db *DB) enableProfiling(ctx context.Context) error {
	if os.Getenv("ENABLE_QUERY_PROFILING") != "true" {
		return nil
	}

	if _, err := db.conn.ExecContext(ctx, "PRAGMA enable_profiling"); err != nil {
		return fmt.Errorf("failed to enable profiling: %w", err)
	}
	if _, err := db.conn.ExecContext(ctx, "PRAGMA profiling_mode = 'detailed'"); err != nil {
		return fmt.Errorf("failed to set profiling mode: %w", err)
	}

	logging.Info().Msg("Query profiling enabled (detailed mode)")
	return nil
}

// ensureContext creates a context with 30-second timeout if none provided
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}

	return ctx, func() {}
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, "CHECKPOINT")
	if err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// Maintain checkpoints the database; it is run periodically by the
// maintenance service.
func (db *DB) Maintain(ctx context.Context) error {
	return db.Checkpoint(ctx)
}

// GetDatabasePath returns the path to the database file
func (db *DB) GetDatabasePath() string {
	if db.cfg.Path == "" {
		return memoryPath
	}
	return db.cfg.Path
}

// GetRecordCounts returns the number of stored recommendations and ratings.
func (db *DB) GetRecordCounts(ctx context.Context) (recommendations, ratings int64, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	err = db.conn.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM recommendations), (SELECT COUNT(*) FROM ratings)`,
	).Scan(&recommendations, &ratings)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count records: %w", err)
	}
	return recommendations, ratings, nil
}
