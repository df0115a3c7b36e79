// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/pathwise/internal/feedback"
	"github.com/tomtom215/pathwise/internal/models"
)

var _ feedback.Store = (*DB)(nil)

// storeError wraps err with the operation name, marking lost connections
// as feedback.ErrUnavailable.
func storeError(op string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %w", op, feedback.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveRecommendations inserts recs in one transaction and returns their IDs.
func (db *DB) SaveRecommendations(ctx context.Context, recs []models.StoredRecommendation) ([]int64, error) {
	if len(recs) == 0 {
		return []int64{}, nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	var ids []int64
	err := db.withConflictRetry(ctx, "save_recommendations", func() error {
		var err error
		ids, err = db.insertRecommendations(ctx, recs, now)
		return err
	})
	if err != nil {
		return nil, storeError("save recommendations", err)
	}
	return ids, nil
}

func (db *DB) insertRecommendations(ctx context.Context, recs []models.StoredRecommendation, now time.Time) ([]int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recommendations (user_id, course_name, career_name, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(stmt, "prepared statement")

	ids := make([]int64, len(recs))
	for i := range recs {
		createdAt := recs[i].CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		err := stmt.QueryRowContext(ctx,
			nullString(recs[i].UserID),
			nullString(recs[i].CourseName),
			nullString(recs[i].CareerName),
			createdAt.UTC(),
		).Scan(&ids[i])
		if err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetRecommendation returns feedback.ErrNotFound for an unknown ID.
func (db *DB) GetRecommendation(ctx context.Context, id int64) (*models.StoredRecommendation, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var rec models.StoredRecommendation
	var userID, courseName, careerName sql.NullString
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, user_id, course_name, career_name, created_at
		FROM recommendations WHERE id = ?`, id,
	).Scan(&rec.ID, &userID, &courseName, &careerName, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, feedback.ErrNotFound
	}
	if err != nil {
		return nil, storeError("get recommendation", err)
	}
	rec.UserID = userID.String
	rec.CourseName = courseName.String
	rec.CareerName = careerName.String
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

// CreateRating stores a rating after checking that the recommendation exists.
func (db *DB) CreateRating(ctx context.Context, req *models.RatingRequest) (*models.Rating, error) {
	if err := feedback.ValidateRating(req); err != nil {
		return nil, err
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rating := &models.Rating{
		RecommendationID: req.RecommendationID,
		Rating:           req.Rating,
		Comment:          req.Comment,
		CreatedAt:        time.Now().UTC(),
	}
	err := db.withConflictRetry(ctx, "create_rating", func() error {
		id, err := db.insertRating(ctx, rating)
		rating.ID = id
		return err
	})
	if errors.Is(err, feedback.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storeError("create rating", err)
	}
	return rating, nil
}

func (db *DB) insertRating(ctx context.Context, r *models.Rating) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM recommendations WHERE id = ?)`, r.RecommendationID,
	).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, feedback.ErrNotFound
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO ratings (recommendation_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`,
		r.RecommendationID, r.Rating, nullString(r.Comment), r.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// ListRatings returns every rating, oldest first.
func (db *DB) ListRatings(ctx context.Context) ([]models.Rating, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, recommendation_id, rating, comment, created_at
		FROM ratings ORDER BY id`)
	if err != nil {
		return nil, storeError("list ratings", err)
	}
	defer rows.Close()

	ratings := []models.Rating{}
	for rows.Next() {
		var (
			r       models.Rating
			comment sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.RecommendationID, &r.Rating, &comment, &r.CreatedAt); err != nil {
			return nil, storeError("scan rating", err)
		}
		r.Comment = comment.String
		r.CreatedAt = r.CreatedAt.UTC()
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list ratings", err)
	}
	return ratings, nil
}

// RatingSummary aggregates ratings per star value in SQL.
func (db *DB) RatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT rating, COUNT(*) AS n
		FROM ratings
		GROUP BY rating
		ORDER BY rating`)
	if err != nil {
		return nil, storeError("rating summary", err)
	}
	defer rows.Close()

	summary := models.NewRatingSummary()
	var total int64
	for rows.Next() {
		var (
			stars int
			n     int64
		)
		if err := rows.Scan(&stars, &n); err != nil {
			return nil, storeError("scan rating summary", err)
		}
		summary.Counts[stars] = n
		summary.Count += n
		total += int64(stars) * n
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("rating summary", err)
	}
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}
	return summary, nil
}
