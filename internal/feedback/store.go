// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/pathwise/internal/models"
)

var (
	// ErrNotFound is returned when a recommendation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the store cannot be reached, including
	// while the circuit breaker is open.
	ErrUnavailable = errors.New("feedback store unavailable")
)

// Store persists recommendations and ratings. Implementations are safe for
// concurrent use.
type Store interface {
	// SaveRecommendations stores recs in one batch and returns the assigned
	// IDs in the same order. Zero CreatedAt values are set to now.
	SaveRecommendations(ctx context.Context, recs []models.StoredRecommendation) ([]int64, error)

	// GetRecommendation returns ErrNotFound for an unknown ID.
	GetRecommendation(ctx context.Context, id int64) (*models.StoredRecommendation, error)

	// CreateRating stores a rating for an existing recommendation, returning
	// ErrNotFound when the recommendation does not exist.
	CreateRating(ctx context.Context, req *models.RatingRequest) (*models.Rating, error)

	// ListRatings returns every rating, oldest first.
	ListRatings(ctx context.Context) ([]models.Rating, error)

	// RatingSummary aggregates all ratings.
	RatingSummary(ctx context.Context) (*models.RatingSummary, error)

	Ping(ctx context.Context) error
	Close() error
}

// ValidateRating checks the fields every backend relies on.
func ValidateRating(req *models.RatingRequest) error {
	if req == nil {
		return errors.New("rating request is nil")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating %d outside 1..5", req.Rating)
	}
	if req.RecommendationID <= 0 {
		return fmt.Errorf("recommendation id %d must be positive", req.RecommendationID)
	}
	return nil
}
