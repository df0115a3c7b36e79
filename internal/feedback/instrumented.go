// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/pathwise/internal/metrics"
	"github.com/tomtom215/pathwise/internal/models"
)

// instrumentedStore records latency and errors for every operation.
type instrumentedStore struct {
	next    Store
	backend string
}

// WithMetrics wraps next so that every operation is recorded under backend.
// ErrNotFound is not counted as an error.
func WithMetrics(next Store, backend string) Store {
	return &instrumentedStore{next: next, backend: backend}
}

func (s *instrumentedStore) record(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(s.backend, op, time.Since(start), err)
}

func (s *instrumentedStore) SaveRecommendations(ctx context.Context, recs []models.StoredRecommendation) ([]int64, error) {
	start := time.Now()
	ids, err := s.next.SaveRecommendations(ctx, recs)
	s.record("save_recommendations", start, err)
	return ids, err
}

func (s *instrumentedStore) GetRecommendation(ctx context.Context, id int64) (*models.StoredRecommendation, error) {
	start := time.Now()
	rec, err := s.next.GetRecommendation(ctx, id)
	s.record("get_recommendation", start, err)
	return rec, err
}

func (s *instrumentedStore) CreateRating(ctx context.Context, req *models.RatingRequest) (*models.Rating, error) {
	start := time.Now()
	rating, err := s.next.CreateRating(ctx, req)
	s.record("create_rating", start, err)
	if err == nil {
		metrics.RecordRating(rating.Rating)
	}
	return rating, err
}

func (s *instrumentedStore) ListRatings(ctx context.Context) ([]models.Rating, error) {
	start := time.Now()
	ratings, err := s.next.ListRatings(ctx)
	s.record("list_ratings", start, err)
	return ratings, err
}

func (s *instrumentedStore) RatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	start := time.Now()
	summary, err := s.next.RatingSummary(ctx)
	s.record("rating_summary", start, err)
	return summary, err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	s.record("ping", start, err)
	return err
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
