// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package feedback

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/pathwise/internal/models"
)

// MemoryStore keeps everything in process memory. Data is lost on restart.
type MemoryStore struct {
	mu              sync.RWMutex
	recommendations map[int64]models.StoredRecommendation
	ratings         []models.Rating
	nextRecID       int64
	nextRatingID    int64
	now             func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recommendations: make(map[int64]models.StoredRecommendation),
		now:             time.Now,
	}
}

// SaveRecommendations implements Store.
func (s *MemoryStore) SaveRecommendations(ctx context.Context, recs []models.StoredRecommendation) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, len(recs))
	for i, rec := range recs {
		s.nextRecID++
		rec.ID = s.nextRecID
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = s.now().UTC()
		}
		s.recommendations[rec.ID] = rec
		ids[i] = rec.ID
	}
	return ids, nil
}

// GetRecommendation implements Store.
func (s *MemoryStore) GetRecommendation(ctx context.Context, id int64) (*models.StoredRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recommendations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// CreateRating implements Store.
func (s *MemoryStore) CreateRating(ctx context.Context, req *models.RatingRequest) (*models.Rating, error) {
	if err := ValidateRating(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recommendations[req.RecommendationID]; !ok {
		return nil, ErrNotFound
	}
	s.nextRatingID++
	rating := models.Rating{
		ID:               s.nextRatingID,
		RecommendationID: req.RecommendationID,
		Rating:           req.Rating,
		Comment:          req.Comment,
		CreatedAt:        s.now().UTC(),
	}
	s.ratings = append(s.ratings, rating)
	return &rating, nil
}

// ListRatings implements Store.
func (s *MemoryStore) ListRatings(ctx context.Context) ([]models.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rating{}, s.ratings...), nil
}

// RatingSummary implements Store.
func (s *MemoryStore) RatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := models.NewRatingSummary()
	for _, r := range s.ratings {
		summary.Add(r.Rating)
	}
	return summary, nil
}

// Ping implements Store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
