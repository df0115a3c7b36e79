// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/pathwise/internal/feedback"
	"github.com/tomtom215/pathwise/internal/models"
)

// CreateRating handles POST /api/v1/ratings.
func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}

	var req models.RatingRequest
	if apiErr := decodeJSON(w, r, &req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := contextWithTimeout(r, h.requestTimeout())
	defer cancel()

	rating, err := h.store.CreateRating(ctx, &req)
	if errors.Is(err, feedback.ErrNotFound) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound,
			fmt.Sprintf("Recommendation %d not found", req.RecommendationID), nil)
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}

	h.logger.Info().
		Int64("rating_id", rating.ID).
		Int64("recommendation_id", rating.RecommendationID).
		Int("rating", rating.Rating).
		Msg("Rating recorded")
	respondSuccess(w, http.StatusCreated, rating, start)
}

// ListRatings handles GET /api/v1/ratings.
func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}

	ctx, cancel := contextWithTimeout(r, h.requestTimeout())
	defer cancel()

	ratings, err := h.store.ListRatings(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, ratings, start)
}

// RatingSummary handles GET /api/v1/ratings/summary.
func (h *Handler) RatingSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}

	ctx, cancel := contextWithTimeout(r, h.requestTimeout())
	defer cancel()

	summary, err := h.store.RatingSummary(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, summary, start)
}

func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.store != nil {
		return true
	}
	respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Feedback store is not configured", nil)
	return false
}

// respondStoreError maps a feedback store failure to 503 or 500.
func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, feedback.ErrUnavailable) {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Feedback store unavailable", err)
		return
	}
	respondError(w, http.StatusInternalServerError, ErrCodeStore, "Feedback store error", err)
}
