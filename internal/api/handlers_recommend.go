// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/pathwise/internal/logging"
	"github.com/tomtom215/pathwise/internal/models"
	"github.com/tomtom215/pathwise/internal/recommend"
	"github.com/tomtom215/pathwise/internal/validation"
)

// UserIDHeader optionally identifies the student; it is stored with every
// persisted recommendation.
const UserIDHeader = "X-User-ID"

// Recommend handles POST /api/v1/recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if err := validation.GetValidator().Var(userID, "omitempty,max=128,printascii"); err != nil {
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeValidation,
			Message: UserIDHeader + " must be at most 128 printable ASCII characters",
			Details: map[string]interface{}{"field": UserIDHeader},
		}, nil)
		return
	}

	var input recommend.StudentInput
	if apiErr := decodeJSON(w, r, &input); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if apiErr := validateRequest(&input); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := contextWithTimeout(r, h.requestTimeout())
	defer cancel()

	bundle, err := h.engine.Recommend(ctx, &input)
	if err != nil {
		h.respondRecommendError(w, err)
		return
	}

	h.persist(ctx, userID, bundle)

	respondSuccess(w, http.StatusOK, bundle, start)
}

func (h *Handler) respondRecommendError(w http.ResponseWriter, err error) {
	var verr *recommend.ValidationError
	switch {
	case errors.As(err, &verr):
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeValidation,
			Message: verr.Error(),
			Details: map[string]interface{}{"fields": verr.Missing},
		}, nil)
	case errors.Is(err, recommend.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusServiceUnavailable, ErrCodeRequestTimeout, "Recommendation timed out", err)
	case errors.Is(err, context.Canceled):
		respondError(w, http.StatusServiceUnavailable, ErrCodeRequestTimeout, "Request cancelled", nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeRecommendation, "Failed to generate recommendations", err)
	}
}

// persist stores every recommendation in bundle and assigns the returned
// IDs. Failures are logged and leave the bundle without IDs.
func (h *Handler) persist(ctx context.Context, userID string, bundle *recommend.Bundle) {
	if h.store == nil {
		return
	}

	rows := make([]models.StoredRecommendation, 0, len(bundle.Courses)+len(bundle.Careers))
	for i := range bundle.Courses {
		rows = append(rows, models.StoredRecommendation{UserID: userID, CourseName: bundle.Courses[i].Name})
	}
	for i := range bundle.Careers {
		rows = append(rows, models.StoredRecommendation{UserID: userID, CareerName: bundle.Careers[i].Name})
	}
	if len(rows) == 0 {
		return
	}

	ids, err := h.store.SaveRecommendations(ctx, rows)
	if err == nil && len(ids) != len(rows) {
		err = errors.New("store returned a different number of ids")
	}
	if err != nil {
		logging.Ctx(ctx).Warn().
			Str("component", "api").
			Str("error", sanitizeLogValue(err.Error())).
			Int("recommendations", len(rows)).
			Msg("Recommendations not persisted; returning bundle without ids")
		return
	}

	for i := range bundle.Courses {
		bundle.Courses[i].ID = &ids[i]
	}
	offset := len(bundle.Courses)
	for i := range bundle.Careers {
		bundle.Careers[i].ID = &ids[offset+i]
	}
}
