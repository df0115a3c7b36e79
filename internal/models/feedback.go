// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package models

import "time"

// StoredRecommendation is one persisted course or career recommendation.
// Exactly one of CourseName and CareerName is set.
type StoredRecommendation struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	CourseName string    `json:"course_name,omitempty"`
	CareerName string    `json:"career_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Name returns whichever of CourseName or CareerName is set.
func (r *StoredRecommendation) Name() string {
	if r.CourseName != "" {
		return r.CourseName
	}
	return r.CareerName
}

// Rating is a user's 1 to 5 star judgement of a recommendation.
type Rating struct {
	ID               int64     `json:"id"`
	RecommendationID int64     `json:"recommendation_id"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// RatingRequest is the body of POST /api/v1/ratings.
type RatingRequest struct {
	RecommendationID int64  `json:"recommendation_id" validate:"required,gt=0"`
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Comment          string `json:"comment" validate:"max=2000"`
}

// RatingSummary aggregates every rating submitted so far.
// Counts is keyed by star value and always holds keys 1 through 5.
type RatingSummary struct {
	Count   int64         `json:"count"`
	Average float64       `json:"average"`
	Counts  map[int]int64 `json:"counts"`
}

// NewRatingSummary returns a summary with zeroed counts for every star value.
func NewRatingSummary() *RatingSummary {
	return &RatingSummary{Counts: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
}

// Add folds one rating into the summary.
func (s *RatingSummary) Add(rating int) {
	total := s.Average * float64(s.Count)
	s.Count++
	s.Counts[rating]++
	s.Average = (total + float64(rating)) / float64(s.Count)
}
