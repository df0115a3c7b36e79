// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/pathwise/internal/logging"
	"github.com/tomtom215/pathwise/internal/metrics"
	"github.com/tomtom215/pathwise/internal/models"
)

// BreakerSettings tunes WithCircuitBreaker. Zero values take the defaults
// noted on each field.
type BreakerSettings struct {
	// MaxRequests allowed through while half-open. Default: 3.
	MaxRequests uint32
	// Interval after which closed-state counts reset. Default: 1m.
	Interval time.Duration
	// Timeout before an open circuit moves to half-open. Default: 2m.
	Timeout time.Duration
	// MinRequests before the failure ratio is considered. Default: 10.
	MinRequests uint32
	// FailureRatio at or above which the circuit opens. Default: 0.6.
	FailureRatio float64
}

func (s BreakerSettings) withDefaults() BreakerSettings {
	if s.MaxRequests == 0 {
		s.MaxRequests = 3
	}
	if s.Interval == 0 {
		s.Interval = time.Minute
	}
	if s.Timeout == 0 {
		s.Timeout = 2 * time.Minute
	}
	if s.MinRequests == 0 {
		s.MinRequests = 10
	}
	if s.FailureRatio == 0 {
		s.FailureRatio = 0.6
	}
	return s
}

// BreakerStore wraps a Store with a circuit breaker.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// WithCircuitBreaker wraps next with the default breaker settings:
// at most 3 requests while half-open, a 1 minute measurement window, a
// 2 minute open timeout, and tripping at a 60% failure rate over at least
// 10 requests.
func WithCircuitBreaker(next Store, name string) *BreakerStore {
	return WithCircuitBreakerSettings(next, name, BreakerSettings{})
}

// WithCircuitBreakerSettings wraps next with custom settings.
func WithCircuitBreakerSettings(next Store, name string, settings BreakerSettings) *BreakerStore {
	settings = settings.withDefaults()
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := from.String(), to.String()
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
		IsSuccessful: func(err error) bool {
			// Caller mistakes are not backend failures.
			return err == nil || errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled) || errors.Is(err, errInvalidRating)
		},
	})

	return &BreakerStore{next: next, cb: cb, name: name}
}

// errInvalidRating marks ValidateRating failures for the breaker.
var errInvalidRating = errors.New("invalid rating")

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// SaveRecommendations implements Store.
func (b *BreakerStore) SaveRecommendations(ctx context.Context, recs []models.StoredRecommendation) ([]int64, error) {
	return castResult[[]int64](b.execute(func() (any, error) {
		return b.next.SaveRecommendations(ctx, recs)
	}))
}

// GetRecommendation implements Store.
func (b *BreakerStore) GetRecommendation(ctx context.Context, id int64) (*models.StoredRecommendation, error) {
	return castResult[*models.StoredRecommendation](b.execute(func() (any, error) {
		return b.next.GetRecommendation(ctx, id)
	}))
}

// CreateRating implements Store.
func (b *BreakerStore) CreateRating(ctx context.Context, req *models.RatingRequest) (*models.Rating, error) {
	if err := ValidateRating(req); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidRating, err)
	}
	return castResult[*models.Rating](b.execute(func() (any, error) {
		return b.next.CreateRating(ctx, req)
	}))
}

// ListRatings implements Store.
func (b *BreakerStore) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return castResult[[]models.Rating](b.execute(func() (any, error) {
		return b.next.ListRatings(ctx)
	}))
}

// RatingSummary implements Store.
func (b *BreakerStore) RatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	return castResult[*models.RatingSummary](b.execute(func() (any, error) {
		return b.next.RatingSummary(ctx)
	}))
}

// Ping bypasses the breaker so health checks see the backend directly.
func (b *BreakerStore) Ping(ctx context.Context) error {
	return b.next.Ping(ctx)
}

// Close implements Store.
func (b *BreakerStore) Close() error {
	return b.next.Close()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
