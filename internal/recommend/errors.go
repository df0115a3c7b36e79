// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput marks a student input that cannot be scored.
	ErrInvalidInput = errors.New("invalid student input")

	// ErrRegistry marks a model registry that cannot be assembled.
	ErrRegistry = errors.New("model registry")

	// ErrModelOutput marks classifier output that does not match its classes.
	ErrModelOutput = errors.New("unexpected model output")
)

// ValidationError lists the required fields missing from a StudentInput.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Unwrap returns ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
