// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package validation wraps go-playground/validator v10 for request bodies.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in messages are taken
// from json tags, so a missing score is reported as "logicalMathematical is
// required" rather than by its Go field name.
//
// Student input is only bounded here. Letter grades and aptitude ratings
// that the engine does not recognise are scored with defaults, so their
// values are limited by length and character set, not by vocabulary:
//
//	Grades map[string]string `json:"grades" validate:"max=26,dive,keys,required,max=64,endkeys,max=8,printascii"`
//	P1     string            `json:"p1" validate:"max=16,printascii"`
//
// Failures convert to the VALIDATION_ERROR API error with ToAPIError.
package validation
