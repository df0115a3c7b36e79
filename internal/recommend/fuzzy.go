// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import "strings"

// FuzzyMatch reports whether a and b name the same thing loosely: both are
// non-empty after trimming and either one, lower-cased, contains the other.
//
//	FuzzyMatch("Bachelor of Computer Science", "computer science") // true
func FuzzyMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Match results, also used as metric labels.
const (
	matchExact = "exact"
	matchFuzzy = "fuzzy"
	matchNone  = "none"
)

// firstFuzzy returns the index of the first name that fuzzy-matches target,
// or -1.
func firstFuzzy(target string, n int, name func(i int) string) int {
	for i := 0; i < n; i++ {
		if FuzzyMatch(target, name(i)) {
			return i
		}
	}
	return -1
}

// resolveName finds target among n names: a case-insensitive exact match
// first, then the first fuzzy match. It returns the index (or -1) and how
// the match was made.
func resolveName(target string, n int, name func(i int) string) (int, string) {
	t := strings.ToLower(strings.TrimSpace(target))
	if t == "" {
		return -1, matchNone
	}
	for i := 0; i < n; i++ {
		if strings.ToLower(strings.TrimSpace(name(i))) == t {
			return i, matchExact
		}
	}
	if i := firstFuzzy(target, n, name); i >= 0 {
		return i, matchFuzzy
	}
	return -1, matchNone
}
