// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import "testing"

func TestFuzzyMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"Bachelor of Computer Science", "computer science", true},
		{"computer science", "Bachelor of Computer Science", true},
		{"Nursing", "nursing", true},
		{"  Law ", "law", true},
		{"Software Engineer", "software engineering consultant", true},
		{"Medicine", "Law", false},
		{"", "Law", false},
		{"Law", "   ", false},
	}

	for _, tt := range tests {
		if got := FuzzyMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestResolveName(t *testing.T) {
	t.Parallel()

	names := []string{"Applied Computer Science", "Computer Science", "Nursing"}
	at := func(i int) string { return names[i] }

	tests := []struct {
		target  string
		wantIdx int
		wantHow string
	}{
		{"computer science", 1, matchExact},
		{"COMPUTER SCIENCE ", 1, matchExact},
		{"Computer", 0, matchFuzzy},
		{"Bachelor of Nursing", 2, matchFuzzy},
		{"Law", -1, matchNone},
		{"", -1, matchNone},
	}

	for _, tt := range tests {
		idx, how := resolveName(tt.target, len(names), at)
		if idx != tt.wantIdx || how != tt.wantHow {
			t.Errorf("resolveName(%q) = %d, %s; want %d, %s", tt.target, idx, how, tt.wantIdx, tt.wantHow)
		}
	}
}
