// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"reflect"
	"testing"
)

func TestCourseReasoning(t *testing.T) {
	t.Parallel()

	const lead = "This course is a great fit for you based on your academic profile and aptitudes."

	tests := []struct {
		name      string
		interests []string
		skills    []string
		tags      []string
		want      string
	}{
		{
			name:      "interests only",
			interests: []string{"coding", "robots"},
			tags:      []string{"coding"},
			want:      lead + " It aligns with your interests in coding, robots.",
		},
		{
			name:   "skills only",
			skills: []string{"python"},
			want:   lead + " It will help you develop skills in python.",
		},
		{
			name:      "both",
			interests: []string{"coding"},
			skills:    []string{"python"},
			want:      lead + " It aligns with your interests in coding. It will help you develop skills in python.",
		},
		{
			name: "fallback caps at three tags",
			tags: []string{"a", "b", "c", "d"},
			want: lead + " It will help you develop skills such as a, b, c.",
		},
		{
			name: "fallback with fewer tags",
			tags: []string{"anatomy"},
			want: lead + " It will help you develop skills such as anatomy.",
		},
		{
			name: "no tags at all",
			want: lead + " It will help you develop a broad range of transferable skills.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CourseReasoning(tt.interests, tt.skills, tt.tags); got != tt.want {
				t.Errorf("CourseReasoning() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestCareerReasoning(t *testing.T) {
	t.Parallel()

	want := "This career is recommended based on your aptitudes. It typically requires skills such as programming, testing."
	if got := CareerReasoning("programming, testing"); got != want {
		t.Errorf("CareerReasoning() = %q", got)
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	tags := []string{"Programming", "algorithms", "Mathematics"}

	tests := []struct {
		name    string
		student []string
		want    []string
	}{
		{"case-insensitive keeps student spelling", []string{"programming", "MATHEMATICS"}, []string{"programming", "MATHEMATICS"}},
		{"student order", []string{"algorithms", "Programming"}, []string{"algorithms", "Programming"}},
		{"deduplicated", []string{"algorithms", "Algorithms "}, []string{"algorithms"}},
		{"no overlap", []string{"painting"}, nil},
		{"blank entries skipped", []string{" ", ""}, nil},
	}

	for _, tt := range tests {
		if got := matchTags(tt.student, tags); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: matchTags() = %#v, want %#v", tt.name, got, tt.want)
		}
	}

	if got := matchTags([]string{"a"}, nil); got != nil {
		t.Errorf("matchTags(no course tags) = %v, want nil", got)
	}
}
