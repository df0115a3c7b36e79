// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"reflect"
	"testing"
)

func TestGradePoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grade string
		want  int
	}{
		{"A", 12}, {"A-", 11}, {"B+", 10}, {"B", 9}, {"B-", 8},
		{"C+", 7}, {"C", 6}, {"C-", 5}, {"D+", 4}, {"D", 3}, {"D-", 2}, {"E", 1},
		{"a", 12},
		{" b+ ", 10},
		{"F", MinGradePoint},
		{"", MinGradePoint},
		{"A+", MinGradePoint},
	}

	for _, tt := range tests {
		if got := GradePoint(tt.grade); got != tt.want {
			t.Errorf("GradePoint(%q) = %d, want %d", tt.grade, got, tt.want)
		}
	}
}

func TestScoreGrades(t *testing.T) {
	t.Parallel()

	t.Run("average covers reported subjects only", func(t *testing.T) {
		t.Parallel()
		points, avg := ScoreGrades(map[string]string{"Mathematics": "A", "English": "B+"})
		if avg != 11.0 {
			t.Errorf("average = %v, want 11", avg)
		}
		want := []SubjectGradePoint{
			{Subject: "Mathematics", Grade: "A", Points: 12},
			{Subject: "English", Grade: "B+", Points: 10},
		}
		if !reflect.DeepEqual(points, want) {
			t.Errorf("points = %+v, want %+v", points, want)
		}
	})

	t.Run("canonical order and case-insensitive keys", func(t *testing.T) {
		t.Parallel()
		points, _ := ScoreGrades(map[string]string{"electronics": "c", "  mathematics ": "d-", "Physics": "b"})
		got := make([]string, len(points))
		for i, p := range points {
			got[i] = p.Subject
		}
		want := []string{"Mathematics", "Physics", "Electronics"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("subjects = %v, want %v", got, want)
		}
		if points[2].Grade != "C" {
			t.Errorf("grade = %q, want upper-cased C", points[2].Grade)
		}
	})

	t.Run("unknown subjects are ignored", func(t *testing.T) {
		t.Parallel()
		points, avg := ScoreGrades(map[string]string{"Astrology": "A", "Biology": "C"})
		if len(points) != 1 || avg != 6 {
			t.Errorf("ScoreGrades() = %v, %v; want one subject averaging 6", points, avg)
		}
	})

	t.Run("unknown grade scores minimum", func(t *testing.T) {
		t.Parallel()
		points, avg := ScoreGrades(map[string]string{"Biology": "Z"})
		if len(points) != 1 || points[0].Points != MinGradePoint || avg != MinGradePoint {
			t.Errorf("ScoreGrades() = %v, %v", points, avg)
		}
	})

	t.Run("no grades", func(t *testing.T) {
		t.Parallel()
		points, avg := ScoreGrades(nil)
		if len(points) != 0 || avg != 0 {
			t.Errorf("ScoreGrades(nil) = %v, %v; want empty and 0", points, avg)
		}
	})
}

func TestProfileRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		avg  float64
		want string
	}{
		{12, ProfileExcellent},
		{10, ProfileExcellent},
		{9.99, ProfileStrong},
		{8, ProfileStrong},
		{7.99, ProfileGood},
		{6.5, ProfileGood},
		{6.49, ProfileDeveloping},
		{0, ProfileDeveloping},
	}
	for _, tt := range tests {
		if got := ProfileRating(tt.avg); got != tt.want {
			t.Errorf("ProfileRating(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestCourseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		avg  float64
		want string
	}{
		{11, CourseTypeBachelor},
		{6.8, CourseTypeBachelor},
		{6.79, CourseTypeDiploma},
		{5.0, CourseTypeDiploma},
		{4.99, CourseTypeCertificate},
		{0, CourseTypeCertificate},
	}
	for _, tt := range tests {
		if got := CourseType(tt.avg); got != tt.want {
			t.Errorf("CourseType(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}
