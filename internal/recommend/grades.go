// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import "strings"

// Subjects is the canonical subject universe, in feature column order.
var Subjects = [...]string{
	"Mathematics", "Kiswahili", "English", "Arabic", "German", "French",
	"Chemistry", "Physics", "Biology", "Home Science", "Agriculture",
	"Computer Studies", "History", "Geography", "Religious Education",
	"Life Skills", "Business Studies", "Music", "Art and Design",
	"Drawing and Design", "Building Construction", "Power and Mechanics",
	"Metalwork", "Aviation", "Woodwork", "Electronics",
}

// MinGradePoint is scored for unknown grades and unreported subjects.
const MinGradePoint = 1

var gradePoints = map[string]int{
	"A": 12, "A-": 11,
	"B+": 10, "B": 9, "B-": 8,
	"C+": 7, "C": 6, "C-": 5,
	"D+": 4, "D": 3, "D-": 2,
	"E": 1,
}

// Profile ratings.
const (
	ProfileExcellent  = "Excellent Profile"
	ProfileStrong     = "Strong Profile"
	ProfileGood       = "Good Profile"
	ProfileDeveloping = "Developing Profile"
)

// Course type tiers.
const (
	CourseTypeBachelor    = "Bachelor's Degree"
	CourseTypeDiploma     = "Diploma"
	CourseTypeCertificate = "Certificate"
)

var subjectIndex = func() map[string]string {
	m := make(map[string]string, len(Subjects))
	for _, s := range Subjects {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// NormalizeGrade trims and upper-cases a grade.
func NormalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// GradePoint returns the points for a letter grade, or MinGradePoint when
// the grade is not recognised.
func GradePoint(grade string) int {
	if p, ok := gradePoints[NormalizeGrade(grade)]; ok {
		return p
	}
	return MinGradePoint
}

// CanonicalSubject maps a subject name to its canonical spelling.
func CanonicalSubject(name string) (string, bool) {
	s, ok := subjectIndex[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// ScoreGrades scores every reported subject in the universe, in canonical
// order. The average covers reported subjects only and is 0 when there are
// none. When a subject is reported under two spellings the first in sorted
// key order wins.
func ScoreGrades(grades map[string]string) (points []SubjectGradePoint, average float64) {
	reported := make(map[string]string, len(grades))
	for _, key := range sortedKeys(grades) {
		canonical, ok := CanonicalSubject(key)
		if !ok {
			continue
		}
		if _, dup := reported[canonical]; !dup {
			reported[canonical] = grades[key]
		}
	}

	points = make([]SubjectGradePoint, 0, len(reported))
	total := 0
	for _, subject := range Subjects {
		grade, ok := reported[subject]
		if !ok {
			continue
		}
		p := GradePoint(grade)
		total += p
		points = append(points, SubjectGradePoint{Subject: subject, Grade: NormalizeGrade(grade), Points: p})
	}

	if len(points) == 0 {
		return points, 0
	}
	return points, float64(total) / float64(len(points))
}

// ProfileRating maps an average grade point to a profile rating.
func ProfileRating(avg float64) string {
	switch {
	case avg >= 10:
		return ProfileExcellent
	case avg >= 8:
		return ProfileStrong
	case avg >= 6.5:
		return ProfileGood
	default:
		return ProfileDeveloping
	}
}

// CourseType maps an average grade point to the course tier it qualifies for.
func CourseType(avg float64) string {
	switch {
	case avg >= 6.8:
		return CourseTypeBachelor
	case avg >= 5.0:
		return CourseTypeDiploma
	default:
		return CourseTypeCertificate
	}
}
