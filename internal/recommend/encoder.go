// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"sort"
	"strings"
)

// Tag feature columns of the course row.
const (
	TagInterests = "interests"
	TagSkills    = "skills"
)

// Career row column names, in order.
var CareerColumns = [...]string{
	"Linguistic", "Musical", "Bodily", "Logical - Mathematical",
	"Spatial-Visualization", "Interpersonal", "Intrapersonal", "Naturalist",
	"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8",
}

// Aptitude levels.
const (
	AptitudePoor = 0
	AptitudeAvg  = 1
	AptitudeBest = 2
)

// FeatureRow is one encoded model input. Columns lists the numeric columns in
// order; Tags holds list-valued columns.
type FeatureRow struct {
	Columns []string
	Values  map[string]float64
	Tags    map[string][]string
}

func newFeatureRow(n int) FeatureRow {
	return FeatureRow{
		Columns: make([]string, 0, n),
		Values:  make(map[string]float64, n),
		Tags:    make(map[string][]string),
	}
}

func (r *FeatureRow) set(column string, v float64) {
	if _, ok := r.Values[column]; !ok {
		r.Columns = append(r.Columns, column)
	}
	r.Values[column] = v
}

// Value returns the numeric value of column.
func (r FeatureRow) Value(column string) (float64, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// AptitudeLevel maps POOR, AVG and BEST to 0, 1 and 2. Anything else is AVG.
func AptitudeLevel(rating string) int {
	switch strings.ToUpper(strings.TrimSpace(rating)) {
	case "POOR":
		return AptitudePoor
	case "BEST":
		return AptitudeBest
	default:
		return AptitudeAvg
	}
}

// EncodeCourseRow builds the course model row: one grade-point column per
// subject (MinGradePoint when unreported) followed by the interests and
// skills tag columns.
func EncodeCourseRow(input *StudentInput) FeatureRow {
	row := newFeatureRow(len(Subjects))
	for _, s := range Subjects {
		row.set(s, MinGradePoint)
	}
	for _, sgp := range scoredSubjects(input.Grades) {
		row.set(sgp.Subject, float64(sgp.Points))
	}
	row.Tags[TagInterests] = append([]string(nil), input.Interests...)
	row.Tags[TagSkills] = append([]string(nil), input.Skills...)
	return row
}

func scoredSubjects(grades map[string]string) []SubjectGradePoint {
	points, _ := ScoreGrades(grades)
	return points
}

// EncodeCareerRow builds the career model row from the eight intelligence
// scores and the P1..P8 aptitude levels. A *ValidationError naming every
// missing score is returned when any is nil.
func EncodeCareerRow(input *StudentInput) (FeatureRow, error) {
	scores := []struct {
		field string
		value *float64
	}{
		{"linguistic", input.Linguistic},
		{"musical", input.Musical},
		{"bodily", input.Bodily},
		{"logicalMathematical", input.LogicalMathematical},
		{"spatialVisualization", input.SpatialVisualization},
		{"interpersonal", input.Interpersonal},
		{"intrapersonal", input.Intrapersonal},
		{"naturalist", input.Naturalist},
	}

	var missing []string
	row := newFeatureRow(len(CareerColumns))
	for i, s := range scores {
		if s.value == nil {
			missing = append(missing, s.field)
			continue
		}
		row.set(CareerColumns[i], *s.value)
	}
	if len(missing) > 0 {
		return FeatureRow{}, &ValidationError{Missing: missing}
	}

	for i, rating := range input.Aptitudes() {
		row.set(CareerColumns[len(scores)+i], float64(AptitudeLevel(rating)))
	}
	return row, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
