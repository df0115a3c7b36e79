// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// table is a parsed CSV with header lookup.
type table struct {
	index map[string]int
	rows  [][]string
}

// get returns the named cell of row, or NA when the cell is empty.
func (t *table) get(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) || row[i] == "" {
		return NA
	}
	return row[i]
}

func readTable(r io.Reader, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return &table{index: index, rows: rows}, nil
}

func openTable(path string, required ...string) (*table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := readTable(f, required...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadCourses reads the course catalog at path.
func LoadCourses(path string) ([]CourseEntry, error) {
	t, err := openTable(path, "course_name", "description", "skills_tags")
	if err != nil {
		return nil, err
	}
	return coursesFromTable(t), nil
}

// ReadCourses parses a course catalog from r.
func ReadCourses(r io.Reader) ([]CourseEntry, error) {
	t, err := readTable(r, "course_name", "description", "skills_tags")
	if err != nil {
		return nil, err
	}
	return coursesFromTable(t), nil
}

func coursesFromTable(t *table) []CourseEntry {
	out := make([]CourseEntry, 0, len(t.rows))
	for _, row := range t.rows {
		tags := t.get(row, "skills_tags")
		out = append(out, CourseEntry{
			Name:        t.get(row, "course_name"),
			Description: t.get(row, "description"),
			SkillsTags:  tags,
			Tags:        ParseTags(tags),
		})
	}
	return out
}

// LoadCareers reads the career catalog at path.
func LoadCareers(path string) ([]CareerEntry, error) {
	t, err := openTable(path, "career_name", "description", "required_skills")
	if err != nil {
		return nil, err
	}
	return careersFromTable(t), nil
}

// ReadCareers parses a career catalog from r.
func ReadCareers(r io.Reader) ([]CareerEntry, error) {
	t, err := readTable(r, "career_name", "description", "required_skills")
	if err != nil {
		return nil, err
	}
	return careersFromTable(t), nil
}

func careersFromTable(t *table) []CareerEntry {
	out := make([]CareerEntry, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, CareerEntry{
			Name:           strings.TrimSpace(t.get(row, "career_name")),
			Description:    t.get(row, "description"),
			RequiredSkills: t.get(row, "required_skills"),
		})
	}
	return out
}

// LoadOutlook reads the course outlook table at path.
func LoadOutlook(path string) ([]OutlookEntry, error) {
	t, err := openTable(path, outlookColumns...)
	if err != nil {
		return nil, err
	}
	return outlookFromTable(t), nil
}

// ReadOutlook parses a course outlook table from r.
func ReadOutlook(r io.Reader) ([]OutlookEntry, error) {
	t, err := readTable(r, outlookColumns...)
	if err != nil {
		return nil, err
	}
	return outlookFromTable(t), nil
}

var outlookColumns = []string{"course_name", "job_applicability", "future_trends", "automation_risk"}

func outlookFromTable(t *table) []OutlookEntry {
	out := make([]OutlookEntry, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, OutlookEntry{
			CourseName:       t.get(row, "course_name"),
			JobApplicability: t.get(row, "job_applicability"),
			FutureTrends:     t.get(row, "future_trends"),
			AutomationRisk:   t.get(row, "automation_risk"),
		})
	}
	return out
}
