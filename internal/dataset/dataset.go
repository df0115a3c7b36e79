// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package dataset

import (
	"fmt"
	"strings"
)

// NA fills cells that are empty in the source CSV.
const NA = "N/A"

// CourseEntry is one row of the course catalog.
type CourseEntry struct {
	Name        string
	Description string
	SkillsTags  string   // raw comma-delimited text
	Tags        []string // parsed SkillsTags; empty when the cell was blank
}

// CareerEntry is one row of the career catalog.
type CareerEntry struct {
	Name           string // trimmed
	Description    string
	RequiredSkills string
}

// OutlookEntry is one row of the course outlook table. Its course names do
// not necessarily follow the catalog's naming.
type OutlookEntry struct {
	CourseName       string
	JobApplicability string
	FutureTrends     string
	AutomationRisk   string
}

// Datasets bundles the three reference tables.
type Datasets struct {
	Courses []CourseEntry
	Careers []CareerEntry
	Outlook []OutlookEntry
}

// Paths locates the three CSV files.
type Paths struct {
	CourseCatalog string
	CareerCatalog string
	CourseOutlook string
}

// Load reads all three tables. Any failure is returned wrapped with the
// table it concerns.
func Load(paths Paths) (*Datasets, error) {
	courses, err := LoadCourses(paths.CourseCatalog)
	if err != nil {
		return nil, fmt.Errorf("load course catalog: %w", err)
	}
	careers, err := LoadCareers(paths.CareerCatalog)
	if err != nil {
		return nil, fmt.Errorf("load career catalog: %w", err)
	}
	outlook, err := LoadOutlook(paths.CourseOutlook)
	if err != nil {
		return nil, fmt.Errorf("load course outlook: %w", err)
	}
	return &Datasets{Courses: courses, Careers: careers, Outlook: outlook}, nil
}

// ParseTags splits a comma-delimited tag cell, trimming each tag and dropping
// empties. The NA placeholder parses to no tags.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == NA {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
