// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package dataset loads the read-only reference tables used to explain
// model output: the course catalog, the career catalog and the course outlook
// table.
//
// Each table is a CSV file with a header row. Columns are located by name, so
// extra columns are ignored and column order does not matter. Empty cells are
// replaced with NA ("N/A").
//
//	course_name,description,skills_tags
//	Computer Science,Study of computation,"programming, algorithms, mathematics"
//
//	career_name,description,required_skills
//	Software Engineer,Builds software systems,"programming, problem solving"
//
//	course_name,job_applicability,future_trends,automation_risk
//	computer science,Very high,Growing,Low
//
// Tables are loaded once at startup and never mutated, so a *Datasets may be
// shared freely between goroutines.
package dataset
