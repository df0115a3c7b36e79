// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"fmt"
	"strings"
)

const (
	courseReasonLead  = "This course is a great fit for you based on your academic profile and aptitudes."
	courseReasonBroad = "It will help you develop a broad range of transferable skills."

	careerReasonUnresolved = "Recommended based on your aptitudes, but detailed information is not available."

	courseNoDescription = "No detailed information available for this course."
	careerNoDescription = "No detailed information available for this career."

	// fallbackTagCount caps the tags listed when nothing matched.
	fallbackTagCount = 3
)

// CourseReasoning explains a course recommendation from the student's
// matched interests and skills. When nothing matched it lists up to three of
// the course's own tags instead.
func CourseReasoning(matchedInterests, matchedSkills, courseTags []string) string {
	parts := []string{courseReasonLead}
	if len(matchedInterests) > 0 {
		parts = append(parts, fmt.Sprintf("It aligns with your interests in %s.", strings.Join(matchedInterests, ", ")))
	}
	if len(matchedSkills) > 0 {
		parts = append(parts, fmt.Sprintf("It will help you develop skills in %s.", strings.Join(matchedSkills, ", ")))
	}
	if len(matchedInterests) == 0 && len(matchedSkills) == 0 {
		if len(courseTags) == 0 {
			parts = append(parts, courseReasonBroad)
		} else {
			n := min(len(courseTags), fallbackTagCount)
			parts = append(parts, fmt.Sprintf("It will help you develop skills such as %s.", strings.Join(courseTags[:n], ", ")))
		}
	}
	return strings.Join(parts, " ")
}

// CareerReasoning explains a career that resolved against the catalog.
func CareerReasoning(requiredSkills string) string {
	return fmt.Sprintf("This career is recommended based on your aptitudes. It typically requires skills such as %s.", requiredSkills)
}

// matchTags returns the student tags that also appear in courseTags,
// compared case-insensitively. Student spelling and order are kept and
// duplicates dropped.
func matchTags(student, courseTags []string) []string {
	if len(student) == 0 || len(courseTags) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(courseTags))
	for _, t := range courseTags {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{}, len(student))
	for _, s := range student {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := set[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
