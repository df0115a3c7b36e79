// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/pathwise/internal/metrics"
)

// Outlook fallbacks used when no outlook row matches a course.
const (
	FallbackJobApplicability = "This course offers broad applicability in various industries."
	FallbackFutureTrends     = "The skills learned in this course are highly relevant for future industry trends."
	FallbackAutomationRisk   = "This course focuses on skills with low automation risk."
)

const bachelorPrefix = "Bachelor of "

type scoredClass struct {
	label string
	prob  float64
}

// topClasses returns the k most probable classes, stable on class order.
func topClasses(classes []string, probs []float64, k int) ([]scoredClass, error) {
	if len(classes) != len(probs) {
		return nil, fmt.Errorf("%w: %d probabilities for %d classes", ErrModelOutput, len(probs), len(classes))
	}
	scored := make([]scoredClass, len(classes))
	for i := range classes {
		scored[i] = scoredClass{label: classes[i], prob: probs[i]}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].prob > scored[j].prob
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// recommendCourses scores the course row with the selected model and turns
// the top classes into recommendations for the given tier.
func (e *Engine) recommendCourses(input *StudentInput, row FeatureRow, courseType string) ([]Recommendation, error) {
	model := e.registry.CourseModel()
	probs, err := model.PredictProba(row)
	if err != nil {
		return nil, fmt.Errorf("predict course probabilities: %w", err)
	}
	top, err := topClasses(model.Classes(), probs, e.config.MaxCourses)
	if err != nil {
		return nil, err
	}

	recs := make([]Recommendation, 0, len(top))
	for _, c := range top {
		recs = append(recs, e.courseRecommendation(input, c, courseType))
	}
	return recs, nil
}

func (e *Engine) courseRecommendation(input *StudentInput, c scoredClass, courseType string) Recommendation {
	courses := e.data.Courses
	idx, how := resolveName(c.label, len(courses), func(i int) string { return courses[i].Name })
	metrics.RecordCatalogMatch("course", how)

	rec := Recommendation{
		Name:            strings.TrimSpace(c.label),
		Type:            courseType,
		SimilarityScore: c.prob,
		Description:     courseNoDescription,
	}

	var tags []string
	if idx >= 0 {
		entry := courses[idx]
		rec.Name = entry.Name
		rec.Description = entry.Description
		rec.SkillsTags = entry.SkillsTags
		tags = entry.Tags
	}

	rec.Reasoning = CourseReasoning(matchTags(input.Interests, tags), matchTags(input.Skills, tags), tags)
	rec.JobApplicability, rec.FutureTrends, rec.AutomationRisk = e.courseOutlook(rec.Name)

	if courseType == CourseTypeBachelor && !strings.Contains(strings.ToLower(rec.Name), "bachelor") {
		rec.Name = bachelorPrefix + rec.Name
	}
	return rec
}

// courseOutlook returns the first outlook row that fuzzy-matches name, or the
// fallback texts.
func (e *Engine) courseOutlook(name string) (jobApplicability, futureTrends, automationRisk string) {
	outlook := e.data.Outlook
	i := firstFuzzy(name, len(outlook), func(i int) string { return outlook[i].CourseName })
	if i < 0 {
		metrics.RecordCatalogMatch("outlook", matchNone)
		return FallbackJobApplicability, FallbackFutureTrends, FallbackAutomationRisk
	}
	metrics.RecordCatalogMatch("outlook", matchFuzzy)
	o := outlook[i]
	return o.JobApplicability, o.FutureTrends, o.AutomationRisk
}
