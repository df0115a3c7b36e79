// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pathwise/internal/dataset"
)

// fakeClassifier returns canned output and counts calls.
type fakeClassifier struct {
	classes    []string
	probs      []float64
	labels     []string
	predictErr error
	calls      atomic.Int64
}

func (f *fakeClassifier) Classes() []string { return f.classes }

func (f *fakeClassifier) Predict(FeatureRow) ([]string, error) {
	f.calls.Add(1)
	if f.predictErr != nil {
		return nil, f.predictErr
	}
	return f.labels, nil
}

func (f *fakeClassifier) PredictProba(FeatureRow) ([]float64, error) {
	f.calls.Add(1)
	if f.predictErr != nil {
		return nil, f.predictErr
	}
	return f.probs, nil
}

// fakeDecoder decodes integer labels by index into names.
type fakeDecoder struct {
	names []string
}

func (d fakeDecoder) Decode(label string) (string, error) {
	i, err := strconv.Atoi(label)
	if err != nil || i < 0 || i >= len(d.names) {
		return "", fmt.Errorf("unknown label %q", label)
	}
	return d.names[i], nil
}

func testMetrics(rf, xgb, svm float64) MetricsTable {
	return MetricsTable{
		"random_forest_course": {Accuracy: rf},
		"xgboost_course":       {Accuracy: xgb},
		"svm_course":           {Accuracy: svm},
		"career_model":         {Accuracy: 0.7, Precision: 0.6},
	}
}

func testCareerModel(labels ...string) *fakeClassifier {
	return &fakeClassifier{
		classes: []string{"0", "1", "2", "3", "4", "5", "6"},
		labels:  labels,
	}
}

var testCareerNames = fakeDecoder{names: []string{
	" Software Engineer ",
	"Nurse",
	"Astronaut",
	"Data Analyst",
	"Teacher",
	"Pilot",
	"Chef",
}}

// testRegistry builds a registry whose selected (Random Forest) course model
// is course.
func testRegistry(t *testing.T, course, career *fakeClassifier) *Registry {
	t.Helper()
	other := &fakeClassifier{classes: course.classes, probs: course.probs}
	reg, err := NewRegistry(RegistryOptions{
		CourseModels: map[CourseModelKind]ProbabilisticClassifier{
			RandomForest: course,
			XGBoost:      other,
			SVM:          other,
		},
		CareerModel: career,
		Decoder:     testCareerNames,
		Metrics:     testMetrics(0.9, 0.8, 0.7),
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

func testDatasets() *dataset.Datasets {
	return &dataset.Datasets{
		Courses: []dataset.CourseEntry{
			{Name: "Computer Science", Description: "Study of computation", SkillsTags: "programming, algorithms, coding", Tags: []string{"programming", "algorithms", "coding"}},
			{Name: "Nursing", Description: "Patient care", SkillsTags: "anatomy, care, first aid, pharmacology", Tags: []string{"anatomy", "care", "first aid", "pharmacology"}},
			{Name: "Bachelor of Laws", Description: "Legal studies", SkillsTags: dataset.NA},
			{Name: "Applied Mathematics", Description: "Maths", SkillsTags: "python, statistics", Tags: []string{"python", "statistics"}},
		},
		Careers: []dataset.CareerEntry{
			{Name: "software engineering consultant", Description: "Advises on software", RequiredSkills: "programming, communication"},
			{Name: "Registered Nurse", Description: "Provides care", RequiredSkills: "patient care"},
			{Name: "Teacher", Description: "Teaches", RequiredSkills: "communication"},
		},
		Outlook: []dataset.OutlookEntry{
			{CourseName: "computer science", JobApplicability: "Very high", FutureTrends: "Growing", AutomationRisk: "Low"},
			{CourseName: "nursing", JobApplicability: "High", FutureTrends: "Stable", AutomationRisk: "Very low"},
		},
	}
}

func newTestEngine(t *testing.T, cfg *Config, course, career *fakeClassifier) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, testRegistry(t, course, career), testDatasets(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}
