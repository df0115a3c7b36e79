// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

import (
	"fmt"
	"maps"
)

// Classifier is a pre-fit model that maps a feature row to class labels.
type Classifier interface {
	// Classes returns the class labels in the model's fixed order.
	Classes() []string

	// Predict returns one or more labels for row.
	Predict(row FeatureRow) ([]string, error)
}

// ProbabilisticClassifier also reports per-class probabilities, aligned with
// Classes().
type ProbabilisticClassifier interface {
	Classifier
	PredictProba(row FeatureRow) ([]float64, error)
}

// LabelDecoder maps encoded career labels to career names.
type LabelDecoder interface {
	Decode(label string) (string, error)
}

// CourseModelKind enumerates the course models. Declaration order is the
// tie-break order for model selection.
type CourseModelKind int

const (
	RandomForest CourseModelKind = iota
	XGBoost
	SVM
)

// CourseModelKinds lists every kind in tie-break order.
var CourseModelKinds = [...]CourseModelKind{RandomForest, XGBoost, SVM}

// String returns the display name.
func (k CourseModelKind) String() string {
	switch k {
	case RandomForest:
		return "Random Forest Course"
	case XGBoost:
		return "XGBoost Course"
	case SVM:
		return "SVM Course"
	default:
		return "unknown"
	}
}

// MetricsKey returns the key used for the model in the metrics document.
func (k CourseModelKind) MetricsKey() string {
	switch k {
	case RandomForest:
		return "random_forest_course"
	case XGBoost:
		return "xgboost_course"
	case SVM:
		return "svm_course"
	default:
		return ""
	}
}

// ModelMetrics is one entry of the metrics document.
type ModelMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision,omitempty"`
	Recall    float64 `json:"recall,omitempty"`
	F1Score   float64 `json:"f1_score,omitempty"`
}

// MetricsTable maps a metrics key (random_forest_course, ...) to its metrics.
type MetricsTable map[string]ModelMetrics

// RegistryOptions carries the deserialized artifacts.
type RegistryOptions struct {
	CourseModels map[CourseModelKind]ProbabilisticClassifier
	CareerModel  Classifier
	Decoder      LabelDecoder
	Metrics      MetricsTable
}

// Registry holds the loaded models and the selected course model.
// It is immutable after NewRegistry returns.
type Registry struct {
	courseModels map[CourseModelKind]ProbabilisticClassifier
	selected     CourseModelKind
	career       Classifier
	decoder      LabelDecoder
	metrics      MetricsTable
}

// NewRegistry validates opts and selects the course model with the strictly
// highest accuracy, resolving ties in CourseModelKinds order. Every error
// wraps ErrRegistry.
func NewRegistry(opts RegistryOptions) (*Registry, error) {
	if opts.CareerModel == nil {
		return nil, fmt.Errorf("%w: career model is required", ErrRegistry)
	}
	if opts.Decoder == nil {
		return nil, fmt.Errorf("%w: label decoder is required", ErrRegistry)
	}

	best := CourseModelKind(-1)
	bestAccuracy := -1.0
	for _, kind := range CourseModelKinds {
		if opts.CourseModels[kind] == nil {
			return nil, fmt.Errorf("%w: %s model is required", ErrRegistry, kind)
		}
		m, ok := opts.Metrics[kind.MetricsKey()]
		if !ok {
			return nil, fmt.Errorf("%w: metrics entry %q is required", ErrRegistry, kind.MetricsKey())
		}
		if m.Accuracy < 0 || m.Accuracy > 1 {
			return nil, fmt.Errorf("%w: %s accuracy %v outside [0, 1]", ErrRegistry, kind.MetricsKey(), m.Accuracy)
		}
		if m.Accuracy > bestAccuracy {
			best, bestAccuracy = kind, m.Accuracy
		}
	}

	for _, label := range opts.CareerModel.Classes() {
		if _, err := opts.Decoder.Decode(label); err != nil {
			return nil, fmt.Errorf("%w: career class %q does not decode: %w", ErrRegistry, label, err)
		}
	}

	return &Registry{
		courseModels: maps.Clone(opts.CourseModels),
		selected:     best,
		career:       opts.CareerModel,
		decoder:      opts.Decoder,
		metrics:      maps.Clone(opts.Metrics),
	}, nil
}

// CourseModel returns the selected course model.
func (r *Registry) CourseModel() ProbabilisticClassifier {
	return r.courseModels[r.selected]
}

// SelectedKind returns which course model was selected.
func (r *Registry) SelectedKind() CourseModelKind {
	return r.selected
}

// SelectedName returns the display name of the selected course model.
func (r *Registry) SelectedName() string {
	return r.selected.String()
}

// Accuracy returns the accuracy of the selected course model.
func (r *Registry) Accuracy() float64 {
	return r.metrics[r.selected.MetricsKey()].Accuracy
}

// CareerModel returns the career classifier.
func (r *Registry) CareerModel() Classifier {
	return r.career
}

// Decoder returns the career label decoder.
func (r *Registry) Decoder() LabelDecoder {
	return r.decoder
}

// Metrics returns a copy of the full metrics table, including entries for
// models other than the course models.
func (r *Registry) Metrics() MetricsTable {
	return maps.Clone(r.metrics)
}
