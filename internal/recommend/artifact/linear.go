// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package artifact

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/pathwise/internal/recommend"
)

// Output modes.
const (
	OutputSoftmax    = "softmax"
	OutputMultilabel = "multilabel"
)

// KindLinear is the only supported model kind.
const KindLinear = "linear"

const defaultThreshold = 0.5

// ModelDocument is the serialized form of a linear classifier.
type ModelDocument struct {
	Kind            string              `json:"kind"`
	Name            string              `json:"name"`
	Output          string              `json:"output"`
	Classes         []string            `json:"classes"`
	NumericFeatures []string            `json:"numeric_features"`
	TagFeatures     map[string][]string `json:"tag_features,omitempty"`
	Weights         [][]float64         `json:"weights"`
	Intercepts      []float64           `json:"intercepts,omitempty"`
	Threshold       float64             `json:"threshold,omitempty"`
	Checksum        string              `json:"checksum,omitempty"`
}

func (d *ModelDocument) checksum() string { return d.Checksum }

func (d *ModelDocument) withoutChecksum() any {
	c := *d
	c.Checksum = ""
	return &c
}

type tagColumn struct {
	feature string
	term    string
}

// Model is a linear classifier. It implements
// recommend.ProbabilisticClassifier and is safe for concurrent use.
type Model struct {
	name       string
	output     string
	classes    []string
	numeric    []string
	tags       []tagColumn
	weights    [][]float64
	intercepts []float64
	threshold  float64
}

var _ recommend.ProbabilisticClassifier = (*Model)(nil)

// NewModel validates doc and builds a Model from it.
func NewModel(doc *ModelDocument) (*Model, error) {
	if doc.Kind != KindLinear {
		return nil, fmt.Errorf("unsupported model kind %q", doc.Kind)
	}
	if doc.Output != OutputSoftmax && doc.Output != OutputMultilabel {
		return nil, fmt.Errorf("unsupported output %q", doc.Output)
	}
	if len(doc.Classes) == 0 {
		return nil, errors.New("model has no classes")
	}

	features := make([]string, 0, len(doc.TagFeatures))
	for name := range doc.TagFeatures {
		features = append(features, name)
	}
	sort.Strings(features)
	var tags []tagColumn
	for _, name := range features {
		for _, term := range doc.TagFeatures[name] {
			tags = append(tags, tagColumn{feature: name, term: strings.ToLower(strings.TrimSpace(term))})
		}
	}

	width := len(doc.NumericFeatures) + len(tags)
	if len(doc.Weights) != len(doc.Classes) {
		return nil, fmt.Errorf("weights have %d rows for %d classes", len(doc.Weights), len(doc.Classes))
	}
	for i, w := range doc.Weights {
		if len(w) != width {
			return nil, fmt.Errorf("weights row %d has %d columns, want %d", i, len(w), width)
		}
	}

	intercepts := doc.Intercepts
	if len(intercepts) == 0 {
		intercepts = make([]float64, len(doc.Classes))
	}
	if len(intercepts) != len(doc.Classes) {
		return nil, fmt.Errorf("%d intercepts for %d classes", len(intercepts), len(doc.Classes))
	}

	threshold := doc.Threshold
	if threshold == 0 {
		threshold = defaultThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold %v outside [0, 1]", threshold)
	}

	return &Model{
		name:       doc.Name,
		output:     doc.Output,
		classes:    append([]string(nil), doc.Classes...),
		numeric:    append([]string(nil), doc.NumericFeatures...),
		tags:       tags,
		weights:    doc.Weights,
		intercepts: intercepts,
		threshold:  threshold,
	}, nil
}

// Name returns the model name recorded in the artifact.
func (m *Model) Name() string {
	return m.name
}

// Classes returns the class labels.
func (m *Model) Classes() []string {
	return m.classes
}

// PredictProba returns one probability per class, aligned with Classes.
func (m *Model) PredictProba(row recommend.FeatureRow) ([]float64, error) {
	z := m.scores(m.vector(row))
	if m.output == OutputMultilabel {
		for i := range z {
			z[i] = sigmoid(z[i])
		}
		return z, nil
	}
	return softmax(z), nil
}

// Predict returns the argmax class for softmax models, and every class at or
// above the threshold (best first) for multilabel models.
func (m *Model) Predict(row recommend.FeatureRow) ([]string, error) {
	probs, err := m.PredictProba(row)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return probs[order[a]] > probs[order[b]] })

	if m.output == OutputSoftmax {
		return []string{m.classes[order[0]]}, nil
	}

	var labels []string
	for _, i := range order {
		if probs[i] < m.threshold {
			break
		}
		labels = append(labels, m.classes[i])
	}
	if len(labels) == 0 {
		labels = []string{m.classes[order[0]]}
	}
	return labels, nil
}

func (m *Model) vector(row recommend.FeatureRow) []float64 {
	x := make([]float64, 0, len(m.numeric)+len(m.tags))
	for _, name := range m.numeric {
		v, _ := row.Value(name)
		x = append(x, v)
	}

	present := make(map[string]map[string]struct{}, len(row.Tags))
	for feature, values := range row.Tags {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
		}
		present[feature] = set
	}
	for _, col := range m.tags {
		if _, ok := present[col.feature][col.term]; ok {
			x = append(x, 1)
		} else {
			x = append(x, 0)
		}
	}
	return x
}

func (m *Model) scores(x []float64) []float64 {
	z := make([]float64, len(m.classes))
	for c, w := range m.weights {
		s := m.intercepts[c]
		for j, wj := range w {
			s += wj * x[j]
		}
		z[c] = s
	}
	return z
}

func softmax(z []float64) []float64 {
	maxZ := math.Inf(-1)
	for _, v := range z {
		maxZ = math.Max(maxZ, v)
	}
	sum := 0.0
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = math.Exp(v - maxZ)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// LoadModel reads and validates a classifier artifact.
func LoadModel(path string) (*Model, error) {
	var doc ModelDocument
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	m, err := NewModel(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
