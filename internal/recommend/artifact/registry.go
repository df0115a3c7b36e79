// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package artifact

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pathwise/internal/recommend"
)

// Paths locates every model artifact.
type Paths struct {
	RandomForest string
	XGBoost      string
	SVM          string
	CareerModel  string
	CareerLabels string
	Metrics      string
}

// LoadMetrics reads the metrics document.
func LoadMetrics(path string) (recommend.MetricsTable, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var table recommend.MetricsTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: no model metrics", path)
	}
	return table, nil
}

// LoadRegistry loads every artifact named by paths and assembles the model
// registry. Errors wrap recommend.ErrRegistry.
func LoadRegistry(paths Paths) (*recommend.Registry, error) {
	courseFiles := map[recommend.CourseModelKind]string{
		recommend.RandomForest: paths.RandomForest,
		recommend.XGBoost:      paths.XGBoost,
		recommend.SVM:          paths.SVM,
	}

	courses := make(map[recommend.CourseModelKind]recommend.ProbabilisticClassifier, len(courseFiles))
	for _, kind := range recommend.CourseModelKinds {
		m, err := LoadModel(courseFiles[kind])
		if err != nil {
			return nil, fmt.Errorf("%w: load %s model: %w", recommend.ErrRegistry, kind, err)
		}
		courses[kind] = m
	}

	career, err := LoadModel(paths.CareerModel)
	if err != nil {
		return nil, fmt.Errorf("%w: load career model: %w", recommend.ErrRegistry, err)
	}
	decoder, err := LoadLabelDecoder(paths.CareerLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: load career labels: %w", recommend.ErrRegistry, err)
	}
	metrics, err := LoadMetrics(paths.Metrics)
	if err != nil {
		return nil, fmt.Errorf("%w: load metrics: %w", recommend.ErrRegistry, err)
	}

	return recommend.NewRegistry(recommend.RegistryOptions{
		CourseModels: courses,
		CareerModel:  career,
		Decoder:      decoder,
		Metrics:      metrics,
	})
}
