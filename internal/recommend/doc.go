// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package recommend turns a student profile into course and career
// recommendations.
//
// # Pipeline
//
// Each request runs the same steps:
//
//   - Grades are scored (A=12 down to E=1) over the 26-subject universe and
//     averaged over the subjects actually reported.
//   - The average selects a profile rating and a course tier (Bachelor's
//     Degree, Diploma or Certificate).
//   - The course row (grade points plus interest and skill tags) is scored by
//     the selected course model; the five most probable classes are joined to
//     the course catalog and the outlook table.
//   - The career row (eight intelligence scores plus P1..P8 aptitudes) is
//     classified by the career model; decoded names are resolved against the
//     career catalog.
//   - Every recommendation carries a short reasoning text.
//
// # Models
//
// Models are black boxes behind Classifier and ProbabilisticClassifier. The
// Registry holds the Random Forest, XGBoost and SVM course models and picks
// the one with the highest reported accuracy. Artifacts are deserialized by
// the artifact subpackage.
//
// # Catalog Matching
//
// Model labels and catalog names do not always agree. Labels are resolved by
// case-insensitive exact match first, then by FuzzyMatch (either name
// contains the other). Unresolved labels are still returned, with fallback
// descriptions.
//
// # Usage
//
//	reg, err := artifact.LoadRegistry(paths)
//	data, err := dataset.Load(dataPaths)
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), reg, data, logger)
//
//	bundle, err := engine.Recommend(ctx, &input)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Registry and datasets are never
// mutated after startup; identical inputs yield identical bundles, which are
// cached in an LRU keyed by a hash of the input.
package recommend
