// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package artifact deserializes the pre-trained model artifacts used by the
// recommendation engine.
//
// # File Format
//
// Classifiers and the label decoder are JSON documents. A ".gz" suffix means
// the document is gzip-compressed.
//
//	{"kind":"linear","name":"random_forest_course","output":"softmax",
//	 "classes":["Computer Science","Nursing"],
//	 "numeric_features":["Mathematics","English"],
//	 "tag_features":{"interests":["coding"],"skills":["python"]},
//	 "weights":[[0.4,0.1,1.2,0.8],[-0.2,0.3,0,0]],
//	 "intercepts":[0,0.1],
//	 "checksum":"..."}
//
// Weights hold one row per class. Columns are the numeric features in order
// followed by the tag vocabularies, ordered by tag feature name and then by
// vocabulary position. A tag column is 1 when the row's tag list contains the
// term (case-insensitive) and 0 otherwise.
//
// "softmax" models predict the single most probable class. "multilabel"
// models score each class with an independent sigmoid and predict every
// class at or above Threshold, falling back to the best class when none
// qualifies.
//
// # Integrity
//
// When a document carries a checksum it must equal the SHA-256 of the
// document encoded with an empty checksum field (see Checksum). A mismatch
// aborts loading.
//
// The metrics document is a plain JSON object keyed by model name:
//
//	{"random_forest_course":{"accuracy":0.81,"precision":0.8,"recall":0.79,"f1_score":0.8}}
package artifact
