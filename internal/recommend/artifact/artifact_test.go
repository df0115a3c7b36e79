// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package artifact

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/tomtom215/pathwise/internal/recommend"
)

func softmaxDoc() *ModelDocument {
	return &ModelDocument{
		Kind:            KindLinear,
		Name:            "random_forest_course",
		Output:          OutputSoftmax,
		Classes:         []string{"Computer Science", "Nursing"},
		NumericFeatures: []string{"Mathematics"},
		TagFeatures:     map[string][]string{"interests": {"Coding"}},
		Weights:         [][]float64{{1, 2}, {0, 0}},
		Intercepts:      []float64{0, 1},
	}
}

func multilabelDoc() *ModelDocument {
	return &ModelDocument{
		Kind:            KindLinear,
		Name:            "career_model",
		Output:          OutputMultilabel,
		Classes:         []string{"0", "1", "2"},
		NumericFeatures: []string{"P1"},
		Weights:         [][]float64{{2}, {-2}, {1}},
		Threshold:       0.6,
	}
}

func row(values map[string]float64, tags map[string][]string) recommend.FeatureRow {
	r := recommend.FeatureRow{Values: values, Tags: tags}
	for k := range values {
		r.Columns = append(r.Columns, k)
	}
	return r
}

// writeDoc writes v as JSON, gzip-compressed when name ends in .gz.
func writeDoc(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if strings.HasSuffix(name, ".gz") {
		gzw := gzip.NewWriter(f)
		if _, err := gzw.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := gzw.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}
	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestModel_Softmax(t *testing.T) {
	t.Parallel()

	m, err := NewModel(softmaxDoc())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	probs, err := m.PredictProba(row(map[string]float64{"Mathematics": 1}, map[string][]string{"interests": {" coding "}}))
	if err != nil {
		t.Fatal(err)
	}
	want := 1 / (1 + math.Exp(-2))
	if math.Abs(probs[0]-want) > 1e-9 || math.Abs(probs[0]+probs[1]-1) > 1e-9 {
		t.Errorf("PredictProba() = %v, want [%v %v]", probs, want, 1-want)
	}

	labels, _ := m.Predict(row(map[string]float64{"Mathematics": 1}, map[string][]string{"interests": {"CODING"}}))
	if !reflect.DeepEqual(labels, []string{"Computer Science"}) {
		t.Errorf("Predict() = %v", labels)
	}

	labels, _ = m.Predict(row(map[string]float64{}, nil))
	if !reflect.DeepEqual(labels, []string{"Nursing"}) {
		t.Errorf("Predict(empty row) = %v, want [Nursing]", labels)
	}
	if m.Name() != "random_forest_course" || len(m.Classes()) != 2 {
		t.Errorf("Name()/Classes() = %q / %v", m.Name(), m.Classes())
	}
}

func TestModel_Multilabel(t *testing.T) {
	t.Parallel()

	m, err := NewModel(multilabelDoc())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	labels, _ := m.Predict(row(map[string]float64{"P1": 1}, nil))
	if !reflect.DeepEqual(labels, []string{"0", "2"}) {
		t.Errorf("Predict() = %v, want [0 2]", labels)
	}

	// All sigmoids are 0.5, below the threshold: the first best class wins.
	labels, _ = m.Predict(row(map[string]float64{"P1": 0}, nil))
	if !reflect.DeepEqual(labels, []string{"0"}) {
		t.Errorf("Predict(no class above threshold) = %v, want [0]", labels)
	}

	probs, _ := m.PredictProba(row(map[string]float64{"P1": 0}, nil))
	for i, p := range probs {
		if p != 0.5 {
			t.Errorf("probs[%d] = %v, want 0.5", i, p)
		}
	}
}

func TestNewModel_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(d *ModelDocument)
	}{
		{"unknown kind", func(d *ModelDocument) { d.Kind = "forest" }},
		{"unknown output", func(d *ModelDocument) { d.Output = "ranking" }},
		{"no classes", func(d *ModelDocument) { d.Classes = nil; d.Weights = nil }},
		{"missing weight row", func(d *ModelDocument) { d.Weights = d.Weights[:1] }},
		{"short weight row", func(d *ModelDocument) { d.Weights[1] = []float64{0} }},
		{"intercept count", func(d *ModelDocument) { d.Intercepts = []float64{1} }},
		{"threshold", func(d *ModelDocument) { d.Threshold = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := softmaxDoc()
			tt.modify(doc)
			if _, err := NewModel(doc); err == nil {
				t.Error("NewModel() succeeded, want error")
			}
		})
	}
}

func TestLoadModel(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("plain", func(t *testing.T) {
		m, err := LoadModel(writeDoc(t, dir, "plain.json", softmaxDoc()))
		if err != nil {
			t.Fatalf("LoadModel() error = %v", err)
		}
		if len(m.Classes()) != 2 {
			t.Errorf("Classes() = %v", m.Classes())
		}
	})

	t.Run("gzip with checksum", func(t *testing.T) {
		doc := softmaxDoc()
		sum, err := Checksum(doc)
		if err != nil {
			t.Fatal(err)
		}
		doc.Checksum = sum
		if _, err := LoadModel(writeDoc(t, dir, "model.json.gz", doc)); err != nil {
			t.Fatalf("LoadModel() error = %v", err)
		}
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		doc := softmaxDoc()
		doc.Checksum = strings.Repeat("0", 64)
		_, err := LoadModel(writeDoc(t, dir, "tampered.json", doc))
		if !errors.Is(err, ErrChecksum) {
			t.Errorf("LoadModel() error = %v, want ErrChecksum", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadModel(path); err == nil {
			t.Error("LoadModel(malformed) succeeded")
		}
	})

	t.Run("not gzip", func(t *testing.T) {
		path := filepath.Join(dir, "fake.json.gz")
		if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadModel(path); err == nil {
			t.Error("LoadModel(fake gzip) succeeded")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadModel(filepath.Join(dir, "nope.json")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadModel(missing) error = %v", err)
		}
	})
}

func TestLabelDecoder(t *testing.T) {
	t.Parallel()

	d, err := NewLabelDecoder([]string{"Software Engineer", "Nurse"})
	if err != nil {
		t.Fatal(err)
	}
	if got, err := d.Decode(" 1 "); err != nil || got != "Nurse" {
		t.Errorf("Decode(1) = %q, %v", got, err)
	}
	for _, bad := range []string{"2", "-1", "Nurse", ""} {
		if _, err := d.Decode(bad); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", bad)
		}
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d", d.Len())
	}
	if _, err := NewLabelDecoder(nil); err == nil {
		t.Error("NewLabelDecoder(nil) succeeded")
	}
}

func TestLoadMetrics(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeDoc(t, dir, "metrics.json", map[string]any{
		"svm_course": map[string]float64{"accuracy": 0.7, "precision": 0.6, "recall": 0.5, "f1_score": 0.55},
	})
	table, err := LoadMetrics(path)
	if err != nil {
		t.Fatalf("LoadMetrics() error = %v", err)
	}
	want := recommend.ModelMetrics{Accuracy: 0.7, Precision: 0.6, Recall: 0.5, F1Score: 0.55}
	if table["svm_course"] != want {
		t.Errorf("svm_course = %+v, want %+v", table["svm_course"], want)
	}

	if _, err := LoadMetrics(writeDoc(t, dir, "empty.json", map[string]any{})); err == nil {
		t.Error("LoadMetrics(empty) succeeded")
	}
}

func TestLoadRegistry(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	course := func(name string) string {
		doc := softmaxDoc()
		doc.Name = name
		return writeDoc(t, dir, name+".json", doc)
	}
	paths := Paths{
		RandomForest: course("random_forest_course"),
		XGBoost:      course("xgboost_course"),
		SVM:          course("svm_course"),
		CareerModel:  writeDoc(t, dir, "career.json.gz", multilabelDoc()),
		CareerLabels: writeDoc(t, dir, "labels.json", &DecoderDocument{Classes: []string{"Software Engineer", "Nurse", "Teacher"}}),
		Metrics: writeDoc(t, dir, "metrics.json", map[string]map[string]float64{
			"random_forest_course": {"accuracy": 0.80},
			"xgboost_course":       {"accuracy": 0.85},
			"svm_course":           {"accuracy": 0.85},
		}),
	}

	reg, err := LoadRegistry(paths)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if reg.SelectedKind() != recommend.XGBoost || reg.Accuracy() != 0.85 {
		t.Errorf("selected %v at %v, want XGBoost at 0.85", reg.SelectedKind(), reg.Accuracy())
	}
	if m, ok := reg.CourseModel().(*Model); !ok || m.Name() != "xgboost_course" {
		t.Errorf("CourseModel() = %#v", reg.CourseModel())
	}

	t.Run("undecodable career class", func(t *testing.T) {
		bad := paths
		bad.CareerLabels = writeDoc(t, dir, "short.json", &DecoderDocument{Classes: []string{"Software Engineer"}})
		if _, err := LoadRegistry(bad); !errors.Is(err, recommend.ErrRegistry) {
			t.Errorf("LoadRegistry() error = %v, want ErrRegistry", err)
		}
	})

	t.Run("missing artifact", func(t *testing.T) {
		bad := paths
		bad.SVM = filepath.Join(dir, "missing.json")
		_, err := LoadRegistry(bad)
		if !errors.Is(err, recommend.ErrRegistry) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadRegistry() error = %v, want ErrRegistry wrapping ErrNotExist", err)
		}
	})
}
