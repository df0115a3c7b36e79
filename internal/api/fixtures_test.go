// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/pathwise/internal/config"
	"github.com/tomtom215/pathwise/internal/dataset"
	"github.com/tomtom215/pathwise/internal/feedback"
	"github.com/tomtom215/pathwise/internal/models"
	"github.com/tomtom215/pathwise/internal/recommend"
	"github.com/tomtom215/pathwise/internal/recommend/artifact"
)

// testEngine builds an engine over small linear models: high Mathematics
// favours Computer Science, high logical-mathematical favours Software
// Engineer.
func testEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	course := func(name string) *artifact.Model {
		m, err := artifact.NewModel(&artifact.ModelDocument{
			Kind:            artifact.KindLinear,
			Name:            name,
			Output:          artifact.OutputSoftmax,
			Classes:         []string{"Computer Science", "Nursing"},
			NumericFeatures: []string{"Mathematics"},
			Weights:         [][]float64{{1}, {-1}},
		})
		if err != nil {
			t.Fatalf("NewModel() error = %v", err)
		}
		return m
	}
	career, err := artifact.NewModel(&artifact.ModelDocument{
		Kind:            artifact.KindLinear,
		Name:            "career_model",
		Output:          artifact.OutputSoftmax,
		Classes:         []string{"0", "1"},
		NumericFeatures: []string{"Logical - Mathematical"},
		Weights:         [][]float64{{1}, {-1}},
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	decoder, err := artifact.NewLabelDecoder([]string{"Software Engineer", "Nurse"})
	if err != nil {
		t.Fatalf("NewLabelDecoder() error = %v", err)
	}

	reg, err := recommend.NewRegistry(recommend.RegistryOptions{
		CourseModels: map[recommend.CourseModelKind]recommend.ProbabilisticClassifier{
			recommend.RandomForest: course("random_forest_course"),
			recommend.XGBoost:      course("xgboost_course"),
			recommend.SVM:          course("svm_course"),
		},
		CareerModel: career,
		Decoder:     decoder,
		Metrics: recommend.MetricsTable{
			"random_forest_course": {Accuracy: 0.81, Precision: 0.8, Recall: 0.79, F1Score: 0.795},
			"xgboost_course":       {Accuracy: 0.86, Precision: 0.85, Recall: 0.84, F1Score: 0.845},
			"svm_course":           {Accuracy: 0.74},
			"career_model":         {Accuracy: 0.7},
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	data := &dataset.Datasets{
		Courses: []dataset.CourseEntry{
			{Name: "Bachelor of Science in Computer Science", Description: "Computation", SkillsTags: "coding, python", Tags: []string{"coding", "python"}},
		},
		Careers: []dataset.CareerEntry{
			{Name: "software engineering consultant", Description: "Advises on software", RequiredSkills: "programming"},
		},
		Outlook: []dataset.OutlookEntry{
			{CourseName: "Computer Science", JobApplicability: "High", FutureTrends: "Growing", AutomationRisk: "Low"},
		},
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), reg, data, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Timeout: 5 * time.Second},
		Store:  config.StoreConfig{Backend: config.BackendMemory},
	}
}

// setupTestRouter returns the full chi handler over engine and store.
func setupTestRouter(t *testing.T, store feedback.Store) (http.Handler, *Handler) {
	t.Helper()
	h := NewHandler(testEngine(t), store, testConfig(), "test")
	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", UserIDHeader},
		RateLimitDisabled:  true,
	})
	return NewRouter(h, mw).SetupChi(), h
}

// failingStore fails every operation.
type failingStore struct {
	err error
}

func (s failingStore) SaveRecommendations(context.Context, []models.StoredRecommendation) ([]int64, error) {
	return nil, s.err
}

func (s failingStore) GetRecommendation(context.Context, int64) (*models.StoredRecommendation, error) {
	return nil, s.err
}

func (s failingStore) CreateRating(context.Context, *models.RatingRequest) (*models.Rating, error) {
	return nil, s.err
}

func (s failingStore) ListRatings(context.Context) ([]models.Rating, error) { return nil, s.err }

func (s failingStore) RatingSummary(context.Context) (*models.RatingSummary, error) {
	return nil, s.err
}

func (s failingStore) Ping(context.Context) error { return s.err }

func (s failingStore) Close() error { return nil }

var errStoreDown = errors.New("store down")

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body = %s", err, rec.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v; data = %s", err, env.Data)
		}
	}
	return env
}

func studentBody() map[string]interface{} {
	return map[string]interface{}{
		"grades":               map[string]string{"Mathematics": "A", "English": "B+"},
		"interests":            []string{"coding"},
		"skills":               []string{"Python"},
		"linguistic":           6,
		"musical":              2,
		"bodily":               4,
		"logicalMathematical":  18,
		"spatialVisualization": 9,
		"interpersonal":        7,
		"intrapersonal":        8,
		"naturalist":           3,
		"p1":                   "BEST",
		"p2":                   "avg",
		"p3":                   "POOR",
		"p4":                   "AVG",
		"p5":                   "BEST",
		"p6":                   "",
		"p7":                   "AVG",
		"p8":                   "POOR",
	}
}
