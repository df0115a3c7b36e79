// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package recommend

// StudentInput is one student's profile as submitted to the engine.
// It is treated as immutable for the duration of a request.
type StudentInput struct {
	// Grades maps subject name to letter grade (A, B+, C- ...).
	// Subject names are matched case-insensitively against Subjects;
	// unknown subjects are ignored.
	Grades map[string]string `json:"grades" validate:"max=26,dive,keys,required,max=64,endkeys,max=8,printascii"`

	// Interests and Skills are free-text tags matched against course tags.
	Interests []string `json:"interests" validate:"max=50,dive,max=100"`
	Skills    []string `json:"skills" validate:"max=50,dive,max=100"`

	// Multiple-intelligence scores. All eight are required; a zero score is
	// a valid score, which is why they are pointers.
	Linguistic           *float64 `json:"linguistic" validate:"required"`
	Musical              *float64 `json:"musical" validate:"required"`
	Bodily               *float64 `json:"bodily" validate:"required"`
	LogicalMathematical  *float64 `json:"logicalMathematical" validate:"required"`
	SpatialVisualization *float64 `json:"spatialVisualization" validate:"required"`
	Interpersonal        *float64 `json:"interpersonal" validate:"required"`
	Intrapersonal        *float64 `json:"intrapersonal" validate:"required"`
	Naturalist           *float64 `json:"naturalist" validate:"required"`

	// Aptitude ratings: POOR, AVG or BEST. Anything else scores as AVG.
	P1 string `json:"p1" validate:"max=16,printascii"`
	P2 string `json:"p2" validate:"max=16,printascii"`
	P3 string `json:"p3" validate:"max=16,printascii"`
	P4 string `json:"p4" validate:"max=16,printascii"`
	P5 string `json:"p5" validate:"max=16,printascii"`
	P6 string `json:"p6" validate:"max=16,printascii"`
	P7 string `json:"p7" validate:"max=16,printascii"`
	P8 string `json:"p8" validate:"max=16,printascii"`
}

// Aptitudes returns P1..P8 in order.
func (s *StudentInput) Aptitudes() [8]string {
	return [8]string{s.P1, s.P2, s.P3, s.P4, s.P5, s.P6, s.P7, s.P8}
}

// SubjectGradePoint is the scored form of one reported subject.
type SubjectGradePoint struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
	Points  int    `json:"points"`
}

// Recommendation is a single course or career suggestion.
type Recommendation struct {
	// ID is assigned when the recommendation is persisted.
	ID *int64 `json:"id,omitempty"`

	Name string `json:"name"`

	// Type is the course tier ("Bachelor's Degree", "Diploma", "Certificate")
	// for courses, and "career" for careers.
	Type string `json:"type"`

	// SimilarityScore is in [0, 1]. For courses it is the model probability;
	// for careers it is 1 when the career resolved against the catalog and 0
	// otherwise.
	SimilarityScore float64 `json:"similarity_score"`

	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`

	// SkillsTags is the raw tag text of the matched catalog course.
	SkillsTags string `json:"skills_tags,omitempty"`

	JobApplicability string `json:"job_applicability"`
	FutureTrends     string `json:"future_trends"`
	AutomationRisk   string `json:"automation_risk"`
}

// Bundle is the full response for one student.
type Bundle struct {
	AveragePoints       float64             `json:"average_points"`
	ProfileRating       string              `json:"profile_rating"`
	ModelAccuracy       float64             `json:"model_accuracy"`
	CourseModel         string              `json:"course_model"`
	SubjectGradesPoints []SubjectGradePoint `json:"subject_grades_points"`
	Courses             []Recommendation    `json:"courses"`
	Careers             []Recommendation    `json:"careers"`
}

// Clone returns a copy whose slices can be modified without affecting b.
func (b *Bundle) Clone() *Bundle {
	c := *b
	c.SubjectGradesPoints = append([]SubjectGradePoint(nil), b.SubjectGradesPoints...)
	c.Courses = cloneRecommendations(b.Courses)
	c.Careers = cloneRecommendations(b.Careers)
	return &c
}

func cloneRecommendations(recs []Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	for i := range recs {
		out[i] = recs[i]
		if recs[i].ID != nil {
			id := *recs[i].ID
			out[i].ID = &id
		}
	}
	return out
}

// Stats reports engine counters.
type Stats struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	ErrorCount   int64 `json:"error_count"`
	CacheSize    int   `json:"cache_size"`
}
