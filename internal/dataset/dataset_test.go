// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const courseCSV = `course_name,description,skills_tags,duration
Computer Science,Study of computation,"programming, algorithms,  mathematics ,",4 years
Nursing,,"",3 years
`

const careerCSV = "\uFEFFcareer_name,required_skills,description\n" +
	"  Software Engineer  ,\"programming, problem solving\",Builds software\n" +
	"Nurse,patient care,\n"

const outlookCSV = `course_name,job_applicability,future_trends,automation_risk
computer science,Very high,Growing,Low
`

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"programming, algorithms", []string{"programming", "algorithms"}},
		{" a ,, b ,", []string{"a", "b"}},
		{"", []string{}},
		{"N/A", nil},
		{" N/A ", nil},
	}

	for _, tt := range tests {
		got := ParseTags(tt.in)
		if len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
			t.Errorf("ParseTags(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestReadCourses(t *testing.T) {
	t.Parallel()

	courses, err := ReadCourses(strings.NewReader(courseCSV))
	if err != nil {
		t.Fatalf("ReadCourses() error = %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("len(courses) = %d, want 2", len(courses))
	}

	cs := courses[0]
	if cs.Name != "Computer Science" {
		t.Errorf("Name = %q", cs.Name)
	}
	if want := []string{"programming", "algorithms", "mathematics"}; !reflect.DeepEqual(cs.Tags, want) {
		t.Errorf("Tags = %v, want %v", cs.Tags, want)
	}

	nursing := courses[1]
	if nursing.Description != NA {
		t.Errorf("empty description = %q, want %q", nursing.Description, NA)
	}
	if nursing.SkillsTags != NA || len(nursing.Tags) != 0 {
		t.Errorf("empty tags = %q / %v, want N/A and none", nursing.SkillsTags, nursing.Tags)
	}
}

func TestReadCareers(t *testing.T) {
	t.Parallel()

	careers, err := ReadCareers(strings.NewReader(careerCSV))
	if err != nil {
		t.Fatalf("ReadCareers() error = %v", err)
	}
	if len(careers) != 2 {
		t.Fatalf("len(careers) = %d, want 2", len(careers))
	}
	if careers[0].Name != "Software Engineer" {
		t.Errorf("Name = %q, want trimmed Software Engineer", careers[0].Name)
	}
	if careers[0].RequiredSkills != "programming, problem solving" {
		t.Errorf("RequiredSkills = %q", careers[0].RequiredSkills)
	}
	if careers[1].Description != NA {
		t.Errorf("empty description = %q, want N/A", careers[1].Description)
	}
}

func TestReadOutlook(t *testing.T) {
	t.Parallel()

	outlook, err := ReadOutlook(strings.NewReader(outlookCSV))
	if err != nil {
		t.Fatalf("ReadOutlook() error = %v", err)
	}
	want := OutlookEntry{CourseName: "computer science", JobApplicability: "Very high", FutureTrends: "Growing", AutomationRisk: "Low"}
	if len(outlook) != 1 || outlook[0] != want {
		t.Errorf("ReadOutlook() = %+v, want [%+v]", outlook, want)
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	if _, err := ReadCourses(strings.NewReader("")); err == nil {
		t.Error("ReadCourses(empty) succeeded, want error")
	}
	_, err := ReadCareers(strings.NewReader("career_name,description\nNurse,care\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadCareers(missing column) error = %v, want ErrMissingColumn", err)
	}
	if _, err := ReadOutlook(strings.NewReader("course_name,job_applicability,future_trends,automation_risk\n\"unterminated\n")); err == nil {
		t.Error("ReadOutlook(malformed) succeeded, want error")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}
	paths := Paths{
		CourseCatalog: write("courses.csv", courseCSV),
		CareerCatalog: write("careers.csv", careerCSV),
		CourseOutlook: write("outlook.csv", outlookCSV),
	}

	ds, err := Load(paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds.Courses) != 2 || len(ds.Careers) != 2 || len(ds.Outlook) != 1 {
		t.Errorf("Load() sizes = %d/%d/%d, want 2/2/1", len(ds.Courses), len(ds.Careers), len(ds.Outlook))
	}

	paths.CareerCatalog = filepath.Join(dir, "missing.csv")
	_, err = Load(paths)
	if err == nil || !strings.Contains(err.Error(), "load career catalog") {
		t.Errorf("Load(missing career catalog) error = %v", err)
	}
}
