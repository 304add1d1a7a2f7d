package topics

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func finished(t *testing.T) Session {
	t.Helper()
	s, err := SetTopicCount(NewSession(), 2)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	s, err = SubmitTopics(s, []TopicInput{
		{Name: "Algebra", Hard: 2, Easy: 1},
		{Name: " Geometry ", Medium: 1},
	})
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	s, err = SubmitQuestions(s, map[Key][]int{
		{Topic: 0, Level: Hard}:   {12, 15},
		{Topic: 0, Level: Easy}:   {3},
		{Topic: 1, Level: Medium}: {7},
	})
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	return s
}

func TestWizardExportRows(t *testing.T) {
	s := finished(t)
	want := [][]string{
		{"Algebra", "hard", "2", "12", "15"},
		{"Algebra", "easy", "1", "3"},
		{"Geometry", "medium", "1", "7"},
	}
	if got := Rows(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("rows=%v", got)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := buf.String(); got != "Algebra,hard,2,12,15\nAlgebra,easy,1,3\nGeometry,medium,1,7\n" {
		t.Fatalf("csv=%q", got)
	}
	if p := Preview(s); !strings.Contains(p, "| Algebra | hard | 2 | 12, 15 |") {
		t.Fatalf("preview=%s", p)
	}
}

func TestStepsDoNotMutatePriorState(t *testing.T) {
	s1, err := SetTopicCount(NewSession(), 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	s2, err := SubmitTopics(s1, []TopicInput{{Name: "Sets", Hard: 1}})
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	s3, err := SubmitQuestions(s2, map[Key][]int{{Topic: 0, Level: Hard}: {4}})
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if s1.Step != StepTopics || s1.Topics != nil {
		t.Fatalf("s1 changed: %+v", s1)
	}
	if s2.Step != StepQuestions || len(s2.Topics[0].Questions[Hard]) != 0 {
		t.Fatalf("s2 changed: %+v", s2)
	}
	if s3.Step != StepDone || s3.Topics[0].Questions[Hard][0] != 4 {
		t.Fatalf("s3=%+v", s3)
	}
	if s1.ID == "" || s1.ID != s3.ID {
		t.Fatalf("session id not carried: %q %q", s1.ID, s3.ID)
	}
}

func TestStepValidation(t *testing.T) {
	if _, err := SetTopicCount(NewSession(), 0); err == nil {
		t.Errorf("expected error for zero topics")
	}
	if _, err := SubmitTopics(NewSession(), nil); !errors.Is(err, ErrWrongStep) {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}
	s, _ := SetTopicCount(NewSession(), 1)
	if _, err := SubmitTopics(s, []TopicInput{{Name: "", Hard: 1}}); err == nil {
		t.Errorf("expected error for blank name")
	}
	if _, err := SubmitTopics(s, []TopicInput{{Name: "A", Easy: -1}}); err == nil {
		t.Errorf("expected error for negative count")
	}
	if _, err := SubmitTopics(s, []TopicInput{{Name: "A"}, {Name: "B"}}); err == nil {
		t.Errorf("expected error for topic count mismatch")
	}
	s, _ = SubmitTopics(s, []TopicInput{{Name: "A", Hard: 2}})
	if _, err := SubmitQuestions(s, map[Key][]int{{Topic: 0, Level: Hard}: {1}}); err == nil {
		t.Errorf("expected error for too few questions")
	}
	if _, err := SubmitQuestions(s, map[Key][]int{{Topic: 0, Level: Hard}: {1, 2}, {Topic: 0, Level: Easy}: {3}}); err == nil {
		t.Errorf("expected error for questions at a zero-count level")
	}
	if err := WriteCSV(&bytes.Buffer{}, s); !errors.Is(err, ErrWrongStep) {
		t.Errorf("export before finishing should fail, got %v", err)
	}
}

func TestPlanApply(t *testing.T) {
	doc := `
topics:
  - name: Algebra
    hard: [12, 15]
    easy: [3]
  - name: Geometry
    medium: [7]
`
	p, err := LoadPlan(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}
	s, err := p.Apply()
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(Rows(s), Rows(finished(t))) {
		t.Fatalf("plan rows=%v", Rows(s))
	}
	if _, err := LoadPlan(strings.NewReader("topics:\n  - name: A\n    tricky: [1]\n")); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestRunInteractive(t *testing.T) {
	in := strings.Join([]string{
		"two", // rejected
		"2",
		"Algebra", "2", "", "1",
		"", "Geometry", "", "1", "",
		"12", "x", "15",
		"3",
		"7",
	}, "\n") + "\n"
	var out bytes.Buffer
	s, err := RunInteractive(strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("RunInteractive: %v\n%s", err, out.String())
	}
	if !reflect.DeepEqual(Rows(s), Rows(finished(t))) {
		t.Fatalf("rows=%v", Rows(s))
	}
	if !strings.Contains(out.String(), "Algebra - Hard questions") {
		t.Fatalf("prompt output missing heading:\n%s", out.String())
	}
}

func TestRunInteractiveEOF(t *testing.T) {
	_, err := RunInteractive(strings.NewReader("1\nAlgebra\n"), &bytes.Buffer{})
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}
