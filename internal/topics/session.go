package topics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	clone "github.com/huandu/go-clone/generic"
)

// Level is a question difficulty.
type Level string

const (
	Hard   Level = "hard"
	Medium Level = "medium"
	Easy   Level = "easy"
)

// Levels is the export order.
var Levels = []Level{Hard, Medium, Easy}

// Step is the wizard position.
type Step int

const (
	StepCount Step = iota
	StepTopics
	StepQuestions
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepCount:
		return "count"
	case StepTopics:
		return "topics"
	case StepQuestions:
		return "questions"
	case StepDone:
		return "done"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ErrWrongStep is returned when a step function is applied out of order.
var ErrWrongStep = errors.New("wizard step out of order")

// Topic holds per-level question counts and the question numbers entered
// for them.
type Topic struct {
	Name      string
	Counts    map[Level]int
	Questions map[Level][]int
}

// Session is the whole wizard state. Step functions never modify the
// session they are given; they return a new one.
type Session struct {
	ID     string
	Step   Step
	Total  int
	Topics []Topic
}

// NewSession starts a wizard at the topic-count step.
func NewSession() Session {
	return Session{ID: uuid.NewString(), Step: StepCount}
}

// SetTopicCount records how many topics will be entered.
func SetTopicCount(prev Session, n int) (Session, error) {
	if prev.Step != StepCount {
		return prev, fmt.Errorf("%w: at %s, want %s", ErrWrongStep, prev.Step, StepCount)
	}
	if n < 1 {
		return prev, fmt.Errorf("number of topics must be at least 1, got %d", n)
	}
	next := clone.Clone(prev)
	next.Total = n
	next.Step = StepTopics
	return next, nil
}

// TopicInput is one topic row of the second form.
type TopicInput struct {
	Name   string
	Hard   int
	Medium int
	Easy   int
}

// SubmitTopics records names and question counts for every topic.
func SubmitTopics(prev Session, in []TopicInput) (Session, error) {
	if prev.Step != StepTopics {
		return prev, fmt.Errorf("%w: at %s, want %s", ErrWrongStep, prev.Step, StepTopics)
	}
	if len(in) != prev.Total {
		return prev, fmt.Errorf("expected %d topics, got %d", prev.Total, len(in))
	}
	next := clone.Clone(prev)
	next.Topics = make([]Topic, len(in))
	for i, t := range in {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return prev, fmt.Errorf("topic %d: name is required", i+1)
		}
		counts := map[Level]int{Hard: t.Hard, Medium: t.Medium, Easy: t.Easy}
		for _, l := range Levels {
			if counts[l] < 0 {
				return prev, fmt.Errorf("topic %q: %s count must not be negative", name, l)
			}
		}
		next.Topics[i] = Topic{Name: name, Counts: counts, Questions: map[Level][]int{}}
	}
	next.Step = StepQuestions
	return next, nil
}

// Key addresses the questions of one topic at one level.
type Key struct {
	Topic int // 0-based
	Level Level
}

// Pending lists every (topic, level) with a non-zero count, in form order.
func Pending(s Session) []Key {
	var out []Key
	for i, t := range s.Topics {
		for _, l := range Levels {
			if t.Counts[l] > 0 {
				out = append(out, Key{Topic: i, Level: l})
			}
		}
	}
	return out
}

// SubmitQuestions records question numbers. Every pending key needs exactly
// as many numbers as its count.
func SubmitQuestions(prev Session, in map[Key][]int) (Session, error) {
	if prev.Step != StepQuestions {
		return prev, fmt.Errorf("%w: at %s, want %s", ErrWrongStep, prev.Step, StepQuestions)
	}
	next := clone.Clone(prev)
	for _, k := range Pending(prev) {
		t := prev.Topics[k.Topic]
		qs := in[k]
		if len(qs) != t.Counts[k.Level] {
			return prev, fmt.Errorf("topic %q: %s needs %d question(s), got %d", t.Name, k.Level, t.Counts[k.Level], len(qs))
		}
		next.Topics[k.Topic].Questions[k.Level] = append([]int(nil), qs...)
	}
	for k := range in {
		if k.Topic < 0 || k.Topic >= len(prev.Topics) || prev.Topics[k.Topic].Counts[k.Level] == 0 {
			return prev, fmt.Errorf("unexpected questions for topic %d level %s", k.Topic+1, k.Level)
		}
	}
	next.Step = StepDone
	return next, nil
}
