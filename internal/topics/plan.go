package topics

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Plan is the batch form of the wizard, read from YAML:
//
//	topics:
//	  - name: Algebra
//	    hard: [12, 15]
//	    easy: [3]
type Plan struct {
	Topics []PlanTopic `yaml:"topics"`
}

// PlanTopic lists question numbers per level; counts follow from lengths.
type PlanTopic struct {
	Name   string `yaml:"name"`
	Hard   []int  `yaml:"hard"`
	Medium []int  `yaml:"medium"`
	Easy   []int  `yaml:"easy"`
}

// LoadPlan decodes a YAML plan.
func LoadPlan(r io.Reader) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("plan is empty")
		}
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// Apply drives a fresh session through every step with the plan's answers.
func (p *Plan) Apply() (Session, error) {
	s := NewSession()
	s, err := SetTopicCount(s, len(p.Topics))
	if err != nil {
		return s, err
	}
	in := make([]TopicInput, len(p.Topics))
	answers := map[Key][]int{}
	for i, t := range p.Topics {
		in[i] = TopicInput{Name: t.Name, Hard: len(t.Hard), Medium: len(t.Medium), Easy: len(t.Easy)}
		for l, qs := range map[Level][]int{Hard: t.Hard, Medium: t.Medium, Easy: t.Easy} {
			if len(qs) > 0 {
				answers[Key{Topic: i, Level: l}] = qs
			}
		}
	}
	if s, err = SubmitTopics(s, in); err != nil {
		return s, err
	}
	return SubmitQuestions(s, answers)
}
