package topics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when input ends before the wizard finishes.
var ErrInputClosed = errors.New("input ended before the wizard finished")

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

// count reads a non-negative integer; blank means zero when allowBlank.
func (p *prompter) count(label string, allowBlank bool) (int, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		if s == "" && allowBlank {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintf(p.out, "  please enter a whole number >= 0\n")
	}
}

// RunInteractive asks each wizard question on out and reads answers from
// in, one per line.
func RunInteractive(in io.Reader, out io.Writer) (Session, error) {
	p := &prompter{sc: bufio.NewScanner(in), out: out}
	s := NewSession()

	for {
		n, err := p.count("Number of topics: ", false)
		if err != nil {
			return s, err
		}
		next, err := SetTopicCount(s, n)
		if err == nil {
			s = next
			break
		}
		fmt.Fprintf(out, "  %v\n", err)
	}

	inputs := make([]TopicInput, s.Total)
	for i := range inputs {
		fmt.Fprintf(out, "Topic %d\n", i+1)
		var name string
		for name == "" {
			v, err := p.line("  Topic name: ")
			if err != nil {
				return s, err
			}
			name = v
		}
		counts := make([]int, len(Levels))
		for j, l := range Levels {
			c, err := p.count(fmt.Sprintf("  Number of %s questions: ", l), true)
			if err != nil {
				return s, err
			}
			counts[j] = c
		}
		inputs[i] = TopicInput{Name: name, Hard: counts[0], Medium: counts[1], Easy: counts[2]}
	}
	s, err := SubmitTopics(s, inputs)
	if err != nil {
		return s, err
	}

	answers := map[Key][]int{}
	for _, k := range Pending(s) {
		t := s.Topics[k.Topic]
		fmt.Fprintf(out, "%s - %s questions\n", t.Name, titleCase(string(k.Level)))
		qs := make([]int, t.Counts[k.Level])
		for j := range qs {
			for {
				v, err := p.line(fmt.Sprintf("  Question %d: ", j+1))
				if err != nil {
					return s, err
				}
				n, err := strconv.Atoi(v)
				if err == nil {
					qs[j] = n
					break
				}
				fmt.Fprintf(out, "  please enter a question number\n")
			}
		}
		answers[k] = qs
	}
	return SubmitQuestions(s, answers)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
