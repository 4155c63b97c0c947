package wizard

import (
	"testing"
)

// cancelAnswer scripts an operator dismissing the prompt.
type cancelAnswer struct{}

// scriptPrompter replays a fixed sequence of answers, failing the test
// if the wizard asks more or fewer questions than scripted.
type scriptPrompter struct {
	t       *testing.T
	answers []interface{}
}

func newScript(t *testing.T, answers ...interface{}) *scriptPrompter {
	return &scriptPrompter{t: t, answers: answers}
}

func (s *scriptPrompter) next(message string) interface{} {
	s.t.Helper()
	if len(s.answers) == 0 {
		s.t.Fatalf("unexpected prompt %q: script exhausted", message)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *scriptPrompter) Input(spec PromptSpec) (string, error) {
	switch a := s.next(spec.Message).(type) {
	case cancelAnswer:
		return "", ErrCancelled
	case string:
		return a, nil
	default:
		s.t.Fatalf("input prompt %q got scripted %T", spec.Message, a)
		return "", nil
	}
}

func (s *scriptPrompter) Select(spec PromptSpec) (string, error) {
	switch a := s.next(spec.Message).(type) {
	case cancelAnswer:
		return "", ErrCancelled
	case string:
		for _, opt := range spec.Options {
			if opt == a {
				return a, nil
			}
		}
		s.t.Fatalf("select prompt %q has no option %q (options %v)", spec.Message, a, spec.Options)
		return "", nil
	default:
		s.t.Fatalf("select prompt %q got scripted %T", spec.Message, a)
		return "", nil
	}
}

func (s *scriptPrompter) MultiSelect(spec PromptSpec) ([]string, error) {
	switch a := s.next(spec.Message).(type) {
	case cancelAnswer:
		return nil, ErrCancelled
	case []string:
		return a, nil
	default:
		s.t.Fatalf("multi-select prompt %q got scripted %T", spec.Message, a)
		return nil, nil
	}
}

func (s *scriptPrompter) Confirm(message string, def bool) (bool, error) {
	switch a := s.next(message).(type) {
	case cancelAnswer:
		return false, ErrCancelled
	case bool:
		return a, nil
	default:
		s.t.Fatalf("confirm prompt %q got scripted %T", message, a)
		return false, nil
	}
}

func (s *scriptPrompter) assertDrained() {
	s.t.Helper()
	if len(s.answers) != 0 {
		s.t.Fatalf("%d scripted answers left unconsumed", len(s.answers))
	}
}
