package wizard

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCancelled is returned by a Prompter when the operator dismisses a
// prompt (Ctrl+C / EOF). It is the only signal that crosses component
// boundaries; validation failures never leave the prompt loop.
var ErrCancelled = errors.New("cancelled by operator")

// Prompter is the terminal capability handed to the session controller
// at construction. Implementations must return ErrCancelled on
// dismissal so the state machine can unwind without sentinel checks on
// library-specific error values.
type Prompter interface {
	Input(spec PromptSpec) (string, error)
	Select(spec PromptSpec) (string, error)
	MultiSelect(spec PromptSpec) ([]string, error)
	Confirm(message string, def bool) (bool, error)
}

// TerminalPrompter asks on the controlling terminal via survey.
type TerminalPrompter struct{}

func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

func (tp *TerminalPrompter) Input(spec PromptSpec) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: spec.Message,
		Default: spec.Default,
		Help:    spec.Help,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", mapSurveyErr(err)
	}
	return answer, nil
}

func (tp *TerminalPrompter) Select(spec PromptSpec) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message: spec.Message,
		Options: spec.Options,
		Default: spec.Default,
		Help:    spec.Help,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", mapSurveyErr(err)
	}
	return answer, nil
}

func (tp *TerminalPrompter) MultiSelect(spec PromptSpec) ([]string, error) {
	var answer []string
	prompt := &survey.MultiSelect{
		Message: spec.Message,
		Options: spec.Options,
		Default: spec.Defaults,
		Help:    spec.Help,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return nil, mapSurveyErr(err)
	}
	return answer, nil
}

func (tp *TerminalPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, mapSurveyErr(err)
	}
	return answer, nil
}

// mapSurveyErr translates survey's interrupt sentinel into the wizard's
// cancellation signal.
func mapSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
