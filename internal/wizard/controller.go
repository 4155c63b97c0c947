// Package wizard implements the interactive configuration state
// machine: a full collection pass over six validated prompts, followed
// by a review/edit loop that lets the operator correct single fields
// without re-entering everything.
package wizard

import (
	"io"
	"time"
)

// Controller drives the wizard to a terminal outcome: a confirmed
// configuration or nothing. All terminal access goes through the
// injected Prompter and writer, so the state machine runs unmodified
// against a scripted prompter in tests.
type Controller struct {
	prompter Prompter
	out      io.Writer
	now      func() time.Time
}

func NewController(p Prompter, out io.Writer) *Controller {
	return &Controller{
		prompter: p,
		out:      out,
		now:      time.Now,
	}
}

// Run collects a configuration and loops it through review until the
// operator confirms, cancels, or starts over. A nil config with a nil
// error means the operator cancelled; partial input is never exposed.
func (c *Controller) Run() (*Config, error) {
	for {
		cfg, err := c.collectAll()
		if err != nil {
			if err == ErrCancelled {
				return nil, nil
			}
			return nil, err
		}

		action, err := c.review(cfg)
		if err != nil {
			return nil, err
		}
		switch action {
		case ReviewConfirm:
			return cfg, nil
		case ReviewCancel:
			return nil, nil
		case ReviewStartOver:
			// Discard the draft entirely; the next pass starts from
			// the defaults again.
		}
	}
}
