package wizard

import (
	"fmt"

	"gatewayboot/internal/ui"
)

// ReviewAction is the terminal outcome of the review/edit loop.
type ReviewAction int

const (
	// ReviewConfirm accepts the configuration as shown.
	ReviewConfirm ReviewAction = iota
	// ReviewStartOver discards the draft and re-runs the full pass.
	ReviewStartOver
	// ReviewCancel aborts the wizard with no configuration.
	ReviewCancel
)

const (
	actionConfirm   = "confirm"
	actionEdit      = "edit a field"
	actionStartOver = "start over"
	actionCancel    = "cancel"
)

// review presents the draft and loops until the operator picks a
// terminal action. Edits mutate cfg in place through the same prompt
// specs as the initial pass, seeded with the current value. Cancelling
// the field selection or the field re-prompt abandons only that edit
// and returns to the review screen; it is not a terminal cancel.
func (c *Controller) review(cfg *Config) (ReviewAction, error) {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, ui.Summary("Review your configuration", summaryRows(cfg)))

		choice, err := c.prompter.Select(PromptSpec{
			Message: "What would you like to do?",
			Options: []string{actionConfirm, actionEdit, actionStartOver, actionCancel},
			Default: actionConfirm,
		})
		if err != nil {
			// Dismissing the review menu itself can only mean abort;
			// the menu already carries an explicit cancel entry.
			if err == ErrCancelled {
				return ReviewCancel, nil
			}
			return ReviewCancel, err
		}

		switch choice {
		case actionConfirm:
			return ReviewConfirm, nil
		case actionStartOver:
			return ReviewStartOver, nil
		case actionCancel:
			return ReviewCancel, nil
		case actionEdit:
			if err := c.editField(cfg); err != nil {
				return ReviewCancel, err
			}
		}
	}
}

// editField runs one pass of the editing sub-state: pick a field,
// re-prompt it, re-normalize if the edit could break the hosting
// invariant. Cancellations inside here never escape.
func (c *Controller) editField(cfg *Config) error {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = string(f)
	}
	choice, err := c.prompter.Select(PromptSpec{
		Message: "Which field?",
		Options: names,
	})
	if err != nil {
		if err == ErrCancelled {
			return nil
		}
		return err
	}

	field := Field(choice)
	if err := c.promptField(field, cfg); err != nil {
		if err == ErrCancelled {
			return nil
		}
		return err
	}

	if field == FieldDeploymentType || field == FieldFrontendHosting {
		*cfg = Normalize(*cfg)
	}
	return nil
}
