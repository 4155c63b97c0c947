package wizard

import (
	"fmt"

	"gatewayboot/internal/ui"
)

// collectAll runs the initial full collection pass: one prompt per
// field in fixed order. Cancellation at any prompt aborts the whole
// pass and discards the partial draft. On success the config is stamped
// with the creation time and normalized once.
func (c *Controller) collectAll() (*Config, error) {
	cfg := NewConfig()
	for _, f := range fieldOrder {
		if err := c.promptField(f, cfg); err != nil {
			return nil, err
		}
	}
	cfg.CreatedAt = c.now().UTC()
	*cfg = Normalize(*cfg)
	return cfg, nil
}

// promptField asks for a single field and writes the accepted value
// into cfg. Invalid input re-displays the same prompt with the
// rejection message, indefinitely. cfg is only mutated on success;
// ErrCancelled leaves it untouched. The initial pass and the review
// screen's edit path share this, seeded with the current value.
func (c *Controller) promptField(f Field, cfg *Config) error {
	for {
		spec := describe(f, cfg)

		if spec.Multi {
			selected, err := c.prompter.MultiSelect(spec)
			if err != nil {
				return err
			}
			cfg.setIntegrations(selected)
			return nil
		}

		if len(spec.Options) > 0 {
			choice, err := c.prompter.Select(spec)
			if err != nil {
				return err
			}
			c.applyChoice(f, cfg, choice)
			return nil
		}

		raw, err := c.prompter.Input(spec)
		if err != nil {
			return err
		}
		value, verr := spec.Validate(raw)
		if verr != nil {
			fmt.Fprintln(c.out, ui.Warn(verr.Error()))
			continue
		}
		c.applyValue(f, cfg, value)
		return nil
	}
}

func (c *Controller) applyChoice(f Field, cfg *Config, choice string) {
	switch f {
	case FieldNetwork:
		cfg.Network = Network(choice)
	case FieldDeploymentType:
		cfg.DeploymentType = DeploymentType(choice)
	case FieldFrontendHosting:
		cfg.FrontendHosting = FrontendHosting(choice)
	}
}

func (c *Controller) applyValue(f Field, cfg *Config, value string) {
	switch f {
	case FieldProjectName:
		cfg.ProjectName = value
	case FieldDomain:
		cfg.Domain = value
	}
}

// summaryRows renders the six fields for the review screen.
func summaryRows(cfg *Config) [][2]string {
	domain := cfg.Domain
	if domain == "" {
		domain = "(none)"
	}
	integrations := "(none)"
	if len(cfg.Integrations) > 0 {
		strs := cfg.integrationStrings()
		integrations = strs[0]
		for _, s := range strs[1:] {
			integrations += ", " + s
		}
	}
	return [][2]string{
		{string(FieldProjectName), cfg.ProjectName},
		{string(FieldNetwork), string(cfg.Network)},
		{string(FieldDeploymentType), string(cfg.DeploymentType)},
		{string(FieldFrontendHosting), string(cfg.FrontendHosting)},
		{string(FieldDomain), domain},
		{string(FieldIntegrations), integrations},
	}
}
