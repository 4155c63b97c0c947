package wizard

// Field names one of the six configuration prompts.
type Field string

const (
	FieldProjectName     Field = "project name"
	FieldNetwork         Field = "network"
	FieldDeploymentType  Field = "deployment type"
	FieldFrontendHosting Field = "frontend hosting"
	FieldDomain          Field = "domain"
	FieldIntegrations    Field = "integrations"
)

// fieldOrder is the fixed order of the initial collection pass. The
// frontend hosting prompt depends on the deployment type chosen earlier
// in the same pass, so it must come after it.
var fieldOrder = []Field{
	FieldProjectName,
	FieldNetwork,
	FieldDeploymentType,
	FieldFrontendHosting,
	FieldDomain,
	FieldIntegrations,
}

// PromptSpec describes a single prompt. Options empty means free-text
// input; Multi selects zero or more options. Validate, when set,
// normalizes the raw answer or returns the rejection to display.
type PromptSpec struct {
	Field    Field
	Message  string
	Help     string
	Default  string
	Options  []string
	Defaults []string
	Multi    bool
	Validate func(string) (string, error)
}

// describe builds the prompt for a field, seeded with the config's
// current value as the default. The initial pass and the review screen's
// edit path both go through here, so entry and edit validation can
// never diverge.
func describe(f Field, cfg *Config) PromptSpec {
	switch f {
	case FieldProjectName:
		return PromptSpec{
			Field:    f,
			Message:  "Project name",
			Help:     "Display name for this gateway deployment (64 characters max)",
			Default:  cfg.ProjectName,
			Validate: ValidateProjectName,
		}
	case FieldNetwork:
		return PromptSpec{
			Field:   f,
			Message: "Network",
			Help:    "Testnet stakes free faucet tokens; mainnet stakes real ones",
			Options: []string{string(NetworkTestnet), string(NetworkMainnet)},
			Default: string(cfg.Network),
		}
	case FieldDeploymentType:
		return PromptSpec{
			Field:   f,
			Message: "Deployment type",
			Help:    "Hosted runs the gateway on a public server; local-only keeps it on this machine",
			Options: []string{string(DeploymentHosted), string(DeploymentLocalOnly)},
			Default: string(cfg.DeploymentType),
		}
	case FieldFrontendHosting:
		options := hostingOptions(cfg.DeploymentType)
		def := cfg.FrontendHosting
		if !hostingAllowed(def, options) {
			def = defaultHosting(cfg.DeploymentType)
		}
		return PromptSpec{
			Field:   f,
			Message: "Frontend hosting",
			Help:    "Where the gateway's frontend should be served from",
			Options: hostingStrings(options),
			Default: string(def),
		}
	case FieldDomain:
		return PromptSpec{
			Field:    f,
			Message:  "Public domain (optional)",
			Help:     "Domain the gateway will be reachable at, e.g. gateway.example.com - leave blank to skip",
			Default:  cfg.Domain,
			Validate: ValidateDomain,
		}
	case FieldIntegrations:
		return PromptSpec{
			Field:    f,
			Message:  "Integrations",
			Help:     "Optional observability hooks - space to toggle, enter to accept",
			Options:  integrationOptions(),
			Defaults: cfg.integrationStrings(),
			Multi:    true,
		}
	}
	// fieldOrder and the review screen's field list are the only
	// callers, both drawn from the constants above.
	panic("wizard: unknown field " + string(f))
}

func hostingAllowed(h FrontendHosting, options []FrontendHosting) bool {
	for _, opt := range options {
		if opt == h {
			return true
		}
	}
	return false
}

func hostingStrings(options []FrontendHosting) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = string(opt)
	}
	return out
}

func integrationOptions() []string {
	out := make([]string, len(allIntegrations))
	for i, integ := range allIntegrations {
		out[i] = string(integ)
	}
	return out
}
