package wizard

import (
	"time"
)

// Network selects which chain the gateway connects to.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// DeploymentType describes where the gateway stack runs.
type DeploymentType string

const (
	DeploymentHosted    DeploymentType = "hosted"
	DeploymentLocalOnly DeploymentType = "local-only"
)

// FrontendHosting describes where the gateway frontend is served from.
// HostingSameHost is only meaningful for hosted deployments.
type FrontendHosting string

const (
	HostingSameHost FrontendHosting = "same-host"
	HostingExternal FrontendHosting = "external-platform"
	HostingSkip     FrontendHosting = "skip"
)

// Integration is an optional observability hook the operator can enable.
type Integration string

const (
	IntegrationPrometheus Integration = "prometheus"
	IntegrationGrafana    Integration = "grafana"
	IntegrationSentry     Integration = "sentry"
	IntegrationDiscord    Integration = "discord"
)

// allIntegrations is the canonical ordering used for both the
// multi-select prompt and the stored set.
var allIntegrations = []Integration{
	IntegrationPrometheus,
	IntegrationGrafana,
	IntegrationSentry,
	IntegrationDiscord,
}

// Config is the validated record of project/network/deployment choices
// produced by the wizard. It is only handed to callers after the
// operator confirms it on the review screen.
type Config struct {
	ProjectName     string          `yaml:"project_name"`
	Network         Network         `yaml:"network"`
	DeploymentType  DeploymentType  `yaml:"deployment_type"`
	FrontendHosting FrontendHosting `yaml:"frontend_hosting"`
	Domain          string          `yaml:"domain,omitempty"`
	Integrations    []Integration   `yaml:"integrations,omitempty"`
	CreatedAt       time.Time       `yaml:"created_at"`
}

// NewConfig returns a config carrying the prompt defaults. ProjectName
// and Domain have no default; CreatedAt is stamped by the session once
// the full pass completes.
func NewConfig() *Config {
	return &Config{
		Network:         NetworkTestnet,
		DeploymentType:  DeploymentHosted,
		FrontendHosting: HostingSameHost,
	}
}

// defaultHosting returns the frontend hosting default for a deployment
// type, used both for fresh configs and for re-prompting after the
// deployment type changes.
func defaultHosting(dt DeploymentType) FrontendHosting {
	if dt == DeploymentLocalOnly {
		return HostingExternal
	}
	return HostingSameHost
}

// hostingOptions returns the frontend hosting values valid for the
// given deployment type. Same-host needs a shared host, so it is only
// offered for hosted deployments.
func hostingOptions(dt DeploymentType) []FrontendHosting {
	if dt == DeploymentLocalOnly {
		return []FrontendHosting{HostingExternal, HostingSkip}
	}
	return []FrontendHosting{HostingSameHost, HostingExternal, HostingSkip}
}

// setIntegrations stores the selection as a duplicate-free set in
// canonical order. Selection order is irrelevant.
func (c *Config) setIntegrations(selected []string) {
	chosen := make(map[Integration]bool, len(selected))
	for _, s := range selected {
		chosen[Integration(s)] = true
	}
	var set []Integration
	for _, integ := range allIntegrations {
		if chosen[integ] {
			set = append(set, integ)
		}
	}
	c.Integrations = set
}

// integrationStrings converts the stored set for prompt pre-selection.
func (c *Config) integrationStrings() []string {
	out := make([]string, len(c.Integrations))
	for i, integ := range c.Integrations {
		out[i] = string(integ)
	}
	return out
}
