package wizard

// Normalize resolves dependent-field inconsistencies and returns the
// corrected config. A local-only deployment has no shared host, so
// same-host frontend hosting is rewritten to external-platform rather
// than rejected. Idempotent: applying it twice equals applying it once.
func Normalize(cfg Config) Config {
	if cfg.DeploymentType == DeploymentLocalOnly && cfg.FrontendHosting == HostingSameHost {
		cfg.FrontendHosting = HostingExternal
	}
	return cfg
}
