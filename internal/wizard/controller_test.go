package wizard

import (
	"testing"
)

func TestRunCancelDuringFirstPassReturnsNothing(t *testing.T) {
	script := newScript(t,
		"My Gw",
		cancelAnswer{}, // dismiss the network prompt
	)
	c, _ := newTestController(script)

	cfg, err := c.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cfg != nil {
		t.Fatalf("cfg = %+v, want nil on cancellation", cfg)
	}
	script.assertDrained()
}

func TestRunConfirmReturnsConfig(t *testing.T) {
	script := newScript(t,
		"My Gw",
		string(NetworkTestnet),
		string(DeploymentHosted),
		string(HostingSameHost),
		"api.example.com",
		[]string{},
		actionConfirm,
	)
	c, _ := newTestController(script)

	cfg, err := c.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cfg == nil {
		t.Fatal("cfg = nil, want confirmed configuration")
	}
	if cfg.ProjectName != "My Gw" || cfg.Domain != "api.example.com" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	script.assertDrained()
}

func TestRunCancelAtReviewReturnsNothing(t *testing.T) {
	script := newScript(t,
		"My Gw",
		string(NetworkTestnet),
		string(DeploymentHosted),
		string(HostingSameHost),
		"",
		[]string{},
		actionCancel,
	)
	c, _ := newTestController(script)

	cfg, err := c.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cfg != nil {
		t.Fatalf("cfg = %+v, want nil", cfg)
	}
}

func TestRunStartOverDiscardsEverything(t *testing.T) {
	script := newScript(t,
		// First pass.
		"first-gw",
		string(NetworkMainnet),
		string(DeploymentHosted),
		string(HostingSameHost),
		"first.example.com",
		[]string{string(IntegrationSentry)},
		actionStartOver,
		// Second pass: nothing carried over.
		"second-gw",
		string(NetworkTestnet),
		string(DeploymentLocalOnly),
		string(HostingSkip),
		"",
		[]string{},
		actionConfirm,
	)
	c, _ := newTestController(script)

	cfg, err := c.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cfg == nil {
		t.Fatal("cfg = nil")
	}
	script.assertDrained()

	if cfg.ProjectName != "second-gw" {
		t.Errorf("ProjectName = %q, want second-gw", cfg.ProjectName)
	}
	if cfg.Network != NetworkTestnet {
		t.Errorf("Network = %q, want testnet", cfg.Network)
	}
	if cfg.DeploymentType != DeploymentLocalOnly {
		t.Errorf("DeploymentType = %q", cfg.DeploymentType)
	}
	if cfg.FrontendHosting != HostingSkip {
		t.Errorf("FrontendHosting = %q", cfg.FrontendHosting)
	}
	if cfg.Domain != "" {
		t.Errorf("Domain = %q, want empty (discarded first-pass value)", cfg.Domain)
	}
	if len(cfg.Integrations) != 0 {
		t.Errorf("Integrations = %v, want empty", cfg.Integrations)
	}
}

func TestRunStartOverShowsDefaultsAgain(t *testing.T) {
	// After start-over the next pass must seed prompts from the
	// defaults, not from the discarded draft.
	script := newScript(t,
		"first-gw",
		string(NetworkMainnet),
		string(DeploymentLocalOnly),
		string(HostingExternal),
		"first.example.com",
		[]string{},
		actionStartOver,
	)
	c, _ := newTestController(script)

	// Drive the first pass and the start-over by hand so the second
	// pass's defaults can be inspected.
	cfg, err := c.collectAll()
	if err != nil {
		t.Fatalf("collectAll: %v", err)
	}
	action, err := c.review(cfg)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if action != ReviewStartOver {
		t.Fatalf("action = %v", action)
	}

	fresh := NewConfig()
	if spec := describe(FieldNetwork, fresh); spec.Default != string(NetworkTestnet) {
		t.Errorf("network default = %q, want testnet", spec.Default)
	}
	if spec := describe(FieldDeploymentType, fresh); spec.Default != string(DeploymentHosted) {
		t.Errorf("deployment default = %q, want hosted", spec.Default)
	}
	if spec := describe(FieldProjectName, fresh); spec.Default != "" {
		t.Errorf("project name default = %q, want empty", spec.Default)
	}
}
