// Package preflight verifies that the host has the tools a gateway
// deployment needs before the configuration wizard runs.
package preflight

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gatewayboot/pkg/cmdutil"
)

// probeTimeout bounds a single version probe. Anything slower than
// this is as good as missing for bootstrap purposes.
const probeTimeout = 10 * time.Second

// Tool describes one prerequisite and how to detect it.
type Tool struct {
	// Name is the operator-facing tool name.
	Name string

	// Probe is the shell-quoted command that prints the version.
	Probe string

	// Pattern is a regexp with one capture group extracting the
	// version from the probe output. Empty means report the first
	// output line verbatim.
	Pattern string

	// Required aborts the bootstrap when the tool is missing.
	Required bool
}

// Result is the outcome of probing a single tool.
type Result struct {
	Tool      Tool
	Installed bool
	Version   string
	Err       error
}

// Report collects the results of a full preflight pass.
type Report struct {
	Results []Result
}

// Failed returns the required tools that did not pass.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Tool.Required && !res.Installed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Check probes a single tool and extracts its version.
func Check(ctx context.Context, tool Tool) Result {
	res := Result{Tool: tool}

	argv, err := cmdutil.ParseCommand(tool.Probe)
	if err != nil {
		res.Err = err
		return res
	}

	out, err := cmdutil.Run(ctx, probeTimeout, argv)
	if err != nil {
		res.Err = err
		return res
	}

	res.Installed = true
	res.Version = extractVersion(string(out.Output), tool.Pattern)
	return res
}

// RunAll probes every tool in order. Probes are independent, so a
// failure never short-circuits the rest of the report.
func RunAll(ctx context.Context, tools []Tool) Report {
	report := Report{Results: make([]Result, 0, len(tools))}
	for _, tool := range tools {
		report.Results = append(report.Results, Check(ctx, tool))
	}
	return report
}

func extractVersion(output, pattern string) string {
	output = strings.TrimSpace(output)
	if pattern == "" {
		if i := strings.IndexByte(output, '\n'); i >= 0 {
			output = output[:i]
		}
		return output
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(output)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// DefaultTools is the prerequisite set for a gateway host: the
// container runtime the stack runs on, git for pulling the stack
// definition, and a couple of optional conveniences.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:     "docker",
			Probe:    "docker --version",
			Pattern:  `Docker version ([0-9][^,\s]*)`,
			Required: true,
		},
		{
			Name:     "docker compose",
			Probe:    "docker compose version --short",
			Required: true,
		},
		{
			Name:     "git",
			Probe:    "git --version",
			Pattern:  `git version (\S+)`,
			Required: true,
		},
		{
			Name:    "curl",
			Probe:   "curl --version",
			Pattern: `curl (\S+)`,
		},
		{
			Name:    "jq",
			Probe:   "jq --version",
			Pattern: `jq-(\S+)`,
		},
	}
}
