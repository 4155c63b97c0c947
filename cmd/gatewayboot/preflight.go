package main

import (
	"fmt"
	"strings"

	"gatewayboot/internal/preflight"

	"github.com/spf13/cobra"
)

var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Check local tool prerequisites",
	Long: `Check that the tools a gateway deployment depends on are installed,
and report the detected versions. Exits non-zero when a required tool
is missing.`,
	RunE: runPreflight,
}

func runPreflight(cmd *cobra.Command, args []string) error {
	report := preflight.RunAll(cmd.Context(), preflight.DefaultTools())
	printReport(report)

	if failed := report.Failed(); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, res := range failed {
			names[i] = res.Tool.Name
		}
		return fmt.Errorf("missing required tools: %s", strings.Join(names, ", "))
	}
	return nil
}
