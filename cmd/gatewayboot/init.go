package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gatewayboot/internal/export"
	"gatewayboot/internal/preflight"
	"gatewayboot/internal/ui"
	"gatewayboot/internal/walkthrough"
	"gatewayboot/internal/wizard"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	outputPath    string
	skipPreflight bool
	skipWallet    bool
	initVerbose   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactive gateway setup wizard",
	Long: `Launch the interactive setup wizard.

The wizard checks local tool prerequisites, collects the gateway
configuration through validated prompts with a review step, writes the
confirmed configuration to disk, and walks you through the manual
wallet creation and staking steps for the chosen network.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&outputPath, "output", "o", "gateway.yaml", "Path the confirmed configuration is written to")
	initCmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip the tool prerequisite checks")
	initCmd.Flags().BoolVar(&skipWallet, "skip-wallet", false, "Skip the wallet/staking walkthrough")
	initCmd.Flags().BoolVarP(&initVerbose, "verbose", "v", false, "Show probe commands during preflight")
}

func runInit(cmd *cobra.Command, args []string) error {
	// The wizard is prompt-driven end to end; nothing sensible can
	// happen when stdin is a pipe.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("init is interactive and requires a terminal (stdin is not a TTY)")
	}

	fmt.Println(ui.Banner())
	fmt.Println()

	if !skipPreflight {
		if err := runPreflightChecks(cmd); err != nil {
			return err
		}
		fmt.Println()
	}

	prompter := wizard.NewTerminalPrompter()
	ctrl := wizard.NewController(prompter, os.Stdout)

	cfg, err := ctrl.Run()
	if err != nil {
		return fmt.Errorf("gathering configuration: %w", err)
	}
	if cfg == nil {
		fmt.Println(ui.Warn("Setup cancelled - no configuration written."))
		return nil
	}

	if err := confirmOverwrite(prompter, outputPath); err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Println(ui.Warn("Keeping existing " + outputPath + " - configuration discarded."))
			return nil
		}
		return err
	}

	if err := export.Write(cfg, outputPath); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	fmt.Println(ui.Success("Configuration written to " + outputPath))

	if !skipWallet {
		wt := walkthrough.New(prompter, os.Stdout)
		if err := wt.Run(cfg.Network); err != nil {
			if walkthrough.IsCancelled(err) {
				fmt.Println(ui.Warn("Wallet walkthrough aborted - rerun later with: gatewayboot init --skip-preflight"))
				return nil
			}
			return err
		}
	}

	fmt.Println()
	fmt.Println(ui.Success("Gateway bootstrap complete."))
	return nil
}

// runPreflightChecks probes the prerequisite tools and aborts when a
// required one is missing.
func runPreflightChecks(cmd *cobra.Command) error {
	tools := preflight.DefaultTools()
	if initVerbose {
		for _, t := range tools {
			fmt.Printf("probe: %s\n", t.Probe)
		}
	}

	report := preflight.RunAll(cmd.Context(), tools)
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

func printReport(report preflight.Report) {
	for _, res := range report.Results {
		switch {
		case res.Installed:
			fmt.Println(ui.Success(fmt.Sprintf("%-16s %s", res.Tool.Name, res.Version)))
		case res.Tool.Required:
			fmt.Println(ui.Fail(fmt.Sprintf("%-16s not found (required)", res.Tool.Name)))
		default:
			fmt.Println(ui.Warn(fmt.Sprintf("%-16s not found (optional)", res.Tool.Name)))
		}
	}
}

// confirmOverwrite asks before clobbering an existing configuration.
// Returns wizard.ErrCancelled when the operator declines.
func confirmOverwrite(prompter wizard.Prompter, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if prev, err := export.Load(path); err == nil {
		fmt.Println(ui.Warn(fmt.Sprintf("%s already exists (project %q, created %s)",
			path, prev.ProjectName, prev.CreatedAt.Format("2006-01-02"))))
	} else {
		fmt.Println(ui.Warn(path + " already exists"))
	}
	overwrite, err := prompter.Confirm("Overwrite it?", false)
	if err != nil {
		return err
	}
	if !overwrite {
		return wizard.ErrCancelled
	}
	return nil
}
