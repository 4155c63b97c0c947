// Package cmdutil runs external commands for the preflight probes.
package cmdutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

// Result holds the outcome of a probe execution.
type Result struct {
	// Output is the combined stdout and stderr.
	Output []byte

	// ExitCode is the command's exit code.
	ExitCode int

	// Duration is how long the command ran.
	Duration time.Duration
}

// Run executes a command with a timeout and returns its combined
// output. The command is given as argv; a zero timeout means none.
func Run(ctx context.Context, timeout time.Duration, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := &Result{
		Output:   output,
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, fmt.Errorf("command failed: %w", err)
	}
	return result, nil
}

// ParseCommand splits a shell-quoted command string into argv.
//
// Example:
//
//	`docker compose version --short` -> ["docker", "compose", "version", "--short"]
func ParseCommand(cmdStr string) ([]string, error) {
	argv, err := shellquote.Split(cmdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing command string: %w", err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command string")
	}
	return argv, nil
}

// Format renders argv as a copy-pasteable shell string, quoting
// arguments that need it.
func Format(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		if strings.ContainsAny(arg, " \t\n\"'") {
			quoted[i] = shellquote.Join(arg)
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}
