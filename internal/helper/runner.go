// Package helper runs the vscode-helper binary and captures its output.
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvBin is the environment variable that overrides helper binary resolution.
const EnvBin = "VS_CODE_HELPER_BIN"

// DefaultBin is the helper binary built at the repository root.
const DefaultBin = "./vscode-helper"

const binName = "vscode-helper"

var (
	// CommandContext is a variable that allows overriding the command creation for testing
	CommandContext = exec.CommandContext
	// LookPath is a variable that allows overriding the lookup behavior for testing
	LookPath = exec.LookPath
	// Stat is a variable that allows overriding file probing for testing
	Stat = os.Stat
)

// ErrNotFound reports that the helper binary could not be resolved.
var ErrNotFound = errors.New("vscode-helper binary not found; build it with: go build -o vscode-helper")

// Outcome records a single completed helper run. Stdout and Stderr hold the
// captured streams with surrounding whitespace trimmed.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// FailureMessage selects the message to report for a failed run:
// stderr if non-empty, else stdout, else a generic exit-code description.
func (o Outcome) FailureMessage() string {
	if o.Stderr != "" {
		return o.Stderr
	}
	if o.Stdout != "" {
		return o.Stdout
	}
	return fmt.Sprintf("exit code %d", o.ExitCode)
}

// Runner resolves and executes the helper binary. The zero value resolves
// via EnvBin, then DefaultBin, then $PATH; set Bin to pin an explicit path.
type Runner struct {
	Bin string
}

// Resolve returns the helper binary path, or ErrNotFound.
func (r *Runner) Resolve() (string, error) {
	if bin := strings.TrimSpace(r.Bin); bin != "" {
		return bin, nil
	}
	if env := strings.TrimSpace(os.Getenv(EnvBin)); env != "" {
		return env, nil
	}
	if st, err := Stat(DefaultBin); err == nil && !st.IsDir() {
		return DefaultBin, nil
	}
	if lp, err := LookPath(binName); err == nil {
		return lp, nil
	}
	return "", ErrNotFound
}

// Run executes the helper with the given argument vector, without a shell,
// and waits for it to finish. A non-zero exit is not an error: it is
// returned in the Outcome for the caller to interpret. Run only fails when
// the binary cannot be resolved or the process cannot be launched.
func (r *Runner) Run(ctx context.Context, args ...string) (Outcome, error) {
	bin, err := r.Resolve()
	if err != nil {
		return Outcome{}, err
	}

	cmd := CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	outcome := Outcome{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		return outcome, fmt.Errorf("running %s: %w", bin, runErr)
	}
	return outcome, nil
}
