package tools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/sarmad-abualkaz/vscode-helper/internal/helper"
)

// Content is a single text block returned to the protocol layer.
type Content struct {
	Text string
}

// CallRequest is one inbound tool invocation.
type CallRequest struct {
	Name      string
	Arguments map[string]any
}

// Runner abstracts the helper process executor.
type Runner interface {
	Run(ctx context.Context, args ...string) (helper.Outcome, error)
}

type kind int

const (
	kindSearch kind = iota
	kindOpen
)

// kinds is the closed set of tool names the dispatcher recognizes.
var kinds = map[string]kind{
	SearchFiles: kindSearch,
	OpenFile:    kindOpen,
}

type searchParams struct {
	Name      string `mapstructure:"name"`
	Content   string `mapstructure:"content"`
	Directory string `mapstructure:"directory"`
}

type openParams struct {
	Path    string `mapstructure:"path"`
	OpenDir bool   `mapstructure:"open_dir"`
}

// Dispatcher maps tool calls onto helper process invocations and renders
// every outcome, including failures, as a single text content block.
type Dispatcher struct {
	runner Runner
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher backed by the given runner.
func NewDispatcher(runner Runner, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{runner: runner, logger: logger}
}

// Dispatch routes a call to its handler. It never returns an error: unknown
// tools, missing arguments, an absent helper binary, and helper failures
// are all reported as an informational text block, so the transport layer
// only ever sees well-formed responses.
func (d *Dispatcher) Dispatch(ctx context.Context, req CallRequest) []Content {
	k, ok := kinds[req.Name]
	if !ok {
		return textBlock(fmt.Sprintf("Error: unknown tool '%s'", req.Name))
	}

	switch k {
	case kindSearch:
		return d.searchFiles(ctx, req.Arguments)
	default:
		return d.openFile(ctx, req.Arguments)
	}
}

func (d *Dispatcher) searchFiles(ctx context.Context, args map[string]any) []Content {
	var p searchParams
	if err := mapstructure.Decode(args, &p); err != nil {
		return textBlock("Error searching: invalid arguments: " + err.Error())
	}

	cmdArgs := []string{"search"}
	if strings.TrimSpace(p.Name) != "" {
		cmdArgs = append(cmdArgs, "--name", p.Name)
	}
	if strings.TrimSpace(p.Content) != "" {
		cmdArgs = append(cmdArgs, "--content", p.Content)
	}
	if dir := strings.TrimSpace(p.Directory); dir != "" && dir != "." {
		cmdArgs = append(cmdArgs, "--dir", dir)
	}

	d.logger.Debug("running helper", "args", cmdArgs)
	outcome, err := d.runner.Run(ctx, cmdArgs...)
	if err != nil {
		return textBlock("Error searching: " + err.Error())
	}
	if outcome.ExitCode != 0 {
		return textBlock("Error searching: " + outcome.FailureMessage())
	}

	out := outcome.Stdout
	if out == "" {
		out = "(no matches)"
	}
	return textBlock(out)
}

func (d *Dispatcher) openFile(ctx context.Context, args map[string]any) []Content {
	var p openParams
	if err := mapstructure.Decode(args, &p); err != nil {
		return textBlock("Error opening: invalid arguments: " + err.Error())
	}
	if strings.TrimSpace(p.Path) == "" {
		return textBlock("Error: 'path' is required")
	}

	cmdArgs := []string{"open"}
	if p.OpenDir {
		cmdArgs = append(cmdArgs, "--dir")
	}
	cmdArgs = append(cmdArgs, p.Path)

	d.logger.Debug("running helper", "args", cmdArgs)
	outcome, err := d.runner.Run(ctx, cmdArgs...)
	if err != nil {
		return textBlock("Error opening: " + err.Error())
	}
	if outcome.ExitCode != 0 {
		return textBlock("Error opening: " + outcome.FailureMessage())
	}

	out := outcome.Stdout
	if out == "" {
		out = "Opened: " + p.Path
	}
	return textBlock(out)
}

func textBlock(s string) []Content {
	return []Content{{Text: s}}
}
