package finder

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// EditorBin is the editor CLI used to open paths.
const EditorBin = "code"

// CommandContext is a variable that allows overriding the editor invocation
// for testing
var CommandContext = exec.CommandContext

// Open resolves path and launches the editor with its absolute form. When
// dir is true and path is a file, the containing directory is opened
// instead. Returns the confirmation line to print on stdout.
func Open(ctx context.Context, path string, dir bool) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("'%s' does not exist", path)
		}
		return "", fmt.Errorf("accessing '%s': %w", path, err)
	}

	target := path
	if dir && !info.IsDir() {
		target = filepath.Dir(path)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving '%s': %w", target, err)
	}

	cmd := CommandContext(ctx, EditorBin, abs)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %v (is the '%s' CLI on PATH?)", err, EditorBin)
	}

	return "Opened in VS Code: " + abs, nil
}
