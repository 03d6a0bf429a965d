package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarmad-abualkaz/vscode-helper/internal/helper"
)

type stubRunner struct {
	outcome helper.Outcome
	err     error
	calls   [][]string
}

func (s *stubRunner) Run(ctx context.Context, args ...string) (helper.Outcome, error) {
	s.calls = append(s.calls, args)
	return s.outcome, s.err
}

func dispatch(t *testing.T, runner *stubRunner, name string, args map[string]any) string {
	t.Helper()
	d := NewDispatcher(runner, nil)
	blocks := d.Dispatch(context.Background(), CallRequest{Name: name, Arguments: args})
	require.Len(t, blocks, 1, "dispatch must return exactly one content block")
	return blocks[0].Text
}

func TestDispatchUnknownTool(t *testing.T) {
	runner := &stubRunner{}
	got := dispatch(t, runner, "frobnicate", nil)
	assert.Equal(t, "Error: unknown tool 'frobnicate'", got)
	assert.Empty(t, runner.calls, "unknown tool must not spawn a process")
}

func TestSearchFiles(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		outcome  helper.Outcome
		err      error
		want     string
		wantArgs []string
	}{
		{
			name:     "returns trimmed stdout",
			args:     map[string]any{"name": "*.go"},
			outcome:  helper.Outcome{Stdout: "./main.go\n./server.go"},
			want:     "./main.go\n./server.go",
			wantArgs: []string{"search", "--name", "*.go"},
		},
		{
			name:     "empty output becomes placeholder",
			args:     map[string]any{"content": "TODO"},
			outcome:  helper.Outcome{},
			want:     "(no matches)",
			wantArgs: []string{"search", "--content", "TODO"},
		},
		{
			name:     "no arguments",
			args:     nil,
			outcome:  helper.Outcome{Stdout: "./a"},
			want:     "./a",
			wantArgs: []string{"search"},
		},
		{
			name:     "default directory omitted",
			args:     map[string]any{"name": "*.go", "directory": "."},
			outcome:  helper.Outcome{Stdout: "./a"},
			want:     "./a",
			wantArgs: []string{"search", "--name", "*.go"},
		},
		{
			name:     "custom directory forwarded",
			args:     map[string]any{"name": "*.go", "content": "func", "directory": "/src"},
			outcome:  helper.Outcome{Stdout: "/src/a.go"},
			want:     "/src/a.go",
			wantArgs: []string{"search", "--name", "*.go", "--content", "func", "--dir", "/src"},
		},
		{
			name:    "non-zero exit reports stderr",
			args:    map[string]any{"name": "*.go"},
			outcome: helper.Outcome{ExitCode: 1, Stderr: "boom"},
			want:    "Error searching: boom",
		},
		{
			name:    "non-zero exit falls back to stdout",
			args:    map[string]any{"name": "*.go"},
			outcome: helper.Outcome{ExitCode: 1, Stdout: "partial output"},
			want:    "Error searching: partial output",
		},
		{
			name:    "non-zero exit with no output",
			args:    map[string]any{"name": "*.go"},
			outcome: helper.Outcome{ExitCode: 3},
			want:    "Error searching: exit code 3",
		},
		{
			name: "missing helper binary",
			args: map[string]any{"name": "*.go"},
			err:  helper.ErrNotFound,
			want: "Error searching: " + helper.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{outcome: tt.outcome, err: tt.err}
			got := dispatch(t, runner, SearchFiles, tt.args)
			assert.Equal(t, tt.want, got)
			if tt.wantArgs != nil {
				require.Len(t, runner.calls, 1)
				assert.Equal(t, tt.wantArgs, runner.calls[0])
			}
		})
	}
}

func TestSearchFilesInvalidArguments(t *testing.T) {
	runner := &stubRunner{}
	got := dispatch(t, runner, SearchFiles, map[string]any{"name": 42})
	assert.Contains(t, got, "Error searching: invalid arguments")
	assert.Empty(t, runner.calls)
}

func TestOpenFile(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		outcome  helper.Outcome
		err      error
		want     string
		wantArgs []string
	}{
		{
			name:     "returns trimmed stdout",
			args:     map[string]any{"path": "main.go"},
			outcome:  helper.Outcome{Stdout: "Opened in VS Code: /src/main.go"},
			want:     "Opened in VS Code: /src/main.go",
			wantArgs: []string{"open", "main.go"},
		},
		{
			name:     "empty output becomes confirmation",
			args:     map[string]any{"path": "main.go"},
			outcome:  helper.Outcome{},
			want:     "Opened: main.go",
			wantArgs: []string{"open", "main.go"},
		},
		{
			name:     "open_dir adds the dir flag before the path",
			args:     map[string]any{"path": "main.go", "open_dir": true},
			outcome:  helper.Outcome{},
			want:     "Opened: main.go",
			wantArgs: []string{"open", "--dir", "main.go"},
		},
		{
			name:    "non-zero exit reports stderr",
			args:    map[string]any{"path": "main.go"},
			outcome: helper.Outcome{ExitCode: 1, Stderr: "boom"},
			want:    "Error opening: boom",
		},
		{
			name: "missing helper binary",
			args: map[string]any{"path": "main.go"},
			err:  helper.ErrNotFound,
			want: "Error opening: " + helper.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{outcome: tt.outcome, err: tt.err}
			got := dispatch(t, runner, OpenFile, tt.args)
			assert.Equal(t, tt.want, got)
			if tt.wantArgs != nil {
				require.Len(t, runner.calls, 1)
				assert.Equal(t, tt.wantArgs, runner.calls[0])
			}
		})
	}
}

func TestOpenFileRequiresPath(t *testing.T) {
	for _, args := range []map[string]any{
		nil,
		{},
		{"path": ""},
		{"path": "   "},
	} {
		runner := &stubRunner{}
		got := dispatch(t, runner, OpenFile, args)
		assert.Equal(t, "Error: 'path' is required", got)
		assert.Empty(t, runner.calls, "missing path must not spawn a process")
	}
}
