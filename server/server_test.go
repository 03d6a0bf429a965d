package server

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarmad-abualkaz/vscode-helper/internal/helper"
	"github.com/sarmad-abualkaz/vscode-helper/tools"
)

type stubRunner struct {
	outcome helper.Outcome
}

func (s *stubRunner) Run(ctx context.Context, args ...string) (helper.Outcome, error) {
	return s.outcome, nil
}

func TestNew(t *testing.T) {
	srv := New(&stubRunner{}, nil)
	require.NotNil(t, srv)
}

func TestToResult(t *testing.T) {
	result := toResult([]tools.Content{{Text: "(no matches)"}})
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content block must be text")
	assert.Equal(t, "(no matches)", text.Text)
}
