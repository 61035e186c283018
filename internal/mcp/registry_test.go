package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handlerReturning(result *mcp.CallToolResult) mcp.ToolHandler {
	return func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return result, nil
	}
}

func TestRegistryAddValidation(t *testing.T) {
	r := NewRegistry()

	t.Run("nil tool", func(t *testing.T) {
		assert.ErrorIs(t, r.Add(nil, handlerReturning(nil)), ErrEmptyToolName)
	})

	t.Run("empty name", func(t *testing.T) {
		tool := NewTool("", "desc", SimpleSchema(map[string]string{}))
		assert.ErrorIs(t, r.Add(tool, handlerReturning(nil)), ErrEmptyToolName)
	})

	t.Run("nil handler", func(t *testing.T) {
		tool := NewTool("t", "desc", SimpleSchema(map[string]string{}))
		assert.ErrorIs(t, r.Add(tool, nil), ErrNilToolHandler)
	})

	t.Run("duplicate", func(t *testing.T) {
		tool := NewTool("dup", "desc", SimpleSchema(map[string]string{}))
		require.NoError(t, r.Add(tool, handlerReturning(TextResult("ok"))))
		assert.ErrorIs(t, r.Add(tool, handlerReturning(nil)), ErrDuplicateTool)
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistryCallToolNilResult(t *testing.T) {
	r := NewRegistry()

	tool := NewTool("silent", "Returns nothing", SimpleSchema(map[string]string{}))
	require.NoError(t, r.Add(tool, handlerReturning(nil)))

	result, err := r.CallTool(context.Background(), "silent", nil)
	require.NoError(t, err)

	content, ok := result["content"].([]map[string]any)
	require.True(t, ok)
	assert.Empty(t, content)
	_, isError := result["is_error"]
	assert.False(t, isError)
}

func TestRegistryCallToolEmbeddedContent(t *testing.T) {
	r := NewRegistry()

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "head"},
			&mcp.ResourceLink{URI: "solana://account/abc", Name: "abc"},
			&mcp.EmbeddedResource{Resource: &mcp.ResourceContents{
				URI:      "solana://tx/def",
				MIMEType: "application/json",
				Text:     "{}",
			}},
		},
	}

	tool := NewTool("rich", "Mixed content", SimpleSchema(map[string]string{}))
	require.NoError(t, r.Add(tool, handlerReturning(result)))

	out, err := r.CallTool(context.Background(), "rich", nil)
	require.NoError(t, err)

	content, ok := out["content"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, content, 3)
	assert.Equal(t, "text", content[0]["type"])
	assert.Equal(t, "resource_link", content[1]["type"])
	assert.Equal(t, "resource", content[2]["type"])
}
