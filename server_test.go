package solanamcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultText extracts the first text block from a CallTool result map.
func resultText(t *testing.T, result map[string]any) string {
	t.Helper()

	content, ok := result["content"].([]map[string]any)
	require.True(t, ok, "content should be a []map[string]any")
	require.NotEmpty(t, content)

	text, ok := content[0]["text"].(string)
	require.True(t, ok, "first content block should carry text")

	return text
}

func okTool(name string) *Tool {
	return NewTool(
		name,
		"A test tool",
		SimpleSchema(map[string]string{"value": "string"}),
		func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return TextResult("ok"), nil
		},
	)
}

func TestNewServer(t *testing.T) {
	srv := NewServer("solana-tools", "1.0.0")

	assert.Equal(t, "solana-tools", srv.Name())
	assert.Equal(t, "1.0.0", srv.Version())
	assert.Empty(t, srv.ListTools())
}

func TestServerAddTool(t *testing.T) {
	t.Run("registers and lists", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")

		require.NoError(t, srv.AddTool(okTool("get_slot")))

		tools := srv.ListTools()
		require.Len(t, tools, 1)
		assert.Equal(t, "get_slot", tools[0]["name"])
		assert.Equal(t, "A test tool", tools[0]["description"])

		schema, ok := tools[0]["inputSchema"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "object", schema["type"])
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")

		require.NoError(t, srv.AddTool(okTool("get_slot")))

		err := srv.AddTool(okTool("get_slot"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateTool)
		assert.Contains(t, err.Error(), "get_slot")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := NewServer("test", "1.0.0").AddTool(okTool(""))
		assert.ErrorIs(t, err, ErrEmptyToolName)
	})

	t.Run("rejects nil handler", func(t *testing.T) {
		tool := NewTool("broken", "No handler", SimpleSchema(map[string]string{}), nil)

		err := NewServer("test", "1.0.0").AddTool(tool)
		assert.ErrorIs(t, err, ErrNilToolHandler)
	})
}

func TestServerListToolsAnnotations(t *testing.T) {
	t.Run("present when set", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")

		tool := okTool("read_account")
		tool.ToolAnnotations = &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		}
		require.NoError(t, srv.AddTool(tool))

		tools := srv.ListTools()
		require.Len(t, tools, 1)

		annotations, ok := tools[0]["annotations"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, annotations["readOnlyHint"])
		assert.Equal(t, true, annotations["idempotentHint"])
	})

	t.Run("absent when nil", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")
		require.NoError(t, srv.AddTool(okTool("plain")))

		tools := srv.ListTools()
		require.Len(t, tools, 1)

		_, hasAnnotations := tools[0]["annotations"]
		assert.False(t, hasAnnotations)
	})
}

func TestServerCallTool(t *testing.T) {
	ctx := context.Background()

	t.Run("executes registered handler", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")

		tool := NewTool(
			"echo",
			"Echo the value argument",
			SimpleSchema(map[string]string{"value": "string"}),
			func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args, err := ParseArguments(req)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}

				value, _ := args["value"].(string)

				return TextResult(value), nil
			},
		)
		require.NoError(t, srv.AddTool(tool))

		result, err := srv.CallTool(ctx, "echo", map[string]any{"value": "lamports"})
		require.NoError(t, err)
		assert.Equal(t, "lamports", resultText(t, result))
		_, isError := result["is_error"]
		assert.False(t, isError)
	})

	t.Run("unknown tool yields is_error result", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")

		result, err := srv.CallTool(ctx, "missing", nil)
		require.NoError(t, err)
		assert.Equal(t, true, result["is_error"])
		assert.Contains(t, resultText(t, result), "Tool not found: missing")
	})

	t.Run("handler error is encoded, not propagated", func(t *testing.T) {
		srv := NewServer("test", "1.0.0")

		tool := NewTool(
			"broken",
			"Always fails",
			SimpleSchema(map[string]string{}),
			func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return nil, errors.New("rpc timeout")
			},
		)
		require.NoError(t, srv.AddTool(tool))

		result, err := srv.CallTool(ctx, "broken", nil)
		require.NoError(t, err)
		assert.Equal(t, true, result["is_error"])
		assert.Contains(t, resultText(t, result), "rpc timeout")
	})
}
