package solanamcp

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/halcyonlabs/solana-mcp/internal/mcp"
)

// Re-export MCP SDK types for the public API.
// These are the official MCP protocol types.
type (
	// CallToolResult is the server's response to a tool call.
	// Use TextResult, JSONResult, or ErrorResult helpers to create results.
	CallToolResult = mcp.CallToolResult

	// CallToolRequest is the request passed to tool handlers.
	CallToolRequest = mcp.CallToolRequest

	// Content is the interface for content types in tool results.
	Content = mcp.Content

	// TextContent represents text content in a tool result.
	TextContent = mcp.TextContent

	// ToolHandler is the function signature for tool handlers.
	// It receives the context and request, and returns the result.
	//
	// Use ParseArguments to extract input as map[string]any from the
	// request. Use TextResult, JSONResult, or ErrorResult helpers to
	// create results.
	ToolHandler = mcp.ToolHandler

	// ToolAnnotations describes optional hints about tool behavior.
	// Fields include ReadOnlyHint, DestructiveHint, IdempotentHint,
	// OpenWorldHint, and Title.
	ToolAnnotations = mcp.ToolAnnotations

	// Schema is a JSON Schema object for tool input validation.
	Schema = jsonschema.Schema

	// Transport carries MCP messages between the server and its peer.
	// Use *mcp.StdioTransport for the conventional stdio wiring.
	Transport = mcp.Transport
)

// ToolOption configures a Tool during construction.
type ToolOption func(*Tool)

// WithAnnotations sets MCP tool annotations (hints about tool behavior),
// such as whether a tool is read-only, destructive, or idempotent.
func WithAnnotations(annotations *mcp.ToolAnnotations) ToolOption {
	return func(t *Tool) {
		t.ToolAnnotations = annotations
	}
}

// Tool is a name/description/schema/handler tuple awaiting registration
// on a Server.
type Tool struct {
	ToolName        string
	ToolDescription string
	ToolSchema      *jsonschema.Schema
	ToolHandler     ToolHandler
	ToolAnnotations *mcp.ToolAnnotations
}

// Name returns the tool name.
func (t *Tool) Name() string {
	return t.ToolName
}

// Description returns the tool description.
func (t *Tool) Description() string {
	return t.ToolDescription
}

// InputSchema returns the JSON Schema for the tool input.
func (t *Tool) InputSchema() *jsonschema.Schema {
	return t.ToolSchema
}

// Handler returns the tool handler function.
func (t *Tool) Handler() ToolHandler {
	return t.ToolHandler
}

// Annotations returns the tool annotations, or nil if not set.
func (t *Tool) Annotations() *mcp.ToolAnnotations {
	return t.ToolAnnotations
}

// NewTool creates a Tool with optional configuration.
//
// The inputSchema should be a *jsonschema.Schema. Use SimpleSchema for
// convenience or create a full Schema struct for more control.
//
// Example:
//
//	balance := solanamcp.NewTool("get_balance", "Fetch the lamport balance of an account",
//	    solanamcp.SimpleSchema(map[string]string{"address": "string"}),
//	    func(ctx context.Context, req *solanamcp.CallToolRequest) (*solanamcp.CallToolResult, error) {
//	        args, err := solanamcp.ParseArguments(req)
//	        if err != nil {
//	            return solanamcp.ErrorResult(err.Error()), nil
//	        }
//	        address, _ := args["address"].(string)
//	        // ...
//	        return solanamcp.TextResult("0 lamports"), nil
//	    },
//	    solanamcp.WithAnnotations(&solanamcp.ToolAnnotations{ReadOnlyHint: true}),
//	)
func NewTool(
	name, description string,
	inputSchema *jsonschema.Schema,
	handler ToolHandler,
	opts ...ToolOption,
) *Tool {
	t := &Tool{
		ToolName:        name,
		ToolDescription: description,
		ToolSchema:      inputSchema,
		ToolHandler:     handler,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SimpleSchema creates a jsonschema.Schema from a simple type map.
//
// Input format: {"address": "string", "limit": "int"}
//
// Type mappings:
//   - "string"           → {"type": "string"}
//   - "int", "int64"     → {"type": "integer"}
//   - "float64", "float" → {"type": "number"}
//   - "bool"             → {"type": "boolean"}
//   - "[]string"         → {"type": "array", "items": {"type": "string"}}
//   - "any", "object"    → {"type": "object"}
//
// Every listed property is required.
func SimpleSchema(props map[string]string) *jsonschema.Schema {
	return internalmcp.SimpleSchema(props)
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return internalmcp.TextResult(text)
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return internalmcp.ErrorResult(message)
}

// JSONResult creates a CallToolResult whose text content is v rendered as
// indented JSON.
func JSONResult(v any) *mcp.CallToolResult {
	return internalmcp.JSONResult(v)
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
// This is a convenience function for extracting tool input.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	return internalmcp.ParseArguments(req)
}
