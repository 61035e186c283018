package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/halcyonlabs/solana-mcp/logging"
)

// Sentinel errors for tool registration.
var (
	// ErrEmptyToolName indicates a tool with no name was registered.
	ErrEmptyToolName = errors.New("tool name must not be empty")

	// ErrNilToolHandler indicates a tool was registered without a handler.
	ErrNilToolHandler = errors.New("tool handler must not be nil")

	// ErrDuplicateTool indicates a tool name was registered twice.
	ErrDuplicateTool = errors.New("tool already registered")
)

// Registry is a thread-safe record of registered tools, kept alongside the
// SDK server's own dispatch table for direct programmatic access.
type Registry struct {
	log   *logging.Logger
	mu    sync.RWMutex
	tools map[string]*registeredTool
}

// registeredTool holds tool metadata and handler for the internal registry.
type registeredTool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		log:   logging.GetLogger("registry"),
		tools: make(map[string]*registeredTool, 8),
	}
}

// Add records a tool and its handler. It rejects unnamed tools, nil
// handlers, and duplicate names.
func (r *Registry) Add(tool *mcp.Tool, handler mcp.ToolHandler) error {
	if tool == nil || tool.Name == "" {
		return ErrEmptyToolName
	}

	if handler == nil {
		return fmt.Errorf("%s: %w", tool.Name, ErrNilToolHandler)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%s: %w", tool.Name, ErrDuplicateTool)
	}

	r.tools[tool.Name] = &registeredTool{
		tool:    tool,
		handler: handler,
	}

	return nil
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// ListTools returns metadata for all registered tools as plain maps, the
// shape control-plane consumers expect.
func (r *Registry) ListTools() []map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]map[string]any, 0, len(r.tools))
	for _, t := range r.tools {
		toolMap := map[string]any{
			"name":        t.tool.Name,
			"description": t.tool.Description,
		}

		if t.tool.InputSchema != nil {
			if m, ok := marshalToMap(t.tool.InputSchema); ok {
				toolMap["inputSchema"] = m
			}
		}

		if t.tool.Annotations != nil {
			if m, ok := marshalToMap(t.tool.Annotations); ok {
				toolMap["annotations"] = m
			}
		}

		result = append(result, toolMap)
	}

	return result
}

// marshalToMap round-trips v through JSON into a generic map.
func marshalToMap(v any) (map[string]any, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}

	return m, true
}

// CallTool executes a registered tool by name. Failures are encoded into
// the result's is_error flag rather than returned, so a misbehaving tool
// cannot tear down the host.
func (r *Registry) CallTool(ctx context.Context, name string, input map[string]any) (map[string]any, error) {
	reqID := ulid.Make().String()

	r.log.Debug("tool call received", map[string]any{
		"request_id": reqID,
		"tool":       name,
	})

	r.mu.RLock()
	t, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		r.log.Warn("tool not found", map[string]any{
			"request_id": reqID,
			"tool":       name,
		})

		return errorResultMap("Tool not found: " + name), nil
	}

	inputBytes, err := json.Marshal(input)
	if err != nil {
		return errorResultMap("Failed to marshal input: " + err.Error()), nil
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: inputBytes,
		},
	}

	result, err := t.handler(ctx, req)
	if err != nil {
		r.log.Error("tool execution failed", map[string]any{
			"request_id": reqID,
			"tool":       name,
			"error":      err.Error(),
		})

		return errorResultMap("Tool execution failed: " + err.Error()), nil
	}

	return resultToMap(result), nil
}

// errorResultMap builds an is_error tool result with a single text block.
func errorResultMap(text string) map[string]any {
	return map[string]any{
		"content":  []map[string]any{{"type": "text", "text": text}},
		"is_error": true,
	}
}

// resultToMap converts an MCP CallToolResult to the generic map shape.
func resultToMap(result *mcp.CallToolResult) map[string]any {
	if result == nil {
		return map[string]any{
			"content": []map[string]any{},
		}
	}

	content := make([]map[string]any, 0, len(result.Content))
	for _, c := range result.Content {
		switch v := c.(type) {
		case *mcp.TextContent:
			content = append(content, map[string]any{
				"type": "text",
				"text": v.Text,
			})
		case *mcp.ResourceLink:
			content = append(content, map[string]any{
				"type": "resource_link",
				"uri":  v.URI,
				"name": v.Name,
			})
		case *mcp.EmbeddedResource:
			if v.Resource != nil {
				content = append(content, map[string]any{
					"type": "resource",
					"resource": map[string]any{
						"uri":      v.Resource.URI,
						"mimeType": v.Resource.MIMEType,
						"text":     v.Resource.Text,
					},
				})
			}
		}
	}

	resultMap := map[string]any{
		"content": content,
	}

	if result.IsError {
		resultMap["is_error"] = true
	}

	return resultMap
}
