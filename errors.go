package solanamcp

import (
	"fmt"

	internalmcp "github.com/halcyonlabs/solana-mcp/internal/mcp"
)

// Re-export sentinel errors from the internal registry.
var (
	// ErrEmptyToolName indicates a tool with no name was registered.
	ErrEmptyToolName = internalmcp.ErrEmptyToolName

	// ErrNilToolHandler indicates a tool was registered without a handler.
	ErrNilToolHandler = internalmcp.ErrNilToolHandler

	// ErrDuplicateTool indicates a tool name was registered twice.
	ErrDuplicateTool = internalmcp.ErrDuplicateTool
)

// RegistrationError indicates a tool could not be wired into the server.
// Registration functions log it at ERROR severity and return it so the
// host can fail startup rather than run with a partial toolset.
type RegistrationError struct {
	Tool string
	Err  error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("failed to register tool %q: %v", e.Tool, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
