package solanamcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonlabs/solana-mcp/logging"
)

// KeypairInfo describes a keypair held by the keystore. Secret material
// never crosses this boundary.
type KeypairInfo struct {
	// ID is the keystore's handle for the keypair.
	ID string `json:"id"`

	// PublicKey is the base-58 public key.
	PublicKey string `json:"publicKey"`

	// Path is the derivation path the keypair was derived at, if any.
	Path string `json:"path,omitempty"`
}

// Keystore manages keypairs. Implementations live outside this module;
// handlers treat the keystore as opaque.
type Keystore interface {
	// Generate creates and stores a new random keypair.
	Generate(ctx context.Context) (*KeypairInfo, error)

	// Derive creates and stores a keypair at the given derivation path
	// from the keystore's seed.
	Derive(ctx context.Context, path string) (*KeypairInfo, error)

	// Import stores a keypair from its base-58 secret key.
	Import(ctx context.Context, secretKey string) (*KeypairInfo, error)

	// List returns all stored keypairs.
	List(ctx context.Context) ([]KeypairInfo, error)
}

// RegisterKeyTools wires the key-management tools onto the server:
// generate_keypair, derive_keypair, import_keypair, and list_keypairs.
//
// On failure it logs the error at ERROR severity and returns a
// *RegistrationError; callers should treat any error as fatal for startup.
func RegisterKeyTools(s *Server, ks Keystore) error {
	log := logging.GetLogger("keys")

	tools := []*Tool{
		generateKeypairTool(ks),
		deriveKeypairTool(ks),
		importKeypairTool(ks),
		listKeypairsTool(ks),
	}

	for _, t := range tools {
		if err := s.AddTool(t); err != nil {
			log.Error("failed to register tool", map[string]any{
				"tool":  t.ToolName,
				"error": err.Error(),
			})

			return &RegistrationError{Tool: t.ToolName, Err: err}
		}

		log.Info("registered tool " + t.ToolName)
	}

	return nil
}

func generateKeypairTool(ks Keystore) *Tool {
	return NewTool(
		"generate_keypair",
		"Generate a new random keypair and store it in the keystore",
		SimpleSchema(map[string]string{}),
		func(ctx context.Context, _ *CallToolRequest) (*CallToolResult, error) {
			info, err := ks.Generate(ctx)
			if err != nil {
				return ErrorResult(fmt.Sprintf("generate_keypair failed: %v", err)), nil
			}

			return JSONResult(info), nil
		},
	)
}

func deriveKeypairTool(ks Keystore) *Tool {
	return NewTool(
		"derive_keypair",
		"Derive a keypair from the keystore seed at the given derivation path",
		SimpleSchema(map[string]string{"derivation_path": "string"}),
		func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			path, ok := args["derivation_path"].(string)
			if !ok || path == "" {
				return ErrorResult("derivation_path must be a non-empty string"), nil
			}

			info, err := ks.Derive(ctx, path)
			if err != nil {
				return ErrorResult(fmt.Sprintf("derive_keypair failed for %s: %v", path, err)), nil
			}

			return JSONResult(info), nil
		},
		WithAnnotations(&mcp.ToolAnnotations{IdempotentHint: true}),
	)
}

func importKeypairTool(ks Keystore) *Tool {
	return NewTool(
		"import_keypair",
		"Import a keypair into the keystore from its base-58 secret key",
		SimpleSchema(map[string]string{"secret_key": "string"}),
		func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			secret, ok := args["secret_key"].(string)
			if !ok || secret == "" {
				return ErrorResult("secret_key must be a non-empty string"), nil
			}

			info, err := ks.Import(ctx, secret)
			if err != nil {
				// The secret key must not leak into tool output.
				return ErrorResult(fmt.Sprintf("import_keypair failed: %v", err)), nil
			}

			return JSONResult(info), nil
		},
	)
}

func listKeypairsTool(ks Keystore) *Tool {
	return NewTool(
		"list_keypairs",
		"List the public keys of all keypairs in the keystore",
		SimpleSchema(map[string]string{}),
		func(ctx context.Context, _ *CallToolRequest) (*CallToolResult, error) {
			keys, err := ks.List(ctx)
			if err != nil {
				return ErrorResult(fmt.Sprintf("list_keypairs failed: %v", err)), nil
			}

			return JSONResult(map[string]any{
				"count":    len(keys),
				"keypairs": keys,
			}), nil
		},
		WithAnnotations(readOnlyAnnotations),
	)
}
