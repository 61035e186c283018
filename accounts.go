package solanamcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonlabs/solana-mcp/logging"
)

// AccountInfo describes an on-chain account as returned by the RPC layer.
type AccountInfo struct {
	// Lamports is the account balance in lamports.
	Lamports uint64 `json:"lamports"`

	// Owner is the base-58 address of the program that owns the account.
	Owner string `json:"owner"`

	// Executable reports whether the account holds a loaded program.
	Executable bool `json:"executable"`

	// RentEpoch is the epoch at which rent is next due.
	RentEpoch uint64 `json:"rentEpoch"`

	// Data is the account data, base64-encoded. Empty when the account
	// holds no data.
	Data string `json:"data,omitempty"`
}

// KeyedAccount pairs an account with its address, as returned by program
// account searches.
type KeyedAccount struct {
	Pubkey  string      `json:"pubkey"`
	Account AccountInfo `json:"account"`
}

// MemcmpFilter matches accounts whose data contains the given base-58
// bytes at the given offset.
type MemcmpFilter struct {
	Offset uint64 `json:"offset"`
	Bytes  string `json:"bytes"`
}

// AccountFilter narrows a program account search. Zero-value fields are
// ignored.
type AccountFilter struct {
	DataSize *uint64       `json:"dataSize,omitempty"`
	Memcmp   *MemcmpFilter `json:"memcmp,omitempty"`
}

// RPCClient answers account queries against a Solana node. Implementations
// live outside this module; handlers treat the client as opaque.
type RPCClient interface {
	// GetBalance returns the lamport balance of the account at address.
	GetBalance(ctx context.Context, address string) (uint64, error)

	// GetAccountInfo returns the account at address, or nil when no such
	// account exists.
	GetAccountInfo(ctx context.Context, address string) (*AccountInfo, error)

	// GetProgramAccounts returns all accounts owned by programID that
	// match every filter.
	GetProgramAccounts(ctx context.Context, programID string, filters []AccountFilter) ([]KeyedAccount, error)
}

// RegisterAccountTools wires the account-inspection tools onto the server:
// get_balance, get_account_info, and search_program_accounts.
//
// On failure it logs the error at ERROR severity and returns a
// *RegistrationError; the server may be left with a subset of the tools
// registered, so callers should treat any error as fatal for startup.
func RegisterAccountTools(s *Server, client RPCClient) error {
	log := logging.GetLogger("accounts")

	tools := []*Tool{
		balanceTool(client),
		accountInfoTool(client),
		programAccountsTool(client),
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

// readOnlyAnnotations marks the inspection tools as safe to call freely.
var readOnlyAnnotations = &mcp.ToolAnnotations{
	ReadOnlyHint:   true,
	IdempotentHint: true,
}

func balanceTool(client RPCClient) *Tool {
	return NewTool(
		"get_balance",
		"Fetch the lamport balance of the account at the given address",
		SimpleSchema(map[string]string{"address": "string"}),
		func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			address, ok := args["address"].(string)
			if !ok || address == "" {
				return ErrorResult("address must be a non-empty string"), nil
			}

			lamports, err := client.GetBalance(ctx, address)
			if err != nil {
				return ErrorResult(fmt.Sprintf("get_balance failed for %s: %v", address, err)), nil
			}

			return JSONResult(map[string]any{
				"address":  address,
				"lamports": lamports,
			}), nil
		},
		WithAnnotations(readOnlyAnnotations),
	)
}

func accountInfoTool(client RPCClient) *Tool {
	return NewTool(
		"get_account_info",
		"Fetch owner, balance, and data of the account at the given address",
		SimpleSchema(map[string]string{"address": "string"}),
		func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			address, ok := args["address"].(string)
			if !ok || address == "" {
				return ErrorResult("address must be a non-empty string"), nil
			}

			info, err := client.GetAccountInfo(ctx, address)
			if err != nil {
				return ErrorResult(fmt.Sprintf("get_account_info failed for %s: %v", address, err)), nil
			}

			if info == nil {
				return ErrorResult("account not found: " + address), nil
			}

			return JSONResult(info), nil
		},
		WithAnnotations(readOnlyAnnotations),
	)
}

// programAccountsSchema uses a full schema because only program_id is
// required; the filter properties are optional.
func programAccountsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"program_id": {
				Type:        "string",
				Description: "Base-58 address of the owning program",
			},
			"data_size": {
				Type:        "integer",
				Description: "Only match accounts whose data is exactly this many bytes",
			},
			"memcmp_offset": {
				Type:        "integer",
				Description: "Byte offset for the memcmp filter; requires memcmp_bytes",
			},
			"memcmp_bytes": {
				Type:        "string",
				Description: "Base-58 bytes to compare at memcmp_offset",
			},
		},
		Required: []string{"program_id"},
	}
}

func programAccountsTool(client RPCClient) *Tool {
	return NewTool(
		"search_program_accounts",
		"List accounts owned by a program, optionally filtered by data size or content",
		programAccountsSchema(),
		func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			programID, ok := args["program_id"].(string)
			if !ok || programID == "" {
				return ErrorResult("program_id must be a non-empty string"), nil
			}

			filters, err := parseAccountFilters(args)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			accounts, err := client.GetProgramAccounts(ctx, programID, filters)
			if err != nil {
				return ErrorResult(fmt.Sprintf("search_program_accounts failed for %s: %v", programID, err)), nil
			}

			return JSONResult(map[string]any{
				"programId": programID,
				"count":     len(accounts),
				"accounts":  accounts,
			}), nil
		},
		WithAnnotations(readOnlyAnnotations),
	)
}

// parseAccountFilters builds RPC filters from the optional tool arguments.
// JSON numbers arrive as float64.
func parseAccountFilters(args map[string]any) ([]AccountFilter, error) {
	var filters []AccountFilter

	if raw, ok := args["data_size"]; ok {
		size, ok := raw.(float64)
		if !ok || size < 0 {
			return nil, fmt.Errorf("data_size must be a non-negative integer, got %v", raw)
		}

		dataSize := uint64(size)
		filters = append(filters, AccountFilter{DataSize: &dataSize})
	}

	rawOffset, hasOffset := args["memcmp_offset"]
	rawBytes, hasBytes := args["memcmp_bytes"]

	if hasOffset != hasBytes {
		return nil, fmt.Errorf("memcmp_offset and memcmp_bytes must be supplied together")
	}

	if hasOffset {
		offset, ok := rawOffset.(float64)
		if !ok || offset < 0 {
			return nil, fmt.Errorf("memcmp_offset must be a non-negative integer, got %v", rawOffset)
		}

		bytes, ok := rawBytes.(string)
		if !ok || bytes == "" {
			return nil, fmt.Errorf("memcmp_bytes must be a non-empty string")
		}

		filters = append(filters, AccountFilter{
			Memcmp: &MemcmpFilter{
				Offset: uint64(offset),
				Bytes:  bytes,
			},
		})
	}

	return filters, nil
}
