// Package solanamcp registers Solana account-inspection and key-management
// tools onto a Model Context Protocol (MCP) server.
//
// The package is registration glue over two opaque collaborators: an
// RPCClient that answers account queries and a Keystore that manages
// keypairs. Each registration function wires name/description/schema/handler
// tuples into the server's dispatch table; the tools' heavy lifting lives
// behind the collaborator interfaces.
//
// # Basic Usage
//
//	srv := solanamcp.NewServer("solana-tools", "1.0.0")
//
//	if err := solanamcp.RegisterAccountTools(srv, rpcClient); err != nil {
//	    log.Fatal(err)
//	}
//	if err := solanamcp.RegisterKeyTools(srv, keystore); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Logging
//
// All diagnostic output goes through the logging package, a leveled,
// context-tagged logger with a single process-wide threshold:
//
//	if err := logging.SetLevelByName("debug"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Custom Tools
//
// Hosts can register their own tools next to the built-in sets:
//
//	tool := solanamcp.NewTool("get_slot", "Fetch the current slot",
//	    solanamcp.SimpleSchema(map[string]string{}),
//	    handler,
//	    solanamcp.WithAnnotations(&solanamcp.ToolAnnotations{ReadOnlyHint: true}),
//	)
//	if err := srv.AddTool(tool); err != nil {
//	    log.Fatal(err)
//	}
package solanamcp
