// Package mcp holds the tool registry and schema/result helpers backing the
// public registration API.
//
// The official MCP SDK's Server is built around transport-based dispatch
// (stdio, HTTP, SSE). The Registry here keeps an independent record of every
// registered tool so hosts can list and invoke tools programmatically
// without a transport round-trip.
package mcp
