// Package server implements the MCP (Model Context Protocol) server for color
// conversion tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorspace
// library through the MCP protocol. It's designed to work with Claude and
// other MCP-compatible clients, enabling AI systems to convert and compare
// colors with exact numeric behavior.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - color_convert: All representations of one color (hex, RGB, HSV float
//     and int, XYZ, Lab, grayscale check)
//   - color_distance: RGB, simplified Lab, and CIE76 distances between two
//     colors
//   - color_closest_match: Nearest palette entry by the simplified Lab metric
//   - color_named: The named color table, optionally with the nearest named
//     color to a candidate
//
// # Color Arguments
//
// Tools accept colors as hex strings ("ffa500", "#FFA500") or packed
// integers. Hex strings follow the library's silent-coercion rules;
// fractional numbers are rejected with the library's invalid-input error.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
