// Package server implements the MCP (Model Context Protocol) server for
// bubble-sheet scoring tools.
//
// This package provides a JSON-RPC 2.0 server that exposes answer-sheet
// recognition through the MCP protocol. It's designed to work with
// Claude and other MCP-compatible clients, so an AI grading workflow can
// score photographed sheets and inspect how each decision was made.
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
// Scoring:
//   - sheet_score: Decode all answers from one or more page photographs
//
// Page Inspection:
//   - page_load: Load a page photograph and get its metadata
//   - page_inspect: Classify a page and report detection diagnostics
//   - page_render: Render a decoded-answer overlay or a pipeline stage
//   - cell_crop: Extract one grid cell as a PNG for close examination
//
// Header Reading:
//   - header_read: OCR the name/class band of a rectified sheet
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC errors with code
// -32000. Page faults inside a multi-page sheet_score do not fail the
// call; they are reported per page and the surviving pages still score.
package server
