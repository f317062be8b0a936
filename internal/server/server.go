package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/bubblesheet-mcp/internal/imaging"
)

// Protocol identity reported during the initialize handshake.
const (
	protocolVersion = "2024-11-05"
	serverName      = "bubblesheet-mcp"
	serverVersion   = "0.1.0"
)

// Server speaks MCP over stdio and exposes the bubble-sheet tools. It
// owns the page cache that lets inspection tools revisit a decoded
// photograph without re-reading it from disk.
type Server struct {
	cache *imaging.PageCache
}

// MCPRequest is an incoming JSON-RPC 2.0 request line.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse is an outgoing JSON-RPC 2.0 response. Exactly one of
// Result and Error is set.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New builds a server with an empty page cache.
func New() *Server {
	return &Server{
		cache: imaging.NewPageCache(),
	}
}

// Run reads newline-delimited requests from stdin until EOF, writing one
// response line per request to stdout. Undecodable lines are logged and
// skipped so a single malformed request cannot wedge the session.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	// Photograph paths are short but tool arguments may carry whole
	// region objects; allow requests up to 1 MiB.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("dropping undecodable request line: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp == nil {
			// Notification; nothing goes back.
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			log.Printf("response for %q not written: %v", req.Method, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}
	return nil
}

// handleRequest routes one request to its method handler. A nil return
// means the method was a notification and gets no response line.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return s.resultResponse(req.ID, map[string]interface{}{})
	default:
		return s.errorResponse(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

// handleInitialize reports the server identity and its tool capability.
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return s.resultResponse(req.ID, map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    serverName,
			"version": serverVersion,
		},
	})
}

// resultResponse wraps a successful result for the given request ID.
func (s *Server) resultResponse(id interface{}, result interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}
