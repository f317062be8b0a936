package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/bubblesheet-mcp/internal/server"
)

// Stamped by the release build via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `bubblesheet-mcp - MCP server for scoring photographed bubble sheets

Usage: bubblesheet-mcp [options]

Options:
  --version, -v    Print version information
  --help, -h       Print this help message

Environment variables:
  BUBBLESHEET_MCP_LOG_LEVEL=debug    Enable debug logging

The server speaks the MCP protocol over stdin/stdout; point an MCP
client at the binary, there is nothing else to configure. Diagnostics
go to stderr so they never interleave with protocol traffic.`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bubblesheet-mcp %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println(usage)
			return
		}
	}

	// Stdout belongs to the protocol; everything else goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("BUBBLESHEET_MCP_LOG_LEVEL") == "debug" {
		log.Printf("bubblesheet-mcp %s starting (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := server.New().Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
