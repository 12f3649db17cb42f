package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSmellhoundMCPServer creates a new MCP server with all smellhound tools
// registered. The projectPath is the root directory to scan.
func NewSmellhoundMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"smellhound",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
