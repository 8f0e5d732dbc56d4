// Package mcp exposes document analysis to AI agents over the Model Context
// Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/WojciechSzmit/wcag/internal/application"
	"github.com/WojciechSzmit/wcag/internal/domain"
)

// NewWCAGMCPServer creates an MCP server with the analysis tools and the
// check catalog resources registered.
func NewWCAGMCPServer(svc *application.AnalyzeService, detect domain.TypeDetector, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"wcag",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, detect)
	registerResources(s)

	return s
}
