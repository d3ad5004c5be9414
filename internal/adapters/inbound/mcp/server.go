package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/stockroom/internal/application"
)

// NewStockroomMCPServer creates a new MCP server with all stockroom tools and
// resources registered against svc. Mutating tools save the inventory file
// after every successful change.
func NewStockroomMCPServer(svc *application.InventoryService) *server.MCPServer {
	s := server.NewMCPServer(
		"stockroom",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
