package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/stockroom/internal/application"
)

const inventoryURI = "stockroom://inventory"

// registerResources registers all stockroom MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.InventoryService) {
	s.AddResource(
		mcplib.NewResource(
			inventoryURI,
			"Inventory",
			mcplib.WithResourceDescription("Every product as persisted JSON records"),
			mcplib.WithMIMEType("application/json"),
		),
		handleInventoryResource(svc),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"stockroom://products/{id}",
			"Product",
			mcplib.WithTemplateDescription("A single product record by ID"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleProductResource(svc),
	)
}

func handleInventoryResource(svc *application.InventoryService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(records(svc.List()), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling inventory: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      inventoryURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleProductResource(svc *application.InventoryService) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("product id is required")
		}

		p, err := svc.Get(id)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(p.ToRecord(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling product: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// templateArg reads a URI template variable. The server passes matched
// values as []string; a plain string is accepted too.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
