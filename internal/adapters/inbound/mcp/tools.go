package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
)

// registerTools registers all stockroom MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.InventoryService) {
	s.AddTool(
		mcplib.NewTool("inventory_list",
			mcplib.WithDescription("Returns every product in the inventory as JSON records"),
		),
		handleList(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_search_name",
			mcplib.WithDescription("Case-insensitive substring search on product names"),
			mcplib.WithString("query",
				mcplib.Required(),
				mcplib.Description("Substring to look for in product names"),
			),
		),
		handleSearchName(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_search_type",
			mcplib.WithDescription("Returns every product of one type"),
			mcplib.WithString("type",
				mcplib.Required(),
				mcplib.Description("Product type: Electronic, Grocery or Clothing (any case)"),
			),
		),
		handleSearchType(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_value",
			mcplib.WithDescription("Returns the total inventory value (sum of price times quantity)"),
		),
		handleValue(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_sell",
			mcplib.WithDescription("Sells units of a product. Fails without changes if stock is insufficient."),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product ID")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("Units to sell, positive")),
		),
		handleStock(svc, (*application.InventoryService).Sell),
	)

	s.AddTool(
		mcplib.NewTool("inventory_restock",
			mcplib.WithDescription("Adds units to a product's stock"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product ID")),
			mcplib.WithNumber("quantity", mcplib.Required(), mcplib.Description("Units to add, zero or more")),
		),
		handleStock(svc, (*application.InventoryService).Restock),
	)

	s.AddTool(
		mcplib.NewTool("inventory_remove",
			mcplib.WithDescription("Removes a product from the inventory"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product ID")),
		),
		handleRemove(svc),
	)

	s.AddTool(
		mcplib.NewTool("inventory_sweep",
			mcplib.WithDescription("Removes every expired grocery and returns the removed records. Removal is permanent."),
		),
		handleSweep(svc),
	)
}

func handleList(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(records(svc.List()))
	}
}

func handleSearchName(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(records(svc.SearchByName(query)))
	}
}

func handleSearchType(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, err := request.RequireString("type")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(records(svc.SearchByType(kind)))
	}
}

func handleValue(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(map[string]interface{}{
			"total_value": json.Number(svc.TotalValue().StringFixed(2)),
			"products":    svc.Len(),
		})
	}
}

func handleStock(
	svc *application.InventoryService,
	op func(*application.InventoryService, string, int) error,
) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		qty, err := requireWholeNumber(request, "quantity")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := op(svc, id, qty); err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.Save(); err != nil {
			return errorResult(fmt.Sprintf("save failed: %v", err)), nil
		}
		p, err := svc.Get(id)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p.ToRecord())
	}
}

// requireWholeNumber reads a JSON number argument that must be an integer.
// Fractions are rejected instead of truncated.
func requireWholeNumber(request mcplib.CallToolRequest, key string) (int, error) {
	f, err := request.RequireFloat(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("argument %q must be a whole number, got %v", key, f)
	}
	return int(f), nil
}

func handleRemove(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.Remove(id); err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.Save(); err != nil {
			return errorResult(fmt.Sprintf("save failed: %v", err)), nil
		}
		return textResult(fmt.Sprintf("Product %s removed.", id)), nil
	}
}

func handleSweep(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		removed := svc.RemoveExpired()
		if len(removed) > 0 {
			if err := svc.Save(); err != nil {
				return errorResult(fmt.Sprintf("save failed: %v", err)), nil
			}
		}
		return jsonResult(records(removed))
	}
}

func records(products []domain.Product) []domain.Record {
	out := make([]domain.Record, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToRecord())
	}
	return out
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
