package cli

import (
	mcpadapter "github.com/abdidvp/stockroom/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the stockroom MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start stockroom MCP server (stdio)",
		Long:  "Start the stockroom MCP server using stdio transport. Assistants can list, search, value and update the inventory; every change is saved to the inventory file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, true)
			if err != nil {
				return err
			}
			s := mcpadapter.NewStockroomMCPServer(svc)
			return server.ServeStdio(s)
		},
	}
}
