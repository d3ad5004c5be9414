package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
	"github.com/abdidvp/stockroom/internal/domain"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			return renderProducts(cmd.OutOrStdout(), "Products", svc.List(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON records")
	return cmd
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products by name or type",
	}

	byName := &cobra.Command{
		Use:   "name <substring>",
		Short: "Case-insensitive substring search on product names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Name matches %q", args[0])
			return renderProducts(cmd.OutOrStdout(), title, svc.SearchByName(args[0]), jsonOutput)
		},
	}

	byType := &cobra.Command{
		Use:   "type <electronic|grocery|clothing>",
		Short: "Case-insensitive search on product type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Type %q", args[0])
			return renderProducts(cmd.OutOrStdout(), title, svc.SearchByType(args[0]), jsonOutput)
		},
	}

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output products as JSON records")
	cmd.AddCommand(byName, byType)
	return cmd
}

func renderProducts(w io.Writer, title string, products []domain.Product, jsonOutput bool) error {
	if !jsonOutput {
		fmt.Fprint(w, tui.RenderProducts(title, products))
		return nil
	}
	records := make([]domain.Record, 0, len(products))
	for i := range products {
		records = append(records, products[i].ToRecord())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
