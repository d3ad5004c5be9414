package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
)

func newSellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <id> <quantity>",
		Short: "Sell units of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateStock(cmd, opts, args, (*application.InventoryService).Sell, "sold")
		},
	}
}

func newRestockCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restock <id> <quantity>",
		Short: "Add units to a product's stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateStock(cmd, opts, args, (*application.InventoryService).Restock, "restocked")
		},
	}
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			if err := svc.Remove(args[0]); err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s removed.\n", args[0])
			return nil
		},
	}
}

func mutateStock(
	cmd *cobra.Command,
	opts *rootOptions,
	args []string,
	op func(*application.InventoryService, string, int) error,
	verb string,
) error {
	qty, err := domain.ParseQuantity(args[1])
	if err != nil {
		return err
	}
	svc, _, err := opts.openService(cmd, false)
	if err != nil {
		return err
	}
	if err := op(svc, args[0], qty); err != nil {
		return err
	}
	if err := svc.Save(); err != nil {
		return err
	}
	p, err := svc.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Product %s %s successfully! Stock: %d\n", args[0], verb, p.Quantity)
	return nil
}
