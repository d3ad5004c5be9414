package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
)

func newValueCmd(opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Show the total inventory value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			total := svc.TotalValue()
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), total.StringFixed(2))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderValue(total, svc.Len()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the number")
	return cmd
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove every expired grocery",
		Long:  "Remove every grocery whose expiry date is today or earlier. Removal is permanent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, false)
			if err != nil {
				return err
			}
			removed := svc.RemoveExpired()
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSweep(removed))
			if dryRun || len(removed) == 0 {
				return nil
			}
			return svc.Save()
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without saving")
	return cmd
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the inventory save history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.openService(cmd, true)
			if err != nil {
				return err
			}
			entries, err := svc.History()
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}
}
