package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/config"
	"github.com/abdidvp/stockroom/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		inventoryFile string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Create a " + config.FileName + " with the default settings. Every setting can also be overridden with a STOCKROOM_* environment variable.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			if inventoryFile != "" {
				cfg.InventoryFile = inventoryFile
			}
			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&inventoryFile, "inventory-file", "", "Inventory file to record in the config")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}

func generateConfig(cfg domain.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	header := "# stockroom configuration\n" +
		"# Environment overrides: STOCKROOM_INVENTORY_FILE, STOCKROOM_LOG_LEVEL, ...\n\n"
	return append([]byte(header), body...), nil
}
