package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/config"
	"github.com/abdidvp/stockroom/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/stockroom/internal/adapters/outbound/history"
	"github.com/abdidvp/stockroom/internal/adapters/outbound/jsonstore"
	"github.com/abdidvp/stockroom/internal/adapters/outbound/logging"
	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	file       string
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "stockroom",
		Short:         "Retail inventory manager",
		Long:          "stockroom tracks electronics, groceries and clothing: stock levels, prices, expiry dates and total inventory value, persisted as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "Inventory file (overrides inventory_file from config)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (defaults to ./"+config.FileName+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newSellCmd(opts))
	cmd.AddCommand(newRestockCmd(opts))
	cmd.AddCommand(newRemoveCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newValueCmd(opts))
	cmd.AddCommand(newSweepCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newShellCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
	}
	return err
}

// loadConfig resolves the effective configuration from the config file,
// the environment and the persistent flags.
func (o *rootOptions) loadConfig() (domain.Config, error) {
	loader := config.New()
	var (
		cfg domain.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = loader.LoadFile(o.configPath)
	} else {
		cfg, err = loader.Load(".")
	}
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if o.file != "" {
		cfg.InventoryFile = o.file
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// openService wires the inventory service and loads the inventory file.
// With bestEffort a corrupt file is logged and the inventory starts empty.
func (o *rootOptions) openService(cmd *cobra.Command, bestEffort bool) (*application.InventoryService, domain.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, domain.Config{}, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, domain.Config{}, err
	}

	svc := application.NewInventoryService(cfg, jsonstore.New(),
		application.WithLogger(logger),
		application.WithHistory(history.New(), gitinfo.New()),
	)
	if err := svc.Open(bestEffort); err != nil {
		return nil, domain.Config{}, err
	}
	return svc, cfg, nil
}

func newLogger(w io.Writer, cfg domain.Config) (*zap.Logger, error) {
	logger, err := logging.New(w, cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return logger, nil
}

// errorLine formats an error the way the interactive menu always has:
// inventory errors are tagged separately from everything else.
func errorLine(err error) string {
	if domain.IsInventoryError(err) {
		return "Inventory Error: " + err.Error()
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return "File Error: " + err.Error()
	}
	return "Error: " + err.Error()
}
