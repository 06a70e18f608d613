// Package cli wires the pomodesk command tree: the root command runs the
// TUI and the subcommands inspect stored state and configuration.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/pomodesk/internal/config"
	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/version"
)

type options struct {
	configPath string
	dbPath     string
	debug      bool
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pomodesk",
		Short:         "Pomodoro timer with tasks and notes in your terminal",
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is the user config dir)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "sqlite database path, overrides the config")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write a debug log")

	root.AddCommand(newStatsCmd(opts), newConfigCmd(opts), newVersionCmd())
	return root
}

func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (o *options) loader() (*config.Loader, config.Config, error) {
	l, err := config.NewLoader(o.configPath)
	if err != nil {
		return nil, config.Default(), err
	}
	cfg, err := l.Load()
	if err != nil {
		return nil, cfg, err
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	return l, cfg, nil
}

// openStore opens the sqlite repository behind a Store. The returned func
// closes the database.
func openStore(cfg config.Config) (*storage.Store, func(), error) {
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	closeFn := func() {
		if err := repo.Close(); err != nil {
			debug.Log("cli: close store: %v", err)
		}
	}
	return storage.NewStore(repo), closeFn, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
		},
	}
}
