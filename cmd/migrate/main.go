package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/frontier/backend/internal/config"
	"github.com/frontier/backend/internal/logging"
	"github.com/frontier/backend/internal/repository"
	"github.com/spf13/cobra"
)

func main() {
	if err := config.LoadDotEnv(".env", "../.env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Fatal("migration failed", "error", err)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		Long: `Apply the embedded schema migrations to the configured store.

Without a subcommand all pending migrations are applied.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context(), configFile, repository.MigrateUp)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml)")

	sub := func(use, short string, commands ...string) *cobra.Command {
		return &cobra.Command{
			Use:          use,
			Short:        short,
			Args:         cobra.NoArgs,
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(cmd.Context(), configFile, commands...)
			},
		}
	}
	root.AddCommand(
		sub("up", "apply all pending migrations", repository.MigrateUp),
		sub("down", "roll back the most recent migration", repository.MigrateDown),
		sub("status", "print the state of every migration", repository.MigrateStatus),
		sub("reset", "roll back every migration", repository.MigrateReset),
		sub("fresh", "roll back every migration, then apply them all", repository.MigrateReset, repository.MigrateUp),
	)
	return root
}

func migrate(ctx context.Context, configFile string, commands ...string) error {
	cfg, err := config.Load(config.NewViper(), configFile)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	opts := cfg.StoreOptions()
	opts.AutoMigrate = false
	store, err := repository.OpenStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, c := range commands {
		if err := store.Migrate(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
