// Package commands implements airportctl, the operations CLI.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "airportctl",
		Short: "Operations tool for the airport booking service",
		Long: `airportctl runs maintenance tasks against the airport booking service:

  migrate  - apply pending schema migrations
  account  - run one flying-hours accounting pass (for external cron)
  token    - mint a development JWT`,
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newAccountCmd(), newTokenCmd())
	return root
}

// connect loads the configuration and opens a Postgres pool.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(cfg.Log.NewLogger())

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}
	return cfg, pool, nil
}
