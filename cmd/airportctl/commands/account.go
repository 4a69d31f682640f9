package commands

import (
	"fmt"

	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/accounting"
	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	var useLock bool

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Run one flying-hours accounting pass",
		Long: `Credit the duration of every finished, unaccounted flight to its crew.

Safe to run repeatedly: each flight is credited at most once.

Examples:
  airportctl account           # run a pass guarded by the Redis run lock
  airportctl account --lock=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			var opts []accounting.AccountingServiceOption
			if useLock {
				redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.FlightsCacheTTLDuration())
				defer redisCache.Close()
				opts = append(opts, accounting.WithLocker(redisCache, cfg.Worker.AccountingLockTTL()))
			}
			svc := accounting.NewAccountingService(
				repository.NewTxManager(pool),
				repository.NewFlightRepository(pool),
				repository.NewCrewRepository(pool),
				opts...,
			)

			res, err := svc.RunPass(cmd.Context())
			if err != nil {
				return err
			}
			if res.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "skipped: another pass is running")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accounted %d of %d flights (%.2f hours), %d not arrived, %d failed\n",
				res.Accounted, res.Pending, res.Hours, res.NotArrived, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d flights failed", res.Failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useLock, "lock", true, "take the Redis run lock before the pass")
	return cmd
}
