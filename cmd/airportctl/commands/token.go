package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userID int64
		staff  bool
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT",
		Long: `Print a signed bearer token for the given user.

Examples:
  airportctl token --user 7
  airportctl token --user 1 --staff --ttl 24h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errors.New("--user must be a positive id")
			}
			if secret == "" || ttl == 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if secret == "" {
					secret = cfg.Auth.JWTSecret
				}
				if ttl == 0 {
					ttl = cfg.Auth.TokenTTL()
				}
			}

			token, expires, err := auth.NewTokens(secret, ttl).Issue(domain.Principal{UserID: userID, IsStaff: staff})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expires.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id placed in the sub claim")
	cmd.Flags().BoolVar(&staff, "staff", false, "grant staff rights")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to auth.jwt_secret)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to auth.token_ttl_minutes)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
