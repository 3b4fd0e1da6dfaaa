package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/config"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/security/jwt"
)

func newTokenCmd(cfg config.Config) *cobra.Command {
	var (
		subject string
		admin   bool
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator JWT signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				ttl = time.Duration(cfg.JWTTTLMinutes) * time.Minute
			}
			tok, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl).Generate(subject, admin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().BoolVar(&admin, "admin", true, "grant access to /admin routes")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_TTL_MINUTES)")
	return cmd
}
