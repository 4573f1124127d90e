package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"karir-nusantara/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userID  string
		email   string
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := strings.TrimSpace(os.Getenv("JWT_ACCESS_SECRET"))
			if secret == "" {
				return fmt.Errorf("JWT_ACCESS_SECRET is not set")
			}

			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
				id = parsed
			}

			tok, err := jwt.NewHMACService(secret, expires).GenerateAccessToken(id, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id (random when empty)")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().DurationVar(&expires, "expires", time.Hour, "Token lifetime")
	return cmd
}
