// Command devtoken mints HS256 access tokens for local development and
// testing against a server sharing the same secret. Production tokens
// come from the external identity provider, not from this tool.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoganov/ancora/internal/server/auth"
)

func main() {

	var (
		userID string
		secret string
		ttl    time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "devtoken",
		Short: "Mint a development access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("missing --user")
			}

			token, err := auth.GenerateToken(userID, []byte(secret), ttl)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			fmt.Println(token)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&userID, "user", "u", "", "user ID to embed in the token")
	rootCmd.Flags().StringVarP(&secret, "secret", "s", "secretKey", "HMAC secret shared with the server")
	rootCmd.Flags().DurationVarP(&ttl, "ttl", "t", 24*time.Hour, "token validity")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
