package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/meetfinder/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access for an account",
		Long: `Run the Google OAuth flow and store the resulting token for the given
account. Tokens are kept per account, so several Google accounts can be
authorized side by side and selected with --account on later commands.

The OAuth client credentials are read from the GOOGLE_CLIENT_ID and
GOOGLE_CLIENT_SECRET environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Move a pre-multi-account token into the per-account layout.
			if err := google.MigrateDefaultToken(); err != nil {
				return fmt.Errorf("failed to migrate legacy token: %w", err)
			}

			if google.HasTokenForAccount(account) {
				fmt.Printf("Account '%s' is already authorized. Continuing will replace the stored token.\n\n", account)
			}

			fmt.Printf(`To authorize Google Calendar access for account "%s":

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant read access to Google Calendar
4. Copy the authorization code

`, account, google.GetAuthURLForAccount(account))

			fmt.Print("Enter authorization code: ")
			reader := bufio.NewReader(os.Stdin)
			authCode, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			authCode = strings.TrimSpace(authCode)
			if authCode == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.SaveTokenForAccount(context.Background(), account, authCode); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			fmt.Printf("Authorization successful for account '%s'. Token saved.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")

	return cmd
}
