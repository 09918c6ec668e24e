package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tailortalk/tailortalk/internal/google"
)

func newAuthCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to your Google Calendar",
		Long: `Run the Google OAuth flow and cache the resulting token locally.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET in the environment. The
command prints an authorization URL; open it in a browser, grant calendar
access, and paste the displayed code back into the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasToken() && !force {
				fmt.Println("A cached token already exists. Use --force to replace it.")
				return nil
			}

			fmt.Println("Open the following URL in a browser and authorize access:")
			fmt.Println()
			fmt.Println("  " + google.GetAuthURL())
			fmt.Println()
			fmt.Print("Paste the authorization code here: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.SaveToken(context.Background(), code); err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			fmt.Println("Token saved. You can now use the chat and serve commands.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing cached token")

	return cmd
}
