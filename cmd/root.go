package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the tailortalk application
var rootCmd = &cobra.Command{
	Use:   "tailortalk",
	Short: "Book appointments and check availability with a conversational assistant",
	Long: `tailortalk is a conversational calendar assistant. Ask it in plain text to
book a meeting ("Book a meeting next Tuesday at 4 PM") or to check your
availability ("What's my availability this week?") and it talks to your
Google Calendar for you.

It can run as:
  - An interactive terminal chat session (default)
  - An HTTP API server for remote chat clients`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tailortalk version %s\n" .Version}}`)

	// If no subcommand is provided, run the chat command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "chat")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
