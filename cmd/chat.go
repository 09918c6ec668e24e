package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tailortalk/tailortalk/internal/assistant"
	"github.com/tailortalk/tailortalk/internal/calendar"
)

func newChatCmd() *cobra.Command {
	var (
		apiURL     string
		calendarID string
		timezone   string
		debugMode  bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant in the terminal",
		Long: `Start an interactive chat session. Type requests like:

  Book a meeting next Tuesday at 4 PM
  What's my availability this week?
  Schedule something this Friday

By default the session talks to Google Calendar directly using the cached
OAuth token (run the auth command first). With --api-url the session talks
to a remote tailortalk server instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debugMode)
			loc, err := resolveLocation(timezone)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if apiURL == "" {
				apiURL = os.Getenv("TAILORTALK_API_URL")
			}

			var service assistant.CalendarService
			if apiURL != "" {
				service = calendar.NewRestClient(apiURL)
			} else {
				client, err := calendar.NewClient(ctx, calendarID)
				if err != nil {
					return fmt.Errorf("failed to create calendar client (run 'tailortalk auth' first): %w", err)
				}
				service = client
			}

			bot := assistant.New(assistant.Config{
				Calendar: service,
				Location: loc,
				Logger:   logger,
			})

			return runChatLoop(ctx, bot)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "Base URL of a remote tailortalk server (e.g. http://localhost:8000). Can also use TAILORTALK_API_URL env var.")
	cmd.Flags().StringVar(&calendarID, "calendar-id", "", "Calendar to operate on (default: primary)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for date resolution (default: Asia/Kolkata). Can also use TAILORTALK_TIMEZONE env var.")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	return cmd
}

// runChatLoop reads user messages from stdin until EOF or an exit word.
func runChatLoop(ctx context.Context, bot *assistant.Assistant) error {
	fmt.Println("TailorTalk: Book appointments and check your schedule.")
	fmt.Println(`Type "help" for examples, "quit" to leave.`)
	fmt.Println()

	var session assistant.Session
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		// Turn errors are already expressed as assistant replies.
		replies, _ := bot.HandleMessage(ctx, &session, input)
		for _, reply := range replies {
			fmt.Println(reply.Content)
		}
		fmt.Println()
	}

	return scanner.Err()
}
