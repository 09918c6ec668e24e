// Package cmd implements the command-line interface for tailortalk.
//
// This package provides the following commands:
//   - chat: Interactive terminal chat session with the assistant
//   - serve: Start the HTTP API server
//   - auth: Run the Google OAuth token bootstrap
//   - version: Display version information
//
// The chat command is the default command when no subcommand is specified.
package cmd
