package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tailortalk/tailortalk/internal/assistant"
	"github.com/tailortalk/tailortalk/internal/calendar"
	"github.com/tailortalk/tailortalk/internal/instrumentation"
	"github.com/tailortalk/tailortalk/internal/server"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		httpAddr       string
		calendarID     string
		timezone       string
		debugMode      bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server that chat clients talk to.

Endpoints:
  POST /api/v1/chat       Run one assistant turn over a user message
  POST /api/v1/book       Create a calendar event
  GET  /api/v1/available  List events in a time window
  GET  /healthz, /readyz  Health probes

The server needs a cached Google OAuth token (run the auth command first).
Prometheus metrics are served on a dedicated port unless disabled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(httpAddr, calendarID, timezone, debugMode, metricsConfig)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http-addr", server.DefaultAPIAddr, "HTTP server address. Can also use TAILORTALK_HTTP_ADDR env var.")
	cmd.Flags().StringVar(&calendarID, "calendar-id", "", "Calendar to operate on (default: primary)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for date resolution (default: Asia/Kolkata). Can also use TAILORTALK_TIMEZONE env var.")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(httpAddr, calendarID, timezone string, debugMode bool, metricsConfig MetricsConfig) error {
	logger := newLogger(debugMode)

	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load config from environment if not set via flags
	if httpAddr == server.DefaultAPIAddr {
		if addr := os.Getenv("TAILORTALK_HTTP_ADDR"); addr != "" {
			httpAddr = addr
		}
	}
	if !metricsConfig.Enabled && os.Getenv("METRICS_ENABLED") == "true" {
		metricsConfig.Enabled = true
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	loc, err := resolveLocation(timezone)
	if err != nil {
		return err
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Error("error during instrumentation shutdown", "error", err)
		}
	}()

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(metricsConfig.Addr, provider)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Create the calendar client and assistant
	client, err := calendar.NewClient(shutdownCtx, calendarID)
	if err != nil {
		return fmt.Errorf("failed to create calendar client (run 'tailortalk auth' first): %w", err)
	}

	bot := assistant.New(assistant.Config{
		Calendar: client,
		Location: loc,
		Logger:   logger,
		Metrics:  provider.Metrics(),
	})

	apiServer := server.NewAPIServer(server.APIConfig{
		Addr:      httpAddr,
		Assistant: bot,
		Calendar:  client,
		Logger:    logger,
		Metrics:   provider.Metrics(),
	})

	apiErr := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			apiErr <- err
		}
		close(apiErr)
	}()

	logger.Info("tailortalk serving",
		"addr", httpAddr,
		"timezone", loc.String(),
		"calendar", client.CalendarID(),
	)

	select {
	case <-shutdownCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-apiErr:
		if err != nil {
			return fmt.Errorf("API server failed: %w", err)
		}
	}

	// Drain both servers with a bounded timeout
	drainCtx, drainCancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer drainCancel()

	if err := apiServer.Shutdown(drainCtx); err != nil {
		logger.Error("error during API server shutdown", "error", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(drainCtx); err != nil {
			logger.Error("error during metrics server shutdown", "error", err)
		}
	}

	return nil
}
