// Package instrumentation provides OpenTelemetry-based observability for
// TailorTalk: metrics for chat turns, parse outcomes, calendar-provider
// operations and HTTP traffic, and optional distributed tracing.
//
// Metrics are exported through Prometheus by default (scraped from the
// dedicated metrics server), or through OTLP/stdout exporters selected via
// environment configuration. Tracing is disabled unless an exporter is
// configured.
//
// Typical wiring:
//
//	config := instrumentation.DefaultConfig()
//	provider, err := instrumentation.NewProvider(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer provider.Shutdown(ctx)
//
//	metrics := provider.Metrics()
//	metrics.RecordChatTurn(ctx, "book", instrumentation.StatusSuccess)
package instrumentation
