package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "POST", "/api/v1/chat", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "GET", "/api/v1/available", 500, 50*time.Millisecond)
}

func TestMetrics_RecordChatTurn(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordChatTurn(ctx, "book", StatusSuccess)
	metrics.RecordChatTurn(ctx, "check_availability", StatusSuccess)
	metrics.RecordChatTurn(ctx, "unknown", StatusError)
}

func TestMetrics_RecordParseFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordParseFailure(ctx)
}

func TestMetrics_RecordCalendarOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordCalendarOperation(ctx, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordCalendarOperation(ctx, "create", StatusError, 500*time.Millisecond)
}

func TestMetrics_NoopWhenUninitialized(t *testing.T) {
	ctx := context.Background()

	// A zero-value Metrics is the no-op recorder used when
	// instrumentation is disabled. Every method must be safe to call.
	m := &Metrics{}

	m.RecordHTTPRequest(ctx, "GET", "/healthz", 200, time.Millisecond)
	m.RecordChatTurn(ctx, "book", StatusSuccess)
	m.RecordParseFailure(ctx)
	m.RecordCalendarOperation(ctx, "list", StatusSuccess, time.Millisecond)
}
