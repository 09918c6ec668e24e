// Package server provides the HTTP surface of the application.
//
// APIServer exposes the JSON API consumed by chat clients:
//   - POST /api/v1/chat: run one assistant turn over a user message
//   - POST /api/v1/book: create a calendar event
//   - GET  /api/v1/available: list events in a time window
//
// HealthChecker serves liveness and readiness probes, and MetricsServer
// exposes Prometheus metrics on a dedicated port so operational data stays
// off the application listener.
package server
