// Package server provides the MCP server context, the dedicated metrics
// server, and health check endpoints for the meetfinder application.
//
// # Key Components
//
// ServerContext manages Google Calendar API clients with lazy initialization
// and caching. It supports multiple accounts using disk-stored OAuth tokens,
// and carries the metrics recorder and audit logger used by tool handlers.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, isolated
// from MCP traffic, together with Kubernetes-style health probes served by
// HealthChecker (/healthz, /readyz, /healthz/detailed).
package server
