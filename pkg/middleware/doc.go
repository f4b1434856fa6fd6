// Package middleware provides net/http middleware for shinyWidgets
// servers: Prometheus request metrics and OpenTelemetry tracing. Both are
// chi-compatible (func(http.Handler) http.Handler).
package middleware
