// Package logger provides structured logging with optional Sentry integration.
//
// It builds on the standard library's log/slog: New returns a JSON logger
// writing to stdout, and NewWithSentry fans records out to both stdout and
// Sentry when a DSN is configured. With an empty DSN the Sentry variant
// degrades to stdout-only logging, so the same code path works in development
// and production.
//
// Components that accept a *slog.Logger should tolerate nil by falling back
// to NewNope, which discards all output.
package logger
