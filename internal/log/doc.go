// Package log provides structured-logging helpers for the report engine.
//
// The engine renders one scan per invocation, and nearly every log line
// is meaningless without knowing which scan it belongs to. ScanHandler
// wraps any slog.Handler and stamps each record with the instrument and
// GPS time carried in the context, so call sites don't have to repeat
// them on every logging call.
package log
