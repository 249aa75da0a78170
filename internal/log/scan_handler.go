package log

import (
	"context"
	"log/slog"
)

// scanKey is the context key under which scan identity is stored.
type scanKey struct{}

// scanIdentity is the value attached to a context by WithScan.
type scanIdentity struct {
	instrument string
	gpsTime    float64
}

// WithScan returns a context carrying the identity of the scan being
// rendered. Records logged through a ScanHandler with this context are
// stamped with "instrument" and "gps_time" attributes.
func WithScan(ctx context.Context, instrument string, gpsTime float64) context.Context {
	return context.WithValue(ctx, scanKey{}, scanIdentity{
		instrument: instrument,
		gpsTime:    gpsTime,
	})
}

// ScanHandler wraps an slog.Handler to stamp records with scan identity.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites keep using plain slog without threading scan arguments
type ScanHandler struct {
	// handler is the underlying slog handler that receives stamped records.
	handler slog.Handler
}

// NewScanHandler creates a new ScanHandler wrapping the given handler.
// If handler is nil, the returned ScanHandler uses slog.Default().Handler().
func NewScanHandler(handler slog.Handler) *ScanHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ScanHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *ScanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle stamps the record with the scan identity from the context, if
// any, and passes it to the underlying handler.
func (h *ScanHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctx.Value(scanKey{}).(scanIdentity); ok {
		r = r.Clone()
		r.AddAttrs(
			slog.String("instrument", id.instrument),
			slog.Float64("gps_time", id.gpsTime),
		)
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new ScanHandler whose underlying handler has the
// given attributes.
func (h *ScanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ScanHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ScanHandler whose underlying handler has the
// given group.
func (h *ScanHandler) WithGroup(name string) slog.Handler {
	return &ScanHandler{handler: h.handler.WithGroup(name)}
}
