package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID  = "trace_id"
	attrSpanID   = "span_id"
	attrService  = "service"
	attrVersion  = "version"
	attrMode     = "mode"
	attrDocument = "document"
)

type documentKey struct{}

// WithDocument returns a context naming the source document being converted.
// Records logged with it carry a "document" attribute, so warnings from
// concurrent conversions can be told apart.
func WithDocument(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, documentKey{}, label)
}

// DocumentFrom returns the document label set by WithDocument, if any.
func DocumentFrom(ctx context.Context) (string, bool) {
	label, ok := ctx.Value(documentKey{}).(string)

	return label, ok && label != ""
}

// ConversionHandler is an [slog.Handler] that adds the conversion context to
// every record: the source document label and the trace_id/span_id of the
// active span. Service metadata is attached once at construction.
type ConversionHandler struct {
	inner slog.Handler
}

// NewConversionHandler wraps inner with service metadata and per-record
// conversion context.
func NewConversionHandler(inner slog.Handler, service, version string, appMode AppMode) *ConversionHandler {
	attrs := []slog.Attr{
		slog.String(attrService, service),
		slog.String(attrMode, string(appMode)),
	}

	if version != "" {
		attrs = append(attrs, slog.String(attrVersion, version))
	}

	return &ConversionHandler{inner: inner.WithAttrs(attrs)}
}

// Enabled delegates to the inner handler.
func (h *ConversionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle adds the document label and span identifiers found in ctx.
func (h *ConversionHandler) Handle(ctx context.Context, record slog.Record) error {
	if label, ok := DocumentFrom(ctx); ok {
		record.AddAttrs(slog.String(attrDocument, label))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	err := h.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("conversion log handler: %w", err)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *ConversionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConversionHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *ConversionHandler) WithGroup(name string) slog.Handler {
	return &ConversionHandler{inner: h.inner.WithGroup(name)}
}
