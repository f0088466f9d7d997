// Package convert turns a typeset math content tree into a KaTeX parse tree.
//
// A Converter walks the content tree once, dispatching every element to the
// converter for its kind. Unsupported style attributes degrade to warnings
// collected on the Output. Unsupported elements abort the whole conversion
// with an *Error.
package convert

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

const tracerName = "github.com/Sumatoshi-tech/typkat/pkg/convert"

// Conversion statuses reported to a Recorder.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder receives one observation per top-level conversion.
type Recorder interface {
	RecordConversion(ctx context.Context, status string, duration time.Duration, nodes int, warnings []string)
}

// Output is the result of a successful conversion.
type Output struct {
	Result   katex.Result
	Warnings []Warning
	// Nodes is the number of KaTeX nodes in Result, nested nodes included.
	Nodes int
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger warnings are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStyles sets the styles a conversion starts from.
func WithStyles(styles Styles) Option {
	return func(c *Converter) {
		c.styles = styles
	}
}

// WithTracer sets the tracer conversions are traced with.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Converter) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithMetrics sets the recorder conversions are reported to.
func WithMetrics(recorder Recorder) Option {
	return func(c *Converter) {
		c.metrics = recorder
	}
}

// Converter converts content trees. It holds no per-conversion state and is
// safe for concurrent use.
type Converter struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics Recorder
	styles  Styles
}

// New returns a Converter with default styles, a discarding logger and the
// global tracer.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
		styles: DefaultStyles(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Styles returns the styles conversions start from.
func (c *Converter) Styles() Styles {
	return c.styles
}

// Convert converts root. On failure no partial tree is returned and the error
// is an *Error naming the element that could not be converted.
func (c *Converter) Convert(ctx context.Context, root content.Elem) (*Output, error) {
	ctx, span := c.tracer.Start(ctx, "typkat.convert",
		trace.WithAttributes(attribute.String("root.kind", string(kindOf(root)))))
	defer span.End()

	start := time.Now()
	conv := &conversion{ctx: ctx, logger: c.logger}

	result, err := conv.visit(c.styles, root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "conversion failed")
		c.record(ctx, StatusError, time.Since(start), 0, conv.warnings)

		return nil, err
	}

	nodes := 0
	for _, node := range result.AsSequence() {
		nodes += katex.Count(node)
	}

	span.SetAttributes(
		attribute.Int("warnings", len(conv.warnings)),
		attribute.Int("nodes", nodes),
	)
	c.record(ctx, StatusOK, time.Since(start), nodes, conv.warnings)

	return &Output{Result: result, Warnings: conv.warnings, Nodes: nodes}, nil
}

func (c *Converter) record(ctx context.Context, status string, duration time.Duration, nodes int, warnings []Warning) {
	if c.metrics == nil {
		return
	}

	kinds := make([]string, 0, len(warnings))
	for _, w := range warnings {
		kinds = append(kinds, string(w.Kind))
	}

	c.metrics.RecordConversion(ctx, status, duration, nodes, kinds)
}

// Convert converts root with a default Converter and returns the tree alone.
func Convert(root content.Elem) (katex.Result, error) {
	out, err := New().Convert(context.Background(), root)
	if err != nil {
		return katex.Result{}, err
	}

	return out.Result, nil
}

// conversion is the state of one Convert call.
type conversion struct {
	ctx      context.Context //nolint:containedctx // Scoped to a single conversion, used for log records.
	logger   *slog.Logger
	warnings []Warning
}
