package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricConversionsTotal   = "typkat.conversions.total"
	metricConversionDuration = "typkat.conversion.duration.seconds"
	metricWarningsTotal      = "typkat.warnings.total"
	metricNodesEmitted       = "typkat.nodes.emitted"

	attrStatus = "status"
	attrKind   = "kind"
)

// durationBucketBoundaries covers 10µs to 1s; a conversion is linear in the
// size of the tree.
var durationBucketBoundaries = []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// ConversionMetrics holds the OTel instruments for conversions.
type ConversionMetrics struct {
	conversions metric.Int64Counter
	duration    metric.Float64Histogram
	warnings    metric.Int64Counter
	nodes       metric.Int64Counter
}

// NewConversionMetrics creates conversion instruments from the given meter.
func NewConversionMetrics(mt metric.Meter) (*ConversionMetrics, error) {
	conversions, err := mt.Int64Counter(metricConversionsTotal,
		metric.WithDescription("Total number of conversions by status"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricConversionsTotal, err)
	}

	duration, err := mt.Float64Histogram(metricConversionDuration,
		metric.WithDescription("Conversion duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricConversionDuration, err)
	}

	warnings, err := mt.Int64Counter(metricWarningsTotal,
		metric.WithDescription("Dropped attributes by element kind"),
		metric.WithUnit("{warning}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricWarningsTotal, err)
	}

	nodes, err := mt.Int64Counter(metricNodesEmitted,
		metric.WithDescription("KaTeX nodes produced by successful conversions"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricNodesEmitted, err)
	}

	return &ConversionMetrics{
		conversions: conversions,
		duration:    duration,
		warnings:    warnings,
		nodes:       nodes,
	}, nil
}

// RecordConversion records one completed conversion. warnings holds the
// element kind of every warning raised. Safe to call on a nil receiver (no-op).
func (cm *ConversionMetrics) RecordConversion(
	ctx context.Context, status string, duration time.Duration, nodes int, warnings []string,
) {
	if cm == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String(attrStatus, status))

	cm.conversions.Add(ctx, 1, attrs)
	cm.duration.Record(ctx, duration.Seconds(), attrs)
	cm.nodes.Add(ctx, int64(nodes))

	for _, kind := range warnings {
		cm.warnings.Add(ctx, 1, metric.WithAttributes(attribute.String(attrKind, kind)))
	}
}
