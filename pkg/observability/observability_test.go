package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/convert"
	"github.com/Sumatoshi-tech/typkat/pkg/observability"
)

var _ convert.Recorder = (*observability.ConversionMetrics)(nil)

func setupTestMeter(t *testing.T) (*observability.ConversionMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := observability.NewConversionMetrics(mp.Meter("test"))
	require.NoError(t, err)

	return metrics, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for idx := range rm.ScopeMetrics {
		for midx := range rm.ScopeMetrics[idx].Metrics {
			if rm.ScopeMetrics[idx].Metrics[midx].Name == name {
				return &rm.ScopeMetrics[idx].Metrics[midx]
			}
		}
	}

	return nil
}

func counterTotal(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	require.NotNil(t, m)

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

func TestConversionMetrics_RecordConversion(t *testing.T) {
	t.Parallel()

	metrics, reader := setupTestMeter(t)
	ctx := context.Background()

	metrics.RecordConversion(ctx, convert.StatusOK, time.Millisecond, 6, []string{"attach", "styled"})
	metrics.RecordConversion(ctx, convert.StatusError, time.Millisecond, 0, nil)

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(2), counterTotal(t, findMetric(rm, "typkat.conversions.total")))
	assert.Equal(t, int64(2), counterTotal(t, findMetric(rm, "typkat.warnings.total")))
	assert.Equal(t, int64(6), counterTotal(t, findMetric(rm, "typkat.nodes.emitted")))
	assert.NotNil(t, findMetric(rm, "typkat.conversion.duration.seconds"))
}

func TestConversionMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var metrics *observability.ConversionMetrics

	assert.NotPanics(t, func() {
		metrics.RecordConversion(context.Background(), convert.StatusOK, 0, 1, nil)
	})
}

func TestConversionMetrics_FromConverter(t *testing.T) {
	t.Parallel()

	metrics, reader := setupTestMeter(t)
	conv := convert.New(convert.WithMetrics(metrics))

	_, err := conv.Convert(context.Background(), &content.Attach{Base: content.Str("x"), TL: content.Str("a")})
	require.NoError(t, err)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(1), counterTotal(t, findMetric(rm, "typkat.warnings.total")))
	assert.Equal(t, int64(2), counterTotal(t, findMetric(rm, "typkat.nodes.emitted")))
}

func TestPrometheusSink_WriteTextfile(t *testing.T) {
	t.Parallel()

	sink, err := observability.NewPrometheusSink()
	require.NoError(t, err)

	t.Cleanup(func() { _ = sink.Shutdown(context.Background()) })

	metrics, err := observability.NewConversionMetrics(sink.Meter())
	require.NoError(t, err)

	metrics.RecordConversion(context.Background(), convert.StatusOK, time.Millisecond, 3, []string{"cancel"})

	path := filepath.Join(t.TempDir(), "typkat.prom")
	require.NoError(t, sink.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "typkat_conversions")
	assert.Contains(t, body, "typkat_warnings")
	assert.Contains(t, body, `kind="cancel"`)
	assert.Contains(t, body, "target_info")
}

func TestConversionHandler_InjectsTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(observability.NewConversionHandler(inner, "test-svc", "1.2.3", observability.ModeBatch))

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	logger.InfoContext(trace.ContextWithSpanContext(context.Background(), sc), "converted", "nodes", 4)

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", record["trace_id"])
	assert.Equal(t, "0102030405060708", record["span_id"])
	assert.Equal(t, "test-svc", record["service"])
	assert.Equal(t, "1.2.3", record["version"])
	assert.Equal(t, "batch", record["mode"])
}

func TestConversionHandler_NoTraceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := observability.DefaultConfig()
	cfg.LogOutput = &buf
	cfg.LogJSON = true

	observability.NewLogger(cfg).Info("hello")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "trace_id")
	assert.NotContains(t, record, "version")
	assert.Equal(t, "typkat", record["service"])
	assert.Equal(t, "cli", record["mode"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := observability.DefaultConfig()
	cfg.LogOutput = &buf
	cfg.LogLevel = slog.LevelWarn

	logger := observability.NewLogger(cfg)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := observability.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = observability.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = observability.ParseLevel("loud")
	require.Error(t, err)
}

func TestInit_NoEndpointIsNoop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := observability.DefaultConfig()
	cfg.LogOutput = &buf

	providers, err := observability.Init(cfg)
	require.NoError(t, err)
	require.NotNil(t, providers.Tracer)
	require.NotNil(t, providers.Meter)
	require.NotNil(t, providers.Logger)

	_, span := providers.Tracer.Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
}

func TestConversionHandler_DocumentLabel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := observability.DefaultConfig()
	cfg.LogOutput = &buf
	cfg.LogJSON = true
	cfg.Mode = observability.ModeBatch

	conv := convert.New(convert.WithLogger(observability.NewLogger(cfg)))
	ctx := observability.WithDocument(context.Background(), "formula.yaml")

	_, err := conv.Convert(ctx, &content.Attach{Base: content.Str("x"), TL: content.Str("a")})
	require.NoError(t, err)

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "formula.yaml", record["document"])
	assert.Equal(t, "attach", record["kind"])
	assert.Equal(t, "tl", record["attribute"])
	assert.Equal(t, "batch", record["mode"])
}

func TestDocumentFrom(t *testing.T) {
	t.Parallel()

	_, ok := observability.DocumentFrom(context.Background())
	assert.False(t, ok)

	_, ok = observability.DocumentFrom(observability.WithDocument(context.Background(), ""))
	assert.False(t, ok)

	label, ok := observability.DocumentFrom(observability.WithDocument(context.Background(), "stdin"))
	assert.True(t, ok)
	assert.Equal(t, "stdin", label)
}
