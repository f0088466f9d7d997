package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// PrometheusSink collects OTel instruments into a private Prometheus registry
// so a batch run can dump them in text exposition format when it ends.
type PrometheusSink struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
}

// NewPrometheusSink creates a sink with its own registry. Each call is
// independent, so several sinks never conflict over collectors.
func NewPrometheusSink() (*PrometheusSink, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &PrometheusSink{
		registry: registry,
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
	}, nil
}

// Meter returns a meter whose instruments are exported by the sink.
func (s *PrometheusSink) Meter() metric.Meter {
	return s.provider.Meter(instrumentationName)
}

// Registry returns the registry the sink exports to.
func (s *PrometheusSink) Registry() *prometheus.Registry {
	return s.registry
}

// WriteTextfile writes every collected metric to path in Prometheus text
// format. The file is replaced atomically.
func (s *PrometheusSink) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, s.registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}

// Shutdown releases the sink's meter provider.
func (s *PrometheusSink) Shutdown(ctx context.Context) error {
	err := s.provider.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutdown prometheus sink: %w", err)
	}

	return nil
}
