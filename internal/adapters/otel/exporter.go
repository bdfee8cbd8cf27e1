package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/aidash/internal/logger"
	"github.com/emiliopalmerini/aidash/internal/ports"
)

const (
	serviceName    = "aidash"
	serviceVersion = "1.0.0"
)

// ErrDisabled is returned by NewExporter when export is not configured.
var ErrDisabled = errors.New("OTEL exporter is disabled or endpoint not configured")

// Exporter exports render-pass metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	rendersTotal metric.Int64Counter
	tableRows    metric.Int64Histogram
	durationHist metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

// Open returns an OTLP exporter, or a no-op one when export is disabled or
// the exporter cannot be built. The dashboard never fails because of it.
func Open(ctx context.Context, cfg Config) ports.MetricsExporter {
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		if !errors.Is(err, ErrDisabled) {
			logger.Named("otel").Warn(ctx, "metrics export disabled", logger.Error(err))
		}
		return NewNoOpExporter()
	}
	return exp
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	rendersTotal, err := meter.Int64Counter(
		"aidash_renders_total",
		metric.WithDescription("Total number of render passes"),
		metric.WithUnit("{render}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating renders counter: %w", err)
	}

	tableRows, err := meter.Int64Histogram(
		"aidash_table_rows",
		metric.WithDescription("Rows loaded per table per render pass"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rows histogram: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"aidash_render_duration_seconds",
		metric.WithDescription("Render pass duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:     provider,
		rendersTotal: rendersTotal,
		tableRows:    tableRows,
		durationHist: durationHist,
	}, nil
}

// ExportRenderMetrics records one render pass.
func (e *Exporter) ExportRenderMetrics(ctx context.Context, m *ports.RenderMetrics) error {
	opt := metric.WithAttributes(
		attribute.String("surface", m.Surface),
		attribute.String("outcome", m.Outcome),
	)

	e.rendersTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, m.Duration.Seconds(), opt)

	if m.Outcome == "ok" {
		e.tableRows.Record(ctx, int64(m.ResponseRows), metric.WithAttributes(attribute.String("table", "responses")))
		e.tableRows.Record(ctx, int64(m.CapabilityRows), metric.WithAttributes(attribute.String("table", "capabilities")))
	}

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
