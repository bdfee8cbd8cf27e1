package ports

import (
	"context"
	"time"
)

// MetricsExporter exports render-pass metrics to an external observability system.
type MetricsExporter interface {
	// ExportRenderMetrics records one completed (or failed) render pass.
	ExportRenderMetrics(ctx context.Context, m *RenderMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// RenderMetrics describes a single load-and-render pass over the two tables.
type RenderMetrics struct {
	SessionID string
	Surface   string // web, render, check
	Outcome   string // ok, load_error, schema_error

	ResponseRows      int
	CapabilityRows    int
	CapabilityColumns int
	ChartsRendered    int

	Duration time.Duration
}
