package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emiliopalmerini/aidash/internal/adapters/otel"
	"github.com/emiliopalmerini/aidash/internal/adapters/prometheus"
	"github.com/emiliopalmerini/aidash/internal/config"
	"github.com/emiliopalmerini/aidash/internal/dashboard"
	"github.com/emiliopalmerini/aidash/internal/logger"
	"github.com/emiliopalmerini/aidash/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config         *config.Config
	Sources        *dashboard.Sources
	Loader         *dashboard.Loader
	Metrics        ports.DashboardMetrics
	MetricsHandler http.Handler
	Exporter       ports.MetricsExporter
}

// NewAppContext loads configuration and creates an AppContext with all
// dependencies initialized.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.SetLevelString(level); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	sources, err := dashboard.OpenSources(cfg.Source)
	if err != nil {
		return nil, err
	}

	a := &AppContext{
		Config:   cfg,
		Sources:  sources,
		Exporter: otel.Open(ctx, otel.LoadConfig(cfg.OTEL)),
	}
	if cfg.Metrics.Enabled {
		m := prometheus.NewManager()
		a.Metrics = m
		a.MetricsHandler = m.Handler()
	} else {
		a.Metrics = prometheus.NewNoOpMetrics()
	}
	a.Loader = dashboard.NewLoader(sources.Responses, sources.Capabilities, a.Metrics, cfg.Generator)

	return a, nil
}

// Close flushes the exporter and releases the table sources.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Exporter != nil {
		errs = append(errs, a.Exporter.Close(ctx))
	}
	if a.Sources != nil {
		errs = append(errs, a.Sources.Close())
	}
	return errors.Join(errs...)
}
