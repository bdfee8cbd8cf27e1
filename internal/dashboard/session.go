// Package dashboard loads the two analysis tables into a render session.
package dashboard

import (
	"errors"
	"time"

	"github.com/emiliopalmerini/aidash/internal/charts"
	"github.com/emiliopalmerini/aidash/internal/domain"
	"github.com/emiliopalmerini/aidash/internal/ports"
)

// Render pass outcomes shared by logs and metrics.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeLoadError   = "load_error"
	OutcomeSchemaError = "schema_error"
	OutcomeError       = "error"
)

// Session holds the tables of a single render pass. It is never mutated
// after Load returns and never shared between requests.
type Session struct {
	ID           string
	LoadedAt     time.Time
	Responses    *domain.ResponseMetrics
	Capabilities *domain.CapabilityAssessment
	Warnings     []domain.EmptyDataWarning
}

// Figures returns the chart battery for this session, in display order.
func (s *Session) Figures() []charts.Figure {
	return charts.Battery(s.Responses, s.Capabilities)
}

// RenderMetrics summarises a successful pass for the exporter.
func (s *Session) RenderMetrics(surface string, chartsRendered int, d time.Duration) *ports.RenderMetrics {
	return &ports.RenderMetrics{
		SessionID:         s.ID,
		Surface:           surface,
		Outcome:           OutcomeOK,
		ResponseRows:      s.Responses.Table.Len(),
		CapabilityRows:    s.Capabilities.Table.Len(),
		CapabilityColumns: len(s.Capabilities.Dimensions),
		ChartsRendered:    chartsRendered,
		Duration:          d,
	}
}

// FailedRenderMetrics summarises a pass that stopped at err.
func FailedRenderMetrics(surface string, err error, d time.Duration) *ports.RenderMetrics {
	return &ports.RenderMetrics{
		Surface:  surface,
		Outcome:  Outcome(err),
		Duration: d,
	}
}

// Outcome classifies err for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrSchema):
		return OutcomeSchemaError
	case errors.Is(err, domain.ErrLoad):
		return OutcomeLoadError
	default:
		return OutcomeError
	}
}
