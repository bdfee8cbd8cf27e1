package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/aidash/internal/domain"
	"github.com/emiliopalmerini/aidash/internal/logger"
	"github.com/emiliopalmerini/aidash/internal/ports"
)

// Table names used in errors, warnings and metric labels.
const (
	TableResponses    = "responses"
	TableCapabilities = "capabilities"
)

// Loader reads and validates both tables. Nothing is cached: every call to
// Load reads the sources again.
type Loader struct {
	responses    ports.TableSource
	capabilities ports.TableSource
	metrics      ports.DashboardMetrics
	generator    string
	log          logger.Logger
	now          func() time.Time
}

func NewLoader(responses, capabilities ports.TableSource, metrics ports.DashboardMetrics, generator string) *Loader {
	return &Loader{
		responses:    responses,
		capabilities: capabilities,
		metrics:      metrics,
		generator:    generator,
		log:          logger.Named("dashboard"),
		now:          time.Now,
	}
}

// Generator names the script that produces the input tables.
func (l *Loader) Generator() string {
	return l.generator
}

// Load reads the response table then the capability table and validates
// both before returning. The first failure aborts the pass with a
// *domain.LoadError or a *domain.SchemaError.
func (l *Loader) Load(ctx context.Context) (*Session, error) {
	start := l.now()
	defer func() { l.metrics.LoadDuration(l.now().Sub(start)) }()

	s := &Session{ID: uuid.NewString(), LoadedAt: start}

	respTable, err := l.read(ctx, TableResponses, l.responses)
	if err != nil {
		return nil, err
	}
	s.Responses, err = domain.NewResponseMetrics(respTable)
	if err != nil {
		return nil, l.schemaFailure(ctx, TableResponses, err)
	}
	l.loaded(ctx, s, respTable)

	capTable, err := l.read(ctx, TableCapabilities, l.capabilities)
	if err != nil {
		return nil, err
	}
	s.Capabilities, err = domain.NewCapabilityAssessment(capTable)
	if err != nil {
		return nil, l.schemaFailure(ctx, TableCapabilities, err)
	}
	l.loaded(ctx, s, capTable)

	l.log.Debug(ctx, "session loaded",
		logger.String("session_id", s.ID),
		logger.Int("response_rows", respTable.Len()),
		logger.Int("capability_rows", capTable.Len()),
	)
	return s, nil
}

func (l *Loader) read(ctx context.Context, name string, src ports.TableSource) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := src.Read(ctx)
	if err != nil {
		l.metrics.TableLoaded(name, OutcomeLoadError)
		loadErr := &domain.LoadError{Artifact: name, Path: src.Artifact(), Err: err}
		l.log.Error(ctx, "failed to load table", logger.String("table", name), logger.Error(loadErr))
		return nil, loadErr
	}
	t.Name = name
	return t, nil
}

func (l *Loader) schemaFailure(ctx context.Context, name string, err error) error {
	l.metrics.TableLoaded(name, OutcomeSchemaError)
	l.log.Error(ctx, "table failed validation", logger.String("table", name), logger.Error(err))
	return err
}

func (l *Loader) loaded(ctx context.Context, s *Session, t *domain.Table) {
	if t.Len() == 0 {
		w := domain.EmptyDataWarning{Table: t.Name}
		s.Warnings = append(s.Warnings, w)
		l.metrics.TableLoaded(t.Name, OutcomeEmpty)
		l.log.Warn(ctx, w.String(), logger.String("session_id", s.ID))
		return
	}
	l.metrics.TableLoaded(t.Name, OutcomeOK)
}

// UserMessage turns a Load failure into the text shown to the operator. Load
// failures name the artifact and point at the generator.
func UserMessage(err error, generator string) string {
	var le *domain.LoadError
	if errors.As(err, &le) {
		return fmt.Sprintf("Could not load %s: %v. Run %s first to generate the analysis files, then reload.",
			le.Path, le.Err, generator)
	}
	var se *domain.SchemaError
	if errors.As(err, &se) {
		return fmt.Sprintf("%v. Re-run %s to regenerate the analysis files, then reload.", se, generator)
	}
	return err.Error()
}
