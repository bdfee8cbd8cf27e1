package dashboard

import (
	"fmt"

	"github.com/emiliopalmerini/aidash/internal/adapters/storage"
	"github.com/emiliopalmerini/aidash/internal/adapters/turso"
	"github.com/emiliopalmerini/aidash/internal/config"
	"github.com/emiliopalmerini/aidash/internal/ports"
)

// Sources holds the two table sources selected by configuration.
type Sources struct {
	Responses    ports.TableSource
	Capabilities ports.TableSource

	close func() error
}

// Close releases the database handle of a libsql source.
func (s *Sources) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenSources builds the table sources for cfg.Driver.
func OpenSources(cfg config.Source) (*Sources, error) {
	switch cfg.Driver {
	case config.DriverCSV, "":
		delim := cfg.DelimiterRune()
		return &Sources{
			Responses:    storage.NewTableFile(TableResponses, cfg.ResponsesPath, delim),
			Capabilities: storage.NewTableFile(TableCapabilities, cfg.CapabilitiesPath, delim),
		}, nil
	case config.DriverLibSQL:
		db, err := turso.NewDB(cfg.DatabaseURL, cfg.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Sources{
			Responses:    turso.NewTableSource(db, TableResponses, cfg.ResponsesTable),
			Capabilities: turso.NewTableSource(db, TableCapabilities, cfg.CapabilitiesTable),
			close:        db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Driver)
	}
}
