package ports

import (
	"context"

	"github.com/emiliopalmerini/aidash/internal/domain"
)

// TableSource reads one externally produced table.
type TableSource interface {
	// Read loads the whole table. Row order is the source order.
	Read(ctx context.Context) (*domain.Table, error)
	// Artifact names what is read (a file path or a database table) for
	// user-facing error messages.
	Artifact() string
}
