package dashboard

import (
	"context"

	"github.com/emiliopalmerini/aidash/internal/domain"
)

// MockTableSource is a mock implementation of ports.TableSource for testing.
type MockTableSource struct {
	Name     string
	ReadFunc func(ctx context.Context) (*domain.Table, error)
	Reads    int
}

func (m *MockTableSource) Read(ctx context.Context) (*domain.Table, error) {
	m.Reads++
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx)
	}
	return &domain.Table{}, nil
}

func (m *MockTableSource) Artifact() string {
	return m.Name
}
