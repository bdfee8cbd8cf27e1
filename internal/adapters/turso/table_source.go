package turso

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/emiliopalmerini/aidash/internal/domain"
	"github.com/emiliopalmerini/aidash/internal/util"
)

// TableSource reads a whole table from a libsql database. The first column
// of the table is the row label; rows come back in rowid order.
type TableSource struct {
	db    *sql.DB
	name  string
	table string
}

func NewTableSource(db *sql.DB, name, table string) *TableSource {
	return &TableSource{db: db, name: name, table: table}
}

func (s *TableSource) Artifact() string {
	return "table " + s.table
}

func (s *TableSource) Read(ctx context.Context) (*domain.Table, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(s.table))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, domain.ErrEmptyFile
	}

	var out []domain.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		cells := make([]string, len(columns)-1)
		for i := 1; i < len(columns); i++ {
			cells[i-1] = util.ToString(values[i])
		}
		out = append(out, domain.Row{Label: util.ToString(values[0]), Cells: cells})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return domain.NewTable(s.name, columns[0], columns[1:], out)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
