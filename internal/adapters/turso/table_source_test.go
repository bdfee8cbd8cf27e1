package turso

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/tursodatabase/go-libsql"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	stmts := []string{
		`DROP TABLE IF EXISTS ai_capabilities_assessment`,
		`CREATE TABLE ai_capabilities_assessment (metric TEXT PRIMARY KEY, "GPT-4" REAL, "Claude" REAL)`,
		`INSERT INTO ai_capabilities_assessment VALUES ('reasoning', 9, 8.5)`,
		`INSERT INTO ai_capabilities_assessment VALUES ('coding', 8.5, 9)`,
		`INSERT INTO ai_capabilities_assessment VALUES ('accuracy', 8, NULL)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("failed to exec %q: %v", s, err)
		}
	}
	return db
}

func TestTableSource_Read(t *testing.T) {
	db := testDB(t)
	src := NewTableSource(db, "capabilities", "ai_capabilities_assessment")

	tbl, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if tbl.IndexName != "metric" {
		t.Errorf("expected index metric, got %q", tbl.IndexName)
	}
	if len(tbl.Columns) != 2 || tbl.Columns[0] != "GPT-4" {
		t.Errorf("unexpected columns %v", tbl.Columns)
	}
	labels := tbl.Labels()
	want := []string{"reasoning", "coding", "accuracy"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], labels[i])
		}
	}
	if tbl.Rows[0].Cells[1] != "8.5" {
		t.Errorf("expected 8.5, got %q", tbl.Rows[0].Cells[1])
	}
	if tbl.Rows[2].Cells[1] != "" {
		t.Errorf("expected NULL as empty cell, got %q", tbl.Rows[2].Cells[1])
	}
	if src.Artifact() != "table ai_capabilities_assessment" {
		t.Errorf("unexpected artifact %q", src.Artifact())
	}
}

func TestTableSource_MissingTable(t *testing.T) {
	db := testDB(t)
	_, err := NewTableSource(db, "responses", "ai_analysis_results").Read(context.Background())
	if err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent(`a"b`); got != `"a""b"` {
		t.Errorf("unexpected quoting %s", got)
	}
}
