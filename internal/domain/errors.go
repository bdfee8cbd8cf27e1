package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad marks failures to read an input artifact.
	ErrLoad = errors.New("load failed")
	// ErrSchema marks a missing or non-numeric column.
	ErrSchema = errors.New("schema mismatch")
	// ErrEmptyFile is returned when an artifact has no header line.
	ErrEmptyFile = errors.New("file is empty")
	// ErrMalformed is returned for ragged rows or duplicate keys.
	ErrMalformed = errors.New("malformed table")
)

// LoadError reports an artifact that is absent, unreadable, empty or
// malformed. It aborts the render pass.
type LoadError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Path != "" && e.Path != e.Artifact {
		return fmt.Sprintf("load %s (%s): %v", e.Artifact, e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Artifact, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// SchemaError reports a column that is required but absent, or a value in a
// plotted column that is not numeric. Row and Value are set only for the
// latter.
type SchemaError struct {
	Table  string
	Column string
	Row    string
	Value  string
}

func (e *SchemaError) Error() string {
	if e.Row != "" {
		return fmt.Sprintf("table %s: column %q has non-numeric value %q at row %q", e.Table, e.Column, e.Value, e.Row)
	}
	return fmt.Sprintf("table %s: missing column %q", e.Table, e.Column)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// EmptyDataWarning is recorded when a table has a header but no rows. Views
// render empty instead of failing.
type EmptyDataWarning struct {
	Table string
}

func (w EmptyDataWarning) String() string {
	return fmt.Sprintf("table %s has no rows", w.Table)
}
