package storage

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emiliopalmerini/aidash/internal/domain"
)

// TableFile reads a delimited table from disk. The first column is the row
// label. Files ending in .gz are decompressed on the fly.
type TableFile struct {
	name      string
	path      string
	delimiter rune
}

func NewTableFile(name, path string, delimiter rune) *TableFile {
	if delimiter == 0 {
		delimiter = ','
	}
	return &TableFile{name: name, path: path, delimiter: delimiter}
}

func (s *TableFile) Artifact() string {
	return s.path
}

func (s *TableFile) Read(ctx context.Context) (*domain.Table, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if strings.HasSuffix(s.path, ".gz") {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}

	return ParseTable(s.name, r, s.delimiter)
}

// ParseTable parses delimited text into a Table. Every record must have the
// same number of fields as the header.
func ParseTable(name string, r io.Reader, delimiter rune) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", domain.ErrMalformed, err)
	}
	if len(header) == 0 {
		return nil, domain.ErrEmptyFile
	}

	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []domain.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
		}
		rows = append(rows, domain.Row{
			Label: strings.TrimSpace(record[0]),
			Cells: record[1:],
		})
	}

	return domain.NewTable(name, header[0], header[1:], rows)
}
