// Package memory is the in-process spreadsheet adapter used for tests and
// as the default backend when no Google credentials are configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"tavola/internal/export"
	"tavola/internal/sheets"
)

type Encoder struct {
	mu     sync.Mutex
	tables map[string]export.Table
	rows   []export.Row
}

var (
	_ sheets.Encoder     = (*Encoder)(nil)
	_ sheets.RowAppender = (*Encoder)(nil)
)

func New() *Encoder {
	return &Encoder{tables: make(map[string]export.Table)}
}

func (e *Encoder) Extension() string { return "csv" }

// Encode stores the table under its filename and returns a synthetic ref.
func (e *Encoder) Encode(_ context.Context, t export.Table, filename string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tables[filename] = t
	return "mem:" + filename, nil
}

// AppendRow records the row on the in-process ledger.
func (e *Encoder) AppendRow(_ context.Context, row export.Row) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows = append(e.rows, row)
	return fmt.Sprintf("mem:%d", len(e.rows)), nil
}

// Table returns an encoded table by filename.
func (e *Encoder) Table(filename string) (export.Table, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.tables[filename]
	return t, ok
}

// Rows returns a copy of the appended ledger rows.
func (e *Encoder) Rows() []export.Row {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]export.Row, len(e.rows))
	copy(out, e.rows)
	return out
}
