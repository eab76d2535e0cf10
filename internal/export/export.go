// Package export maps a filtered expense sequence into the flat tabular
// form handed to a spreadsheet encoder. It performs no I/O itself.
package export

import (
	"fmt"

	"tavola/internal/core"
)

// Row is one serialized record, one cell per column. Amount stays numeric;
// the encoder applies its own numeric formatting.
type Row []any

// Table is the ordered tabular representation of an export.
type Table struct {
	Columns []string
	Rows    []Row
}

// Columns returns the fixed export column order.
func Columns() []string {
	return []string{
		"Date",
		"Department",
		"Category",
		"Item",
		"Amount",
		"Supplier",
		"Payment Method",
		"Notes",
	}
}

// BuildTable serializes records in input order. An empty input yields a
// header-only table, not an error.
func BuildTable(records []core.Expense) Table {
	t := Table{Columns: Columns(), Rows: make([]Row, 0, len(records))}
	for _, e := range records {
		t.Rows = append(t.Rows, BuildRow(e))
	}
	return t
}

// BuildRow serializes a single record.
func BuildRow(e core.Expense) Row {
	return Row{
		e.Date.Format("01/02/2006"),
		e.Department.Display(),
		string(e.Category),
		e.Item,
		e.Amount.Dollars(),
		e.Supplier,
		string(e.PaymentMethod),
		e.Notes,
	}
}

// Filename derives the deterministic output name from the requested range
// boundaries (not from the matched records) and the encoder's extension.
func Filename(start, end core.Date, ext string) string {
	return fmt.Sprintf("expenses_%s_to_%s.%s",
		start.Format("20060102"), end.Format("20060102"), ext)
}
