package memory

import (
	"context"
	"testing"

	"tavola/internal/export"
)

func TestEncodeStoresTableUnderFilename(t *testing.T) {
	ctx := context.Background()
	e := New()

	tab := export.Table{Columns: export.Columns()}
	ref, err := e.Encode(ctx, tab, "expenses_20240101_to_20240131.csv")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if ref != "mem:expenses_20240101_to_20240131.csv" {
		t.Fatalf("ref=%q", ref)
	}

	got, ok := e.Table("expenses_20240101_to_20240131.csv")
	if !ok {
		t.Fatalf("table not stored")
	}
	if len(got.Columns) != 8 || len(got.Rows) != 0 {
		t.Fatalf("stored table = %v", got)
	}
}

func TestAppendRowKeepsOrder(t *testing.T) {
	ctx := context.Background()
	e := New()

	for _, item := range []string{"a", "b"} {
		if _, err := e.AppendRow(ctx, export.Row{item}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	rows := e.Rows()
	if len(rows) != 2 || rows[0][0] != "a" || rows[1][0] != "b" {
		t.Fatalf("rows=%v", rows)
	}
}
