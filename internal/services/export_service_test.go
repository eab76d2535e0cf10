package services

import (
	"context"
	"testing"

	"tavola/internal/core"
	"tavola/internal/sheets/memory"
	"tavola/internal/store"
)

func TestExportEncodesMatchedRange(t *testing.T) {
	ctx := context.Background()
	log := store.NewMemory()
	expenses := NewExpenseService(log, nil)

	inRange := validExpense(core.DepartmentKitchen, 4550)
	inRange.Date = core.NewDate(2024, 1, 15)
	outOfRange := validExpense(core.DepartmentBar, 900)
	outOfRange.Date = core.NewDate(2024, 2, 1)
	for _, e := range []core.Expense{inRange, outOfRange} {
		if _, err := expenses.RecordExpense(ctx, e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	enc := memory.New()
	res, err := NewExportService(log, enc).Export(ctx, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31))
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if res.Filename != "expenses_20240101_to_20240131.csv" {
		t.Fatalf("filename=%q", res.Filename)
	}
	if res.RowCount != 1 {
		t.Fatalf("rows=%d", res.RowCount)
	}
	tab, ok := enc.Table(res.Filename)
	if !ok {
		t.Fatalf("table not encoded")
	}
	if tab.Rows[0][3] != "Item" || tab.Rows[0][4] != 45.50 {
		t.Fatalf("row=%v", tab.Rows[0])
	}
}

func TestExportEmptyRangeYieldsHeaderOnly(t *testing.T) {
	ctx := context.Background()
	log := store.NewMemory()
	enc := memory.New()

	res, err := NewExportService(log, enc).Export(ctx, core.NewDate(2024, 3, 1), core.NewDate(2024, 3, 31))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if res.RowCount != 0 {
		t.Fatalf("rows=%d", res.RowCount)
	}
	tab, ok := enc.Table(res.Filename)
	if !ok || len(tab.Columns) != 8 || len(tab.Rows) != 0 {
		t.Fatalf("table=%v ok=%v", tab, ok)
	}
}

func TestExportInvertedRangeIsEmptyNotError(t *testing.T) {
	ctx := context.Background()
	log := store.NewMemory()
	expenses := NewExpenseService(log, nil)
	if _, err := expenses.RecordExpense(ctx, validExpense(core.DepartmentBar, 100)); err != nil {
		t.Fatalf("record: %v", err)
	}

	res, err := NewExportService(log, memory.New()).Export(ctx, core.NewDate(2024, 6, 30), core.NewDate(2024, 6, 1))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if res.RowCount != 0 {
		t.Fatalf("rows=%d", res.RowCount)
	}
}
