package services

import (
	"context"
	"testing"

	"tavola/internal/core"
	"tavola/internal/store"
)

func validExpense(dep core.Department, cents int64) core.Expense {
	return core.Expense{
		Date:          core.NewDate(2024, 6, 10),
		Department:    dep,
		Category:      core.CategorySupplies,
		Item:          "Item",
		Amount:        core.Money{Cents: cents},
		Supplier:      "Supplier",
		PaymentMethod: core.PaymentCash,
	}
}

func TestRecordExpenseAssignsIDWithoutAMQP(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(store.NewMemory(), nil)

	stored, err := svc.RecordExpense(ctx, validExpense(core.DepartmentBar, 1000))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestRecordExpenseRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(store.NewMemory(), nil)

	bad := validExpense(core.DepartmentBar, 1000)
	bad.Item = "   "
	if _, err := svc.RecordExpense(ctx, bad); err == nil {
		t.Fatalf("expected validation error")
	}
	if got := svc.List(ctx, core.DepartmentAll); len(got) != 0 {
		t.Fatalf("rejected record reached the log: %v", got)
	}
}

func TestListFiltersByDepartment(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(store.NewMemory(), nil)

	for _, dep := range []core.Department{core.DepartmentBar, core.DepartmentKitchen, core.DepartmentBar} {
		if _, err := svc.RecordExpense(ctx, validExpense(dep, 500)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	if got := svc.List(ctx, core.DepartmentBar); len(got) != 2 {
		t.Fatalf("bar records = %d", len(got))
	}
	if got := svc.List(ctx, core.DepartmentAll); len(got) != 3 {
		t.Fatalf("all records = %d", len(got))
	}
}

func TestSummarizeMatchesLog(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(store.NewMemory(), nil)

	if _, err := svc.RecordExpense(ctx, validExpense(core.DepartmentKitchen, 4550)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.RecordExpense(ctx, validExpense(core.DepartmentBar, 450)); err != nil {
		t.Fatalf("record: %v", err)
	}

	sum := svc.Summarize(ctx, core.NewDate(2024, 6, 1))
	if sum.Total.Cents != 5000 {
		t.Fatalf("total=%d", sum.Total.Cents)
	}
	if sum.MonthTotal.Cents != 5000 {
		t.Fatalf("month total=%d", sum.MonthTotal.Cents)
	}
	if sum.DepartmentCount != 2 {
		t.Fatalf("departments=%d", sum.DepartmentCount)
	}
	if sum.AverageTransaction.Cents != 2500 {
		t.Fatalf("average=%d", sum.AverageTransaction.Cents)
	}
	if sum.DepartmentTotals[core.DepartmentKitchen].Cents != 4550 {
		t.Fatalf("kitchen total=%d", sum.DepartmentTotals[core.DepartmentKitchen].Cents)
	}
	if sum.RecordCount != 2 {
		t.Fatalf("records=%d", sum.RecordCount)
	}

	// A reference date in another month excludes everything from the month total.
	other := svc.Summarize(ctx, core.NewDate(2024, 7, 1))
	if other.MonthTotal.Cents != 0 {
		t.Fatalf("other month total=%d", other.MonthTotal.Cents)
	}
}
