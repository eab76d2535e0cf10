package store

import (
	"context"
	"testing"

	"tavola/internal/core"
)

func record(item string) core.Expense {
	return core.Expense{
		Date:          core.NewDate(2024, 3, 15),
		Department:    core.DepartmentKitchen,
		Category:      core.CategoryIngredients,
		Item:          item,
		Amount:        core.Money{Cents: 100},
		Supplier:      "supplier",
		PaymentMethod: core.PaymentCash,
	}
}

func TestAddAssignsUniqueIDsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	first, err := s.Add(ctx, record("first"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.Add(ctx, record("second"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("ids not unique: %q, %q", first.ID, second.ID)
	}

	all := s.All(ctx)
	if len(all) != 2 {
		t.Fatalf("got %d records", len(all))
	}
	if all[0].Item != "second" || all[1].Item != "first" {
		t.Fatalf("not newest first: %v", all)
	}
	if s.Count(ctx) != 2 {
		t.Fatalf("count=%d", s.Count(ctx))
	}
}

func TestAddRejectsPreAssignedIDAndInvalidRecord(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	withID := record("x")
	withID.ID = "42"
	if _, err := s.Add(ctx, withID); err == nil {
		t.Fatalf("expected error for pre-assigned id")
	}

	bad := record("x")
	bad.Supplier = ""
	if _, err := s.Add(ctx, bad); err == nil {
		t.Fatalf("expected validation error")
	}
	if s.Count(ctx) != 0 {
		t.Fatalf("rejected records must not be stored")
	}
}

func TestAllReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if _, err := s.Add(ctx, record("only")); err != nil {
		t.Fatalf("add: %v", err)
	}

	snap := s.All(ctx)
	snap[0].Item = "mutated"
	if s.All(ctx)[0].Item != "only" {
		t.Fatalf("store mutated through snapshot")
	}
}
