package core

import (
	"testing"
	"time"
)

func TestByDepartmentAllReturnsInputUnchanged(t *testing.T) {
	records := []Expense{
		expense(DepartmentBar, 100, NewDate(2024, 1, 2)),
		expense(DepartmentKitchen, 200, NewDate(2024, 1, 1)),
	}
	got := ByDepartment(records, DepartmentAll)
	if len(got) != len(records) {
		t.Fatalf("got %d records", len(got))
	}
	for i := range records {
		if got[i].Department != records[i].Department {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestByDepartmentMatchesSubsetInOrder(t *testing.T) {
	records := []Expense{
		expense(DepartmentBar, 100, NewDate(2024, 1, 3)),
		expense(DepartmentKitchen, 200, NewDate(2024, 1, 2)),
		expense(DepartmentBar, 300, NewDate(2024, 1, 1)),
	}
	got := ByDepartment(records, DepartmentBar)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Amount.Cents != 100 || got[1].Amount.Cents != 300 {
		t.Fatalf("store order not preserved: %v", got)
	}

	if got := ByDepartment(records, DepartmentBakery); len(got) != 0 {
		t.Fatalf("expected no bakery records, got %d", len(got))
	}
}

func TestByDepartmentOneBarOneKitchen(t *testing.T) {
	records := []Expense{
		expense(DepartmentBar, 100, NewDate(2024, 1, 2)),
		expense(DepartmentKitchen, 200, NewDate(2024, 1, 1)),
	}
	got := ByDepartment(records, DepartmentBar)
	if len(got) != 1 || got[0].Department != DepartmentBar {
		t.Fatalf("got %v", got)
	}
}

func TestByDateRangeInclusiveBounds(t *testing.T) {
	start := NewDate(2024, 1, 10)
	end := NewDate(2024, 1, 20)
	records := []Expense{
		expense(DepartmentKitchen, 1, NewDate(2024, 1, 9)),  // day before start
		expense(DepartmentKitchen, 2, NewDate(2024, 1, 10)), // on start
		expense(DepartmentKitchen, 3, NewDate(2024, 1, 15)),
		expense(DepartmentKitchen, 4, NewDate(2024, 1, 20)), // on end
		expense(DepartmentKitchen, 5, NewDate(2024, 1, 21)), // day after end
	}
	got := ByDateRange(records, start, end)
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].Amount.Cents != 2 || got[1].Amount.Cents != 3 || got[2].Amount.Cents != 4 {
		t.Fatalf("wrong subset or order: %v", got)
	}
}

func TestByDateRangeEndDayIncludesTimeOfDay(t *testing.T) {
	end := NewDate(2024, 1, 20)
	rec := expense(DepartmentKitchen, 1, NewDate(2024, 1, 20))
	// A record carrying a time-of-day on the end date is still inside the range.
	rec.Date.Time = rec.Date.Add(14*time.Hour + 30*time.Minute)
	got := ByDateRange([]Expense{rec}, NewDate(2024, 1, 1), end)
	if len(got) != 1 {
		t.Fatalf("record on end day excluded")
	}
}

func TestByDateRangeStartAfterEndIsEmpty(t *testing.T) {
	records := []Expense{expense(DepartmentKitchen, 1, NewDate(2024, 1, 15))}
	got := ByDateRange(records, NewDate(2024, 2, 1), NewDate(2024, 1, 1))
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
