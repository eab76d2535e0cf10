package core

import "time"

// ByDepartment returns the records matching dep, preserving input order.
// The DepartmentAll sentinel returns the input unchanged.
func ByDepartment(records []Expense, dep Department) []Expense {
	if dep == DepartmentAll {
		return records
	}
	out := make([]Expense, 0, len(records))
	for _, e := range records {
		if e.Department == dep {
			out = append(out, e)
		}
	}
	return out
}

// ByDateRange returns the records dated within [start, end], preserving
// input order. Both bounds are inclusive: start is taken at the start of
// its day and end extends through 23:59:59 of its day, so a record dated
// on either boundary day is always included. start > end yields an empty
// result rather than an error.
func ByDateRange(records []Expense, start, end Date) []Expense {
	lower := dayStart(start)
	upper := dayEnd(end)
	out := make([]Expense, 0, len(records))
	for _, e := range records {
		if !e.Date.Before(lower) && !e.Date.After(upper) {
			out = append(out, e)
		}
	}
	return out
}

func dayStart(d Date) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

func dayEnd(d Date) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, 0, d.Location())
}
