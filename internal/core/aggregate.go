package core

// Aggregations are pure functions recomputed over the full record slice on
// every call. Data volumes are UI-scale (tens to low thousands of records),
// so there is no incremental state to keep consistent.

// Total sums the amount of every record.
func Total(records []Expense) Money {
	var cents int64
	for _, e := range records {
		cents += e.Amount.Cents
	}
	return Money{Cents: cents}
}

// PeriodTotal sums records dated in the same calendar month and year as ref.
func PeriodTotal(records []Expense, ref Date) Money {
	var cents int64
	for _, e := range records {
		if e.Date.SameMonth(ref) {
			cents += e.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// DepartmentCount counts distinct departments present in the records.
func DepartmentCount(records []Expense) int {
	seen := map[Department]struct{}{}
	for _, e := range records {
		seen[e.Department] = struct{}{}
	}
	return len(seen)
}

// AverageTransaction returns the mean amount, half-up rounded to the cent.
// The empty log averages to zero rather than dividing by zero.
func AverageTransaction(records []Expense) Money {
	n := int64(len(records))
	if n == 0 {
		return Money{}
	}
	total := Total(records).Cents
	return Money{Cents: (total + n/2) / n}
}

// DepartmentTotals sums amounts per department. Only departments that appear
// at least once are present as keys; map iteration order is unspecified.
func DepartmentTotals(records []Expense) map[Department]Money {
	totals := make(map[Department]Money)
	for _, e := range records {
		t := totals[e.Department]
		t.Cents += e.Amount.Cents
		totals[e.Department] = t
	}
	return totals
}
