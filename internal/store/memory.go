// Package store holds the session-lifetime expense log. The log is
// append-only and ordered newest first; records are never mutated or
// removed once admitted, and state does not survive a restart.
package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"tavola/internal/core"
)

type Memory struct {
	mu     sync.Mutex
	lastID int64
	items  []core.Expense
}

func NewMemory() *Memory {
	return &Memory{}
}

// Add validates the record, assigns a fresh unique ID and prepends it to
// the log. The input must arrive without an ID; the stored record is
// returned.
func (s *Memory) Add(_ context.Context, e core.Expense) (core.Expense, error) {
	if e.ID != "" {
		return core.Expense{}, fmt.Errorf("record already has id %q", e.ID)
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	e.ID = strconv.FormatInt(s.lastID, 10)
	s.items = append([]core.Expense{e}, s.items...)
	return e, nil
}

// All returns a snapshot of the log, newest first.
func (s *Memory) All(_ context.Context) []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of records in the log.
func (s *Memory) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
