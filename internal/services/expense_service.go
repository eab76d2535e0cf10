package services

import (
	"context"
	"fmt"
	"log/slog"

	"tavola/internal/amqp"
	"tavola/internal/core"
	"tavola/internal/store"
)

// ExpenseService orchestrates the in-memory log and the AMQP mirror stream.
type ExpenseService struct {
	store      *store.Memory
	amqpClient *amqp.Client
}

func NewExpenseService(store *store.Memory, amqpClient *amqp.Client) *ExpenseService {
	return &ExpenseService{
		store:      store,
		amqpClient: amqpClient,
	}
}

// Summary is the aggregate snapshot shown on the dashboard.
type Summary struct {
	Total              core.Money
	MonthTotal         core.Money
	DepartmentCount    int
	AverageTransaction core.Money
	DepartmentTotals   map[core.Department]core.Money
	RecordCount        int
}

// RecordExpense admits an expense into the log and publishes a mirror message.
func (s *ExpenseService) RecordExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	stored, err := s.store.Add(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("record expense: %w", err)
	}

	// Publish async mirror message (non-blocking)
	if err := s.publishRecordedMessage(ctx, stored); err != nil {
		slog.ErrorContext(ctx, "Failed to publish recorded message",
			"id", stored.ID, "error", err)
		// Don't fail the request - expense is recorded locally
	}

	return stored, nil
}

// List returns the log newest first, optionally narrowed to one department.
func (s *ExpenseService) List(ctx context.Context, dep core.Department) []core.Expense {
	return core.ByDepartment(s.store.All(ctx), dep)
}

// Summarize recomputes every dashboard aggregate over the current log,
// using today's date as the reference month.
func (s *ExpenseService) Summarize(ctx context.Context, today core.Date) Summary {
	records := s.store.All(ctx)
	return Summary{
		Total:              core.Total(records),
		MonthTotal:         core.PeriodTotal(records, today),
		DepartmentCount:    core.DepartmentCount(records),
		AverageTransaction: core.AverageTransaction(records),
		DepartmentTotals:   core.DepartmentTotals(records),
		RecordCount:        len(records),
	}
}

func (s *ExpenseService) publishRecordedMessage(ctx context.Context, e core.Expense) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping recorded message")
		return nil
	}
	return s.amqpClient.PublishExpenseRecorded(ctx, amqp.NewExpenseRecordedMessage(e))
}

// Close closes the AMQP connection if one is configured.
func (s *ExpenseService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close expense service: %w", err)
		}
	}
	return nil
}
