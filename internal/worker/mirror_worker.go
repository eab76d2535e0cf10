package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tavola/internal/amqp"
	"tavola/internal/export"
	"tavola/internal/sheets"
)

// MirrorWorker appends every recorded expense to the ledger spreadsheet.
type MirrorWorker struct {
	appender sheets.RowAppender
}

func NewMirrorWorker(appender sheets.RowAppender) *MirrorWorker {
	return &MirrorWorker{appender: appender}
}

// HandleRecorded processes a single recorded-expense message.
func (w *MirrorWorker) HandleRecorded(ctx context.Context, msg *amqp.ExpenseRecordedMessage) error {
	slog.InfoContext(ctx, "Processing recorded expense message", "id", msg.ID)

	expense, err := msg.Expense()
	if err != nil {
		return fmt.Errorf("decode expense from message: %w", err)
	}

	ref, err := w.appender.AppendRow(ctx, export.BuildRow(expense))
	if err != nil {
		return fmt.Errorf("append expense row: %w", err)
	}

	slog.InfoContext(ctx, "Mirrored expense to ledger",
		"id", msg.ID,
		"ref", ref,
		"item", expense.Item,
		"amount_cents", expense.Amount.Cents)

	return nil
}
