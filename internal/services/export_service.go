package services

import (
	"context"
	"fmt"
	"log/slog"

	"tavola/internal/core"
	"tavola/internal/export"
	"tavola/internal/sheets"
	"tavola/internal/store"
)

// ExportService serializes a date range of the log and hands the table to
// the configured spreadsheet encoder.
type ExportService struct {
	store   *store.Memory
	encoder sheets.Encoder
}

func NewExportService(store *store.Memory, encoder sheets.Encoder) *ExportService {
	return &ExportService{
		store:   store,
		encoder: encoder,
	}
}

// ExportResult describes a completed export.
type ExportResult struct {
	Filename string
	Ref      string
	RowCount int
}

// Export serializes every record dated within [start, end] and encodes the
// resulting table. An empty range still produces a header-only document.
func (s *ExportService) Export(ctx context.Context, start, end core.Date) (ExportResult, error) {
	matched := core.ByDateRange(s.store.All(ctx), start, end)
	table := export.BuildTable(matched)
	filename := export.Filename(start, end, s.encoder.Extension())

	ref, err := s.encoder.Encode(ctx, table, filename)
	if err != nil {
		return ExportResult{}, fmt.Errorf("encode export %q: %w", filename, err)
	}

	slog.InfoContext(ctx, "Export completed",
		"filename", filename,
		"ref", ref,
		"rows", len(table.Rows))

	return ExportResult{
		Filename: filename,
		Ref:      ref,
		RowCount: len(table.Rows),
	}, nil
}
