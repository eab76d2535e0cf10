package sheets

import (
	"context"

	"tavola/internal/export"
)

// Ports for outbound spreadsheet adapters.
type (
	// Encoder turns a serialized table into a spreadsheet artifact under
	// the given filename. The encoder owns the file-format concern; the
	// returned ref identifies the produced artifact (URL, id, ...).
	Encoder interface {
		Encode(ctx context.Context, t export.Table, filename string) (ref string, err error)
		// Extension is the filename extension this encoder's artifacts carry.
		Extension() string
	}

	// RowAppender appends one serialized record to a running ledger sheet.
	// Used by the mirror worker to keep a live spreadsheet copy of the log.
	RowAppender interface {
		AppendRow(ctx context.Context, row export.Row) (rowRef string, err error)
	}
)
