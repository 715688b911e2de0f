// Package store defines the generic row-store contract backing the repositories.
package store

import "context"

// RowStore is an ordered collection of string rows addressed by name. The
// remote spreadsheet is the primary implementation; a relational table can
// stand behind the same contract without touching callers.
type RowStore interface {
	// ReadAll returns every row of the named collection, header row included
	// at index 0. An empty collection yields an empty slice, not an error.
	ReadAll(ctx context.Context, collection string) ([][]string, error)

	// Append adds rows after existing content. The store assigns final
	// positions and preserves order among the appended rows.
	Append(ctx context.Context, collection string, rows [][]string) error

	// WriteRows overwrites whole rows starting at the given 1-based position.
	// Position 1 is the header row, so the first data row sits at position 2.
	WriteRows(ctx context.Context, collection string, start int, rows [][]string) error
}
