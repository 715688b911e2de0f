package postgres

import (
	"context"
	"fmt"

	"github.com/madnessDann/portal-precios/internal/errs"
)

// RowStore keeps every collection in a single rows table, ordered by an
// append-assigned position. Header rows are seeded by the migration so the
// contract matches the spreadsheet backend: ReadAll returns the header at
// index 0 and WriteRows addresses rows 1-based including it.
type RowStore struct{ db *DB }

// NewRowStore constructs a row store over the given pool.
func NewRowStore(db *DB) *RowStore { return &RowStore{db: db} }

// ReadAll returns the collection's rows in append order.
func (s *RowStore) ReadAll(ctx context.Context, collection string) ([][]string, error) {
	const q = `
SELECT cells FROM rows WHERE collection=$1 ORDER BY pos`
	rws, err := s.db.Pool.Query(ctx, q, collection)
	if err != nil {
		return nil, &errs.StoreError{Collection: collection, Detail: err.Error()}
	}
	defer rws.Close()

	out := [][]string{}
	for rws.Next() {
		var cells []string
		if err := rws.Scan(&cells); err != nil {
			return nil, &errs.StoreError{Collection: collection, Detail: err.Error()}
		}
		out = append(out, cells)
	}
	if err := rws.Err(); err != nil {
		return nil, &errs.StoreError{Collection: collection, Detail: err.Error()}
	}
	return out, nil
}

// Append inserts rows one by one so position assignment follows the given order.
func (s *RowStore) Append(ctx context.Context, collection string, rows [][]string) error {
	const q = `
INSERT INTO rows (collection, cells) VALUES ($1, $2)`
	for _, row := range rows {
		if _, err := s.db.Pool.Exec(ctx, q, collection, row); err != nil {
			return &errs.StoreError{Collection: collection, Detail: err.Error()}
		}
	}
	return nil
}

// WriteRows overwrites whole rows starting at the given 1-based position.
// Positions refer to read order, not raw pos values, which may have gaps.
func (s *RowStore) WriteRows(ctx context.Context, collection string, start int, rows [][]string) error {
	const q = `
UPDATE rows SET cells=$2
WHERE collection=$1 AND pos = (
	SELECT pos FROM rows WHERE collection=$1 ORDER BY pos OFFSET $3 LIMIT 1)`
	for i, row := range rows {
		tag, err := s.db.Pool.Exec(ctx, q, collection, row, start-1+i)
		if err != nil {
			return &errs.StoreError{Collection: collection, Detail: err.Error()}
		}
		if tag.RowsAffected() == 0 {
			return &errs.StoreError{Collection: collection, Detail: fmt.Sprintf("row %d out of range", start+i)}
		}
	}
	return nil
}
