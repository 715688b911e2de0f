package repository

import (
	"context"

	"github.com/madnessDann/portal-precios/internal/model"
)

// PriceRepository provides access to the append-only price log.
type PriceRepository interface {
	// List returns the full log in append order.
	List(ctx context.Context) ([]model.Price, error)

	// ListByClient filters the log by client code and, when date is
	// non-empty, by exact date. Order is preserved.
	ListByClient(ctx context.Context, code, date string) ([]model.Price, error)

	// Append adds entries to the log. Entries are never edited or removed.
	Append(ctx context.Context, prices []model.Price) error
}
