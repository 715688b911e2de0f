package tabular

import (
	"context"
	"strconv"

	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/store"
)

// PriceRepo implements PriceRepository over a row store.
// Columns: date, clientCode, productId, amount.
type PriceRepo struct{ rows store.RowStore }

// NewPriceRepo constructs a price repository.
func NewPriceRepo(rows store.RowStore) *PriceRepo { return &PriceRepo{rows: rows} }

// parsePrice maps one raw row. An unparsable or missing amount reads as 0.
func parsePrice(row []string) model.Price {
	amount, _ := strconv.ParseFloat(cell(row, 3), 64)
	return model.Price{
		Date:       cell(row, 0),
		ClientCode: cell(row, 1),
		ProductID:  cell(row, 2),
		Amount:     amount,
	}
}

func priceRow(p model.Price) []string {
	return []string{p.Date, p.ClientCode, p.ProductID, strconv.FormatFloat(p.Amount, 'f', -1, 64)}
}

// List returns the full price log in append order.
func (r *PriceRepo) List(ctx context.Context) ([]model.Price, error) {
	raw, err := r.rows.ReadAll(ctx, PricesCollection)
	if err != nil {
		return nil, err
	}
	out := []model.Price{}
	for _, row := range dataRows(raw) {
		out = append(out, parsePrice(row))
	}
	return out, nil
}

// ListByClient filters the log by client code and, when date is non-empty,
// by exact date. Order is preserved.
func (r *PriceRepo) ListByClient(ctx context.Context, code, date string) ([]model.Price, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Price{}
	for _, p := range all {
		if p.ClientCode != code {
			continue
		}
		if date != "" && p.Date != date {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Append adds entries to the log in the given order. An empty batch is a no-op.
func (r *PriceRepo) Append(ctx context.Context, prices []model.Price) error {
	if len(prices) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, priceRow(p))
	}
	return r.rows.Append(ctx, PricesCollection, rows)
}
