package tabular

import (
	"context"
	"fmt"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/store"
)

// ProductRepo implements ProductRepository over a row store.
// Columns: id, name, description.
type ProductRepo struct{ rows store.RowStore }

// NewProductRepo constructs a product repository.
func NewProductRepo(rows store.RowStore) *ProductRepo { return &ProductRepo{rows: rows} }

func parseProduct(row []string) model.Product {
	return model.Product{
		ID:          cell(row, 0),
		Name:        cell(row, 1),
		Description: cell(row, 2),
	}
}

func productRow(p model.Product) []string {
	return []string{p.ID, p.Name, p.Description}
}

// List returns every product in store order.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	raw, err := r.rows.ReadAll(ctx, ProductsCollection)
	if err != nil {
		return nil, err
	}
	out := []model.Product{}
	for _, row := range dataRows(raw) {
		out = append(out, parseProduct(row))
	}
	return out, nil
}

// GetByID returns the first product with the given identifier.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, errs.ErrNotFound)
}

// Create appends a new product row.
func (r *ProductRepo) Create(ctx context.Context, p model.Product) error {
	return r.rows.Append(ctx, ProductsCollection, [][]string{productRow(p)})
}
