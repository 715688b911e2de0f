package repository

import (
	"context"

	"github.com/madnessDann/portal-precios/internal/model"
)

// ProductRepository provides access to the product catalog.
type ProductRepository interface {
	// List returns every product in store order.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID loads a product by its identifier.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create appends a new product row.
	Create(ctx context.Context, p model.Product) error
}
