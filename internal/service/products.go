package service

import (
	"context"
	"fmt"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/repository"
)

// ProductService manages the product catalog.
type ProductService interface {
	// List returns every product.
	List(ctx context.Context) ([]model.Product, error)
	// Get loads one product by identifier.
	Get(ctx context.Context, id string) (*model.Product, error)
	// Create registers a new product under its caller-supplied identifier.
	Create(ctx context.Context, p model.Product) error
}

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

// NewProductService constructs ProductService.
func NewProductService(repo repository.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{repo: repo}
}

// List returns every product in store order.
func (s *ProductServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// Get loads one product by identifier.
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the identifier and name before appending the row.
func (s *ProductServiceImpl) Create(ctx context.Context, p model.Product) error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty product id", errs.ErrValidation)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: empty product name", errs.ErrValidation)
	}
	return s.repo.Create(ctx, p)
}
