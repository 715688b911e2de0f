// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/madnessDann/portal-precios/internal/model"
)

// ClientRepository provides access to the client collection.
type ClientRepository interface {
	// List returns every client, active and inactive, in store order.
	List(ctx context.Context) ([]model.Client, error)

	// GetByCode loads an active client by access code. Inactive and unknown
	// codes both return ErrNotFound.
	GetByCode(ctx context.Context, code string) (*model.Client, error)

	// Create appends a new client row.
	Create(ctx context.Context, c model.Client) error

	// Update merges the given fields into the stored client and writes the
	// full row back at its original position.
	Update(ctx context.Context, code string, upd model.ClientUpdate) error
}
