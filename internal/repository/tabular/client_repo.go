package tabular

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/store"
)

// ClientRepo implements ClientRepository over a row store.
// Columns: code, name, company, active.
type ClientRepo struct{ rows store.RowStore }

// NewClientRepo constructs a client repository.
func NewClientRepo(rows store.RowStore) *ClientRepo { return &ClientRepo{rows: rows} }

// parseClient maps one raw row; missing trailing cells read as zero values.
// The active flag is true iff the cell equals "true" case-insensitively.
func parseClient(row []string) model.Client {
	return model.Client{
		Code:    cell(row, 0),
		Name:    cell(row, 1),
		Company: cell(row, 2),
		Active:  strings.EqualFold(cell(row, 3), "true"),
	}
}

// clientRow is the inverse mapping and always emits all columns.
func clientRow(c model.Client) []string {
	return []string{c.Code, c.Name, c.Company, strconv.FormatBool(c.Active)}
}

// List returns every client, active and inactive, in store order.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	raw, err := r.rows.ReadAll(ctx, ClientsCollection)
	if err != nil {
		return nil, err
	}
	out := []model.Client{}
	for _, row := range dataRows(raw) {
		out = append(out, parseClient(row))
	}
	return out, nil
}

// GetByCode returns the first active client with the given code. Inactive
// and unknown codes both map to ErrNotFound.
func (r *ClientRepo) GetByCode(ctx context.Context, code string) (*model.Client, error) {
	clients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].Code == code && clients[i].Active {
			return &clients[i], nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", code, errs.ErrNotFound)
}

// Create appends a new client row.
func (r *ClientRepo) Create(ctx context.Context, c model.Client) error {
	return r.rows.Append(ctx, ClientsCollection, [][]string{clientRow(c)})
}

// Update re-reads the collection, merges the changed fields and overwrites
// the full row at its position. Two concurrent updates of the same client
// race read-modify-write; the last writer wins.
func (r *ClientRepo) Update(ctx context.Context, code string, upd model.ClientUpdate) error {
	clients, err := r.List(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range clients {
		if clients[i].Code == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("client %s: %w", code, errs.ErrNotFound)
	}

	c := clients[idx]
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Company != nil {
		c.Company = *upd.Company
	}
	if upd.Active != nil {
		c.Active = *upd.Active
	}

	// data row idx sits at store position idx+2: 1-based, header first
	return r.rows.WriteRows(ctx, ClientsCollection, idx+2, [][]string{clientRow(c)})
}
