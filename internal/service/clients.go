package service

import (
	"context"
	"fmt"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/repository"
)

// ClientService manages portal accounts.
type ClientService interface {
	// List returns every client, active and inactive.
	List(ctx context.Context) ([]model.Client, error)
	// Create registers a new client and returns its generated access code.
	Create(ctx context.Context, name, company string, active bool) (string, error)
	// Update merges the given fields into the stored client.
	Update(ctx context.Context, code string, upd model.ClientUpdate) error
	// SetActive toggles whether the client may log in and see prices.
	SetActive(ctx context.Context, code string, active bool) error
}

type ClientServiceImpl struct {
	repo  repository.ClientRepository
	codes *CodeGenerator
}

// NewClientService constructs ClientService with its code generator.
func NewClientService(repo repository.ClientRepository, codes *CodeGenerator) *ClientServiceImpl {
	return &ClientServiceImpl{repo: repo, codes: codes}
}

// List returns every client in store order.
func (s *ClientServiceImpl) List(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

// Create assigns a fresh access code and appends the client row.
func (s *ClientServiceImpl) Create(ctx context.Context, name, company string, active bool) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty client name", errs.ErrValidation)
	}
	code := s.codes.NewCode()
	c := model.Client{Code: code, Name: name, Company: company, Active: active}
	if err := s.repo.Create(ctx, c); err != nil {
		return "", err
	}
	return code, nil
}

// Update merges the given fields and writes the full row back.
func (s *ClientServiceImpl) Update(ctx context.Context, code string, upd model.ClientUpdate) error {
	return s.repo.Update(ctx, code, upd)
}

// SetActive toggles the active flag via a full-row overwrite.
func (s *ClientServiceImpl) SetActive(ctx context.Context, code string, active bool) error {
	return s.repo.Update(ctx, code, model.ClientUpdate{Active: &active})
}
