// Package service contains application services for authentication, the
// catalog, and price resolution.
package service

import (
	"context"
	"errors"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/repository"
	"github.com/madnessDann/portal-precios/internal/session"
)

// AuthService defines client and admin authentication over the session store.
type AuthService interface {
	// LoginClient validates an access code and persists the matched identity.
	LoginClient(ctx context.Context, code string) (*model.Client, error)
	// CurrentClient returns the persisted identity, if any.
	CurrentClient() (*model.Client, bool)
	// LogoutClient clears the persisted identity.
	LogoutClient() error

	// LoginAdmin compares the submitted secret for exact equality.
	LoginAdmin(secret string) error
	// AdminAuthenticated reports whether the admin secret was proven.
	AdminAuthenticated() bool
	// LogoutAdmin clears the admin flag.
	LogoutAdmin() error
}

type AuthServiceImpl struct {
	clients     repository.ClientRepository
	sess        session.Store
	adminSecret string
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(clients repository.ClientRepository, sess session.Store, adminSecret string) *AuthServiceImpl {
	return &AuthServiceImpl{clients: clients, sess: sess, adminSecret: adminSecret}
}

// LoginClient looks up an active client by code. An unknown or inactive code
// is an expected negative outcome (ErrInvalidCode) and leaves the session
// unchanged; store failures pass through so callers can tell the system is
// unreachable rather than the code wrong.
func (s *AuthServiceImpl) LoginClient(ctx context.Context, code string) (*model.Client, error) {
	if code == "" {
		return nil, errs.ErrInvalidCode
	}
	c, err := s.clients.GetByCode(ctx, code)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	if err := s.sess.SetClient(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// CurrentClient returns the stored identity, if any.
func (s *AuthServiceImpl) CurrentClient() (*model.Client, bool) { return s.sess.Client() }

// LogoutClient clears the stored identity.
func (s *AuthServiceImpl) LogoutClient() error { return s.sess.ClearClient() }

// LoginAdmin gates admin access on exact equality with the shared secret.
func (s *AuthServiceImpl) LoginAdmin(secret string) error {
	if secret != s.adminSecret {
		return errs.ErrUnauthorized
	}
	return s.sess.SetAdminAuthenticated(true)
}

// AdminAuthenticated reports the persisted admin flag.
func (s *AuthServiceImpl) AdminAuthenticated() bool { return s.sess.AdminAuthenticated() }

// LogoutAdmin clears the admin flag.
func (s *AuthServiceImpl) LogoutAdmin() error { return s.sess.ClearAdmin() }
