// Package session persists the caller's proven identity between operations.
package session

import "github.com/madnessDann/portal-precios/internal/model"

// Store is the capability the portal uses to remember that a caller already
// proved a client code or the admin secret. The client identity and the
// admin flag are independent. Implementations are not safe for concurrent use.
type Store interface {
	// Client returns the stored identity, if any.
	Client() (*model.Client, bool)
	// SetClient persists the identity of a successfully validated client.
	SetClient(c model.Client) error
	// ClearClient forgets the stored identity.
	ClearClient() error

	// AdminAuthenticated reports whether the admin secret was proven.
	AdminAuthenticated() bool
	// SetAdminAuthenticated persists the admin flag.
	SetAdminAuthenticated(v bool) error
	// ClearAdmin forgets the admin flag.
	ClearAdmin() error
}
