package session

import "github.com/madnessDann/portal-precios/internal/model"

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	client *model.Client
	admin  bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Client() (*model.Client, bool) {
	if m.client == nil {
		return nil, false
	}
	c := *m.client
	return &c, true
}

func (m *Memory) SetClient(c model.Client) error {
	m.client = &c
	return nil
}

func (m *Memory) ClearClient() error {
	m.client = nil
	return nil
}

func (m *Memory) AdminAuthenticated() bool { return m.admin }

func (m *Memory) SetAdminAuthenticated(v bool) error {
	m.admin = v
	return nil
}

func (m *Memory) ClearAdmin() error {
	m.admin = false
	return nil
}
