package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/repository"
	"github.com/madnessDann/portal-precios/internal/session"
)

type fakeClientRepo struct {
	clients   []model.Client
	getErr    error
	created   []model.Client
	createErr error
	updates   map[string]model.ClientUpdate
	updateErr error
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

func (f *fakeClientRepo) List(_ context.Context) ([]model.Client, error) {
	return append([]model.Client(nil), f.clients...), nil
}

func (f *fakeClientRepo) GetByCode(_ context.Context, code string) (*model.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.clients {
		if f.clients[i].Code == code && f.clients[i].Active {
			return &f.clients[i], nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", code, errs.ErrNotFound)
}

func (f *fakeClientRepo) Create(_ context.Context, c model.Client) error {
	f.created = append(f.created, c)
	return f.createErr
}

func (f *fakeClientRepo) Update(_ context.Context, code string, upd model.ClientUpdate) error {
	if f.updates == nil {
		f.updates = map[string]model.ClientUpdate{}
	}
	f.updates[code] = upd
	return f.updateErr
}

func TestLoginClient_PersistsIdentity(t *testing.T) {
	t.Parallel()
	repo := &fakeClientRepo{clients: []model.Client{
		{Code: "X1", Name: "Ana", Company: "Acme", Active: true},
	}}
	sess := session.NewMemory()
	s := NewAuthService(repo, sess, "secret")

	c, err := s.LoginClient(context.Background(), "X1")
	if err != nil || c.Name != "Ana" {
		t.Fatalf("login: c=%+v err=%v", c, err)
	}
	stored, ok := sess.Client()
	if !ok || stored.Code != "X1" {
		t.Fatalf("identity not persisted: %+v ok=%v", stored, ok)
	}

	if err := s.LogoutClient(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sess.Client(); ok {
		t.Fatalf("logout must clear the identity")
	}
}

func TestLoginClient_InvalidOrInactive(t *testing.T) {
	t.Parallel()
	repo := &fakeClientRepo{clients: []model.Client{
		{Code: "X2", Name: "Bruno", Active: false},
	}}
	sess := session.NewMemory()
	s := NewAuthService(repo, sess, "secret")
	ctx := context.Background()

	for _, code := range []string{"", "NOPE", "X2"} {
		if _, err := s.LoginClient(ctx, code); !errors.Is(err, errs.ErrInvalidCode) {
			t.Fatalf("code %q: want ErrInvalidCode, got %v", code, err)
		}
	}
	if _, ok := sess.Client(); ok {
		t.Fatalf("failed login must leave the session unchanged")
	}
}

func TestLoginClient_StoreFailurePassesThrough(t *testing.T) {
	t.Parallel()
	repo := &fakeClientRepo{getErr: &errs.StoreError{Collection: "Clientes", Detail: "503"}}
	s := NewAuthService(repo, session.NewMemory(), "secret")

	_, err := s.LoginClient(context.Background(), "X1")
	var se *errs.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("infrastructure failure must stay distinguishable, got %v", err)
	}
	if errors.Is(err, errs.ErrInvalidCode) {
		t.Fatalf("store failure must not read as an invalid code")
	}
}

func TestLoginAdmin_ExactEquality(t *testing.T) {
	t.Parallel()
	sess := session.NewMemory()
	s := NewAuthService(&fakeClientRepo{}, sess, "s3cret")

	if err := s.LoginAdmin("wrong"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if s.AdminAuthenticated() {
		t.Fatalf("failed admin login must not set the flag")
	}

	if err := s.LoginAdmin("s3cret"); err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !s.AdminAuthenticated() {
		t.Fatalf("admin flag not persisted")
	}

	if err := s.LogoutAdmin(); err != nil {
		t.Fatalf("admin logout: %v", err)
	}
	if s.AdminAuthenticated() {
		t.Fatalf("admin logout must clear the flag")
	}
}
