package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/store"
)

var _ store.RowStore = (*Client)(nil)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

type failingToken struct{}

func (failingToken) Token(context.Context) (string, error) {
	return "", &errs.AuthError{Detail: "no key"}
}

func newTestClient(srvURL string) *Client {
	c := NewClient("sp123", staticToken("tok-1"))
	c.baseURL = srvURL
	return c
}

func TestReadAll(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/sp123/values/Clientes" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"range":  "Clientes!A1:D3",
			"values": [][]string{{"codigo", "nombre"}, {"X1", "Ana"}},
		})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).ReadAll(context.Background(), "Clientes")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := [][]string{{"codigo", "nombre"}, {"X1", "Ana"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestReadAll_EmptyRange(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// a range with no values comes back without the values key
		_ = json.NewEncoder(w).Encode(map[string]any{"range": "Precios!A1:D1"})
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).ReadAll(context.Background(), "Precios")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()
	var gotBody struct {
		Values [][]string `json:"values"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/sp123/values/Precios:append" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("valueInputOption") != "USER_ENTERED" || q.Get("insertDataOption") != "INSERT_ROWS" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer srv.Close()

	rows := [][]string{
		{"2024-01-03", "X1", "GAS-95", "12.5"},
		{"2024-01-03", "X1", "DIE-01", "9"},
	}
	if err := newTestClient(srv.URL).Append(context.Background(), "Precios", rows); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !reflect.DeepEqual(gotBody.Values, rows) {
		t.Fatalf("body: want %v, got %v", rows, gotBody.Values)
	}
}

func TestWriteRows_AddressesFullRow(t *testing.T) {
	t.Parallel()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		gotPath = r.URL.Path
		if r.URL.Query().Get("valueInputOption") != "USER_ENTERED" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
	}))
	defer srv.Close()

	row := []string{"X1", "Ana", "Acme", "false"}
	if err := newTestClient(srv.URL).WriteRows(context.Background(), "Clientes", 2, [][]string{row}); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}
	if gotPath != "/sp123/values/Clientes!A2:D2" {
		t.Fatalf("address = %q, want Clientes!A2:D2", gotPath)
	}
}

func TestStoreFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ReadAll(context.Background(), "Clientes")
	var se *errs.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("want StoreError, got %v", err)
	}
	if se.Collection != "Clientes" || !strings.Contains(se.Detail, "backend unavailable") {
		t.Fatalf("store error %+v must name the collection and carry the status text", se)
	}
}

func TestAuthFailurePropagates(t *testing.T) {
	t.Parallel()
	c := NewClient("sp123", failingToken{})

	_, err := c.ReadAll(context.Background(), "Clientes")
	var ae *errs.AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("want AuthError from the token source, got %v", err)
	}
}
