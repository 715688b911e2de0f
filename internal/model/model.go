// Package model defines domain entities used by services and repositories.
package model

// Client is a portal account identified by its access code.
type Client struct {
	Code    string // unique, assigned at creation, immutable
	Name    string
	Company string
	Active  bool
}

// ClientUpdate carries the client fields that may change after creation.
// Nil fields keep their stored value.
type ClientUpdate struct {
	Name    *string
	Company *string
	Active  *bool
}

// Product is a priced good. The ID is caller-supplied and unique by convention.
type Product struct {
	ID          string
	Name        string
	Description string
}

// Price is one entry of the append-only price log. Entries are never edited
// or removed; the same (date, client, product) tuple may legally recur, and
// append order decides which one is current.
type Price struct {
	Date       string // ISO YYYY-MM-DD
	ClientCode string
	ProductID  string
	Amount     float64
}

// ClientPrice is a Price enriched with the referenced product's details at
// read time. It is never persisted.
type ClientPrice struct {
	Price
	ProductName        string
	ProductDescription string
}
