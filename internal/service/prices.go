package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/madnessDann/portal-precios/internal/errs"
	"github.com/madnessDann/portal-precios/internal/model"
	"github.com/madnessDann/portal-precios/internal/repository"
)

const dateLayout = "2006-01-02"

// PriceService exposes the price log and the derived views built from it.
type PriceService interface {
	// ByClient returns the client's log entries, optionally filtered by date.
	ByClient(ctx context.Context, code, date string) ([]model.Price, error)
	// LatestByClient returns the client's price set for the most recent date
	// present in the log (the "vigente" set, not yet deduplicated by product).
	LatestByClient(ctx context.Context, code string) ([]model.Price, error)
	// LatestForDisplay applies product de-duplication to the latest set and
	// enriches each row with the product's name and description.
	LatestForDisplay(ctx context.Context, code string) ([]model.ClientPrice, error)
	// Publish appends one price row per (client, product) pair and reports
	// how many rows were written.
	Publish(ctx context.Context, date string, clientCodes []string, amounts map[string]float64) (int, error)
}

type PriceServiceImpl struct {
	prices   repository.PriceRepository
	products repository.ProductRepository
}

// NewPriceService constructs PriceService.
func NewPriceService(prices repository.PriceRepository, products repository.ProductRepository) *PriceServiceImpl {
	return &PriceServiceImpl{prices: prices, products: products}
}

// ByClient filters the log by client and, when date is non-empty, by date.
func (s *PriceServiceImpl) ByClient(ctx context.Context, code, date string) ([]model.Price, error) {
	return s.prices.ListByClient(ctx, code, date)
}

// LatestByClient collects the distinct dates present for the client, picks
// the maximum (ISO dates sort chronologically as strings) and returns every
// row of that date. A client with no entries yields an empty set, not an error.
func (s *PriceServiceImpl) LatestByClient(ctx context.Context, code string) ([]model.Price, error) {
	all, err := s.prices.ListByClient(ctx, code, "")
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return []model.Price{}, nil
	}

	seen := map[string]struct{}{}
	dates := make([]string, 0, len(all))
	for _, p := range all {
		if _, ok := seen[p.Date]; !ok {
			seen[p.Date] = struct{}{}
			dates = append(dates, p.Date)
		}
	}
	sort.Strings(dates)
	latest := dates[len(dates)-1]

	out := []model.Price{}
	for _, p := range all {
		if p.Date == latest {
			out = append(out, p)
		}
	}
	return out, nil
}

// DedupeByProduct keeps one row per product from an ordered sequence. The
// scan runs from the end toward the start, so when a product was priced more
// than once on the same date the most recently appended entry wins.
func DedupeByProduct(prices []model.Price) []model.Price {
	seen := map[string]struct{}{}
	out := []model.Price{}
	for i := len(prices) - 1; i >= 0; i-- {
		if _, ok := seen[prices[i].ProductID]; ok {
			continue
		}
		seen[prices[i].ProductID] = struct{}{}
		out = append(out, prices[i])
	}
	return out
}

// LatestForDisplay composes date selection, de-duplication and product
// enrichment into the canonical price list shown to a client.
func (s *PriceServiceImpl) LatestForDisplay(ctx context.Context, code string) ([]model.ClientPrice, error) {
	latest, err := s.LatestByClient(ctx, code)
	if err != nil {
		return nil, err
	}
	display := DedupeByProduct(latest)
	if len(display) == 0 {
		return []model.ClientPrice{}, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]model.ClientPrice, 0, len(display))
	for _, p := range display {
		cp := model.ClientPrice{Price: p}
		if prod, ok := byID[p.ProductID]; ok {
			cp.ProductName = prod.Name
			cp.ProductDescription = prod.Description
		}
		out = append(out, cp)
	}
	return out, nil
}

// Publish validates the batch and appends one row per (client, product)
// pair. Validation failures reject the whole batch before any write. An
// empty date defaults to today.
func (s *PriceServiceImpl) Publish(ctx context.Context, date string, clientCodes []string, amounts map[string]float64) (int, error) {
	if len(clientCodes) == 0 {
		return 0, fmt.Errorf("%w: no clients selected", errs.ErrValidation)
	}
	if len(amounts) == 0 {
		return 0, fmt.Errorf("%w: no prices to publish", errs.ErrValidation)
	}
	if date == "" {
		date = Today()
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return 0, fmt.Errorf("%w: date %q is not YYYY-MM-DD", errs.ErrValidation, date)
	}

	ids := make([]string, 0, len(amounts))
	for id, amount := range amounts {
		if amount < 0 {
			return 0, fmt.Errorf("%w: negative amount for product %s", errs.ErrValidation, id)
		}
		ids = append(ids, id)
	}
	sort.Strings(ids) // stable row order per client

	batch := make([]model.Price, 0, len(clientCodes)*len(ids))
	for _, code := range clientCodes {
		for _, id := range ids {
			batch = append(batch, model.Price{Date: date, ClientCode: code, ProductID: id, Amount: amounts[id]})
		}
	}
	if err := s.prices.Append(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Today returns the current date in the log's ISO format.
func Today() string { return time.Now().UTC().Format(dateLayout) }
