package tabular

import (
	"context"
	"reflect"
	"testing"

	"github.com/madnessDann/portal-precios/internal/model"
)

func TestPriceRow_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, p := range []model.Price{
		{Date: "2024-01-03", ClientCode: "X1", ProductID: "GAS-95", Amount: 12.5},
		{Date: "2024-01-03", ClientCode: "X1", ProductID: "DIE-01", Amount: 0},
	} {
		if got := parsePrice(priceRow(p)); got != p {
			t.Fatalf("round trip: want %+v, got %+v", p, got)
		}
	}
}

func TestParsePrice_UnparsableAmount(t *testing.T) {
	t.Parallel()
	if got := parsePrice([]string{"2024-01-01", "X1", "GAS-95", "n/a"}); got.Amount != 0 {
		t.Fatalf("unparsable amount must read as 0, got %v", got.Amount)
	}
	if got := parsePrice([]string{"2024-01-01", "X1", "GAS-95"}); got.Amount != 0 {
		t.Fatalf("missing amount must read as 0, got %v", got.Amount)
	}
}

func TestPriceRepo_ListByClient(t *testing.T) {
	t.Parallel()
	r := NewPriceRepo(&fakeRowStore{readOut: map[string][][]string{
		PricesCollection: {
			{"fecha", "codigo_cliente", "producto_id", "precio"},
			{"2024-01-01", "X1", "GAS-95", "10"},
			{"2024-01-01", "X2", "GAS-95", "11"},
			{"2024-01-02", "X1", "GAS-95", "12"},
		},
	}})
	ctx := context.Background()

	got, err := r.ListByClient(ctx, "X1", "")
	if err != nil || len(got) != 2 {
		t.Fatalf("client filter: got %+v err=%v", got, err)
	}

	got, err = r.ListByClient(ctx, "X1", "2024-01-02")
	if err != nil {
		t.Fatalf("date filter: %v", err)
	}
	want := []model.Price{{Date: "2024-01-02", ClientCode: "X1", ProductID: "GAS-95", Amount: 12}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("date filter: want %+v, got %+v", want, got)
	}
}

func TestPriceRepo_Append_PreservesOrder(t *testing.T) {
	t.Parallel()
	fs := &fakeRowStore{}
	r := NewPriceRepo(fs)

	err := r.Append(context.Background(), []model.Price{
		{Date: "2024-01-03", ClientCode: "X1", ProductID: "GAS-95", Amount: 10},
		{Date: "2024-01-03", ClientCode: "X1", ProductID: "DIE-01", Amount: 5},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	want := [][]string{
		{"2024-01-03", "X1", "GAS-95", "10"},
		{"2024-01-03", "X1", "DIE-01", "5"},
	}
	if fs.appendCollection != PricesCollection || !reflect.DeepEqual(fs.appended, want) {
		t.Fatalf("append %v, want %v", fs.appended, want)
	}
}

func TestPriceRepo_Append_EmptyBatchIsNoop(t *testing.T) {
	t.Parallel()
	fs := &fakeRowStore{}
	r := NewPriceRepo(fs)
	if err := r.Append(context.Background(), nil); err != nil {
		t.Fatalf("empty append: %v", err)
	}
	if fs.appendCollection != "" {
		t.Fatalf("empty batch must not reach the store")
	}
}
