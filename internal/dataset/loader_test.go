package dataset_test

import (
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/orderaudit/internal/dataset"
	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

func TestDecode(t *testing.T) {
	doc := `{
		"store": {"name": "Shop", "currency": "EUR", "dateGenerated": "2024-01-01T00:00:00Z"},
		"orders": [
			{
				"id": "A-1",
				"createdAt": "2024-01-01T00:00:00Z",
				"status": "PAID",
				"customer": {"email": "a@b.co"},
				"shipping": {"fee": 1.5},
				"payment": {"captured": true},
				"lines": [{"sku": "X", "qty": 2, "price": 3.5, "category": "misc"}]
			}
		]
	}`

	ds, err := dataset.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if ds.Store == nil || ds.Store.Currency != "EUR" {
		t.Fatalf("store decoded incorrectly: %+v", ds.Store)
	}
	if len(ds.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(ds.Orders))
	}

	order := ds.Orders[0]
	if order.Status != domain.OrderStatusPaid {
		t.Fatalf("status = %q", order.Status)
	}
	if order.Refund != nil {
		t.Fatal("refund must be nil when absent")
	}
	if got := order.GMV(); got != 7 {
		t.Fatalf("GMV = %v, want 7", got)
	}
}

func TestDecodeParseError(t *testing.T) {
	_, err := dataset.Decode(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !domain.IsLoadError(err) {
		t.Fatalf("parse failure must be a load error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dataset.Load("testdata/does-not-exist.json")
	if err == nil {
		t.Fatal("expected read error")
	}
	if !domain.IsLoadError(err) {
		t.Fatalf("read failure must be a load error, got %v", err)
	}
}

func TestLoadReferenceFixture(t *testing.T) {
	ds, err := dataset.Load("../../testdata/orders.json")
	if err != nil {
		t.Fatalf("fixture must load: %v", err)
	}
	if len(ds.Orders) != 5 {
		t.Fatalf("expected 5 orders, got %d", len(ds.Orders))
	}
	if got := ds.TotalLineItems(); got != 7 {
		t.Fatalf("expected 7 line items, got %d", got)
	}
}
