package alerts

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"shopdash/internal/catalog"
	"shopdash/internal/forecast"
)

var asOf = time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

// Regular products have a base velocity of 1 and a noise span of 2, so their
// velocity can never cross the high-demand threshold of 4; top sellers start
// at 5 and always cross it. Tests lean on that to stay deterministic despite
// the forecaster's randomness.
func newGenerator(topSellers ...string) *Generator {
	names := map[string]struct{}{}
	for _, n := range topSellers {
		names[n] = struct{}{}
	}
	return NewGenerator(forecast.New(names, rand.NewSource(1)))
}

func product(id string, stock, threshold int) catalog.Product {
	return catalog.Product{
		ID:                id,
		Name:              "Product " + id,
		Stores:            map[string]int{catalog.StoreMain: stock},
		LowStockThreshold: threshold,
	}
}

func invoice(id string, date time.Time, storeID string, total float64) catalog.Invoice {
	return catalog.Invoice{
		ID:            id,
		InvoiceNumber: "INV-" + id,
		Date:          date,
		Total:         total,
		Status:        catalog.StatusPaid,
		StoreID:       storeID,
	}
}

func TestLowStockAlerts(t *testing.T) {
	g := newGenerator()
	products := []catalog.Product{
		product("1", 5, 20),  // below threshold
		product("2", 20, 20), // exactly at threshold, no alert (strict <)
		product("3", 50, 20), // healthy
		product("4", 0, 10),  // below threshold
	}

	got := g.Generate(products, nil, "", asOf)
	if len(got) != 2 {
		t.Fatalf("got %d alerts, want 2 low-stock alerts: %+v", len(got), got)
	}

	if got[0].ID != "low-stock-1" || got[1].ID != "low-stock-4" {
		t.Errorf("low-stock alerts out of product order: %s, %s", got[0].ID, got[1].ID)
	}
	for _, a := range got {
		if a.Severity != SeverityCritical {
			t.Errorf("low-stock alert %s severity = %s, want critical", a.ID, a.Severity)
		}
		if a.Read {
			t.Errorf("alert %s generated with read = true", a.ID)
		}
	}
	if !strings.Contains(got[0].Message, "(5 remaining)") {
		t.Errorf("low-stock message missing remaining quantity: %q", got[0].Message)
	}
}

func TestLowStockUsesScopeResolvedStock(t *testing.T) {
	g := newGenerator()
	p := catalog.Product{
		ID:                "1",
		Name:              "Product 1",
		Stores:            map[string]int{catalog.StoreMain: 100, catalog.StoreNorth: 2},
		LowStockThreshold: 10,
	}

	if got := g.Generate([]catalog.Product{p}, nil, "", asOf); len(got) != 0 {
		t.Errorf("total stock 102 should not trigger low-stock, got %+v", got)
	}
	got := g.Generate([]catalog.Product{p}, nil, catalog.StoreNorth, asOf)
	if len(got) != 1 || got[0].ID != "low-stock-1" {
		t.Errorf("NORTH stock 2 should trigger one low-stock alert, got %+v", got)
	}
}

func TestHighDemandAlert(t *testing.T) {
	products := []catalog.Product{
		product("1", 100, 5),
		product("2", 100, 5),
	}

	g := newGenerator("Product 1")
	got := g.Generate(products, nil, "", asOf)
	if len(got) != 1 {
		t.Fatalf("got %d alerts, want just the high-demand alert: %+v", len(got), got)
	}
	a := got[0]
	if a.ID != "high-demand-2026-02-15" || a.Severity != SeverityInfo {
		t.Errorf("unexpected high-demand alert: %+v", a)
	}
	if !strings.Contains(a.Message, "1 products") {
		t.Errorf("high-demand message should count one product: %q", a.Message)
	}

	// No top sellers means no velocity can exceed the threshold.
	g = newGenerator()
	if got := g.Generate(products, nil, "", asOf); len(got) != 0 {
		t.Errorf("expected no alerts without high-demand products, got %+v", got)
	}
}

func TestDailySummaryAlert(t *testing.T) {
	g := newGenerator()
	invoices := []catalog.Invoice{
		invoice("1", asOf, catalog.StoreMain, 757.55),
		invoice("2", asOf, catalog.StoreNorth, 100),
		invoice("3", asOf.AddDate(0, 0, -1), catalog.StoreMain, 981),
	}

	got := g.Generate(nil, invoices, "", asOf)
	if len(got) != 1 {
		t.Fatalf("got %d alerts, want just the daily summary: %+v", len(got), got)
	}
	a := got[0]
	if a.ID != "daily-summary-2026-02-15" || a.Severity != SeveritySuccess {
		t.Errorf("unexpected summary alert: %+v", a)
	}
	if !strings.Contains(a.Message, "$857.55") || !strings.Contains(a.Message, "2 invoices") {
		t.Errorf("summary should report $857.55 from 2 invoices: %q", a.Message)
	}

	// Store scope narrows the day's invoices.
	got = g.Generate(nil, invoices, catalog.StoreNorth, asOf)
	if len(got) != 1 || !strings.Contains(got[0].Message, "$100.00") {
		t.Errorf("NORTH summary should report $100.00: %+v", got)
	}

	// A day with no revenue emits nothing.
	if got := g.Generate(nil, invoices, "", asOf.AddDate(0, 0, 5)); len(got) != 0 {
		t.Errorf("expected no summary for an empty day, got %+v", got)
	}
}

func TestAlertOrdering(t *testing.T) {
	products := []catalog.Product{
		product("1", 2, 20),
		{
			ID: "2", Name: "Hot Item",
			Stores:            map[string]int{catalog.StoreMain: 100},
			LowStockThreshold: 5,
		},
	}
	invoices := []catalog.Invoice{invoice("1", asOf, catalog.StoreMain, 500)}

	g := newGenerator("Hot Item")
	got := g.Generate(products, invoices, "", asOf)
	if len(got) != 3 {
		t.Fatalf("got %d alerts, want 3: %+v", len(got), got)
	}

	wantOrder := []string{"low-stock-1", "high-demand-2026-02-15", "daily-summary-2026-02-15"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("alert %d = %s, want %s", i, got[i].ID, want)
		}
	}

	for i, a := range got {
		if a.Date != "2026-02-15" {
			t.Errorf("alert %d date = %s, want 2026-02-15", i, a.Date)
		}
	}

	// Same day, same inputs: ids collide by design (idempotent replacement).
	again := g.Generate(products, invoices, "", asOf)
	for i := range got {
		if got[i].ID != again[i].ID {
			t.Errorf("alert ids should be deterministic per day, got %s then %s", got[i].ID, again[i].ID)
		}
	}
}

func TestAlertMessageFormat(t *testing.T) {
	g := newGenerator()
	got := g.Generate([]catalog.Product{product("9", 3, 10)}, nil, "", asOf)
	if len(got) != 1 {
		t.Fatalf("want one alert, got %d", len(got))
	}
	want := fmt.Sprintf("Product %s is running low (%d remaining). Restock immediately.", "Product 9", 3)
	if got[0].Message != want {
		t.Errorf("message = %q, want %q", got[0].Message, want)
	}
}
