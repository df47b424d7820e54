package tax

import (
	"testing"
	"time"

	"shopdash/internal/catalog"
)

func invoiceOn(date time.Time, subtotal, taxAmount float64) catalog.Invoice {
	return catalog.Invoice{
		ID:       date.Format("20060102"),
		Date:     date,
		Subtotal: subtotal,
		Tax:      taxAmount,
		Total:    subtotal + taxAmount,
	}
}

func TestItemTax(t *testing.T) {
	got := ItemTax(100, 2, 18)
	if got.TaxableValue != 200 {
		t.Errorf("taxable value = %v, want 200", got.TaxableValue)
	}
	if got.TaxAmount != 36 {
		t.Errorf("tax amount = %v, want 36", got.TaxAmount)
	}
	if got.Total != 236 {
		t.Errorf("total = %v, want 236", got.Total)
	}
}

func TestItemTaxFractionalRate(t *testing.T) {
	got := ItemTax(8.50, 50, 5)
	if got.TaxableValue != 425 {
		t.Errorf("taxable value = %v, want 425", got.TaxableValue)
	}
	if got.TaxAmount != 21.25 {
		t.Errorf("tax amount = %v, want 21.25", got.TaxAmount)
	}
	if got.Total != 446.25 {
		t.Errorf("total = %v, want 446.25", got.Total)
	}
}

func TestMonthlyReportsGrouping(t *testing.T) {
	invoices := []catalog.Invoice{
		invoiceOn(time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC), 100, 10),
		invoiceOn(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), 200, 20),
		invoiceOn(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 50, 5),
	}

	got := MonthlyReports(invoices)
	if len(got) != 2 {
		t.Fatalf("got %d groups, want 2", len(got))
	}

	feb := got[0]
	if feb.Month != "Feb 2026" {
		t.Errorf("first group = %s, want Feb 2026 (first-encountered order)", feb.Month)
	}
	if feb.TotalInvoices != 2 {
		t.Errorf("Feb invoice count = %d, want 2", feb.TotalInvoices)
	}
	if feb.TaxableValue != 300 {
		t.Errorf("Feb taxable value = %v, want 300", feb.TaxableValue)
	}
	if feb.TotalGST != 30 {
		t.Errorf("Feb GST = %v, want 30", feb.TotalGST)
	}

	mar := got[1]
	if mar.Month != "Mar 2026" || mar.TotalInvoices != 1 || mar.TotalGST != 5 {
		t.Errorf("unexpected Mar group: %+v", mar)
	}
}

func TestMonthlyReportsDefaultRateBucket(t *testing.T) {
	invoices := []catalog.Invoice{
		invoiceOn(time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC), 695, 62.55),
	}

	got := MonthlyReports(invoices)
	if len(got) != 1 {
		t.Fatalf("got %d groups, want 1", len(got))
	}

	breakdown := got[0].Breakdown
	if len(breakdown) != 1 {
		t.Fatalf("breakdown has %d buckets, want only the default rate: %+v", len(breakdown), breakdown)
	}
	// The whole month's tax lands in the 18% bucket regardless of the actual
	// per-item rates, since invoices carry no per-line rate snapshot.
	if breakdown[DefaultRatePercent] != 62.55 {
		t.Errorf("breakdown[%d] = %v, want 62.55", DefaultRatePercent, breakdown[DefaultRatePercent])
	}
}

func TestMonthlyReportsTrustStoredTotals(t *testing.T) {
	// The stored subtotal/tax disagree with the line items on purpose;
	// aggregation must use the stored fields.
	inv := invoiceOn(time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC), 500, 90)
	inv.Items = []catalog.InvoiceItem{
		{ProductID: "1", ProductName: "Widget", Quantity: 1, UnitPrice: 1, Total: 1},
	}

	got := MonthlyReports([]catalog.Invoice{inv})
	if got[0].TaxableValue != 500 || got[0].TotalGST != 90 {
		t.Errorf("aggregation recomputed from items: %+v", got[0])
	}
}

func TestMonthlyReportsEmpty(t *testing.T) {
	if got := MonthlyReports(nil); len(got) != 0 {
		t.Errorf("expected no groups for no invoices, got %+v", got)
	}
}
