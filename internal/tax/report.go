package tax

import (
	"time"

	"github.com/shopspring/decimal"

	"shopdash/internal/catalog"
)

// DefaultRatePercent is the GST bucket the whole monthly tax total is
// attributed to. Invoices do not snapshot a per-line tax rate, so the
// breakdown cannot be apportioned across actual item rates; attributing
// everything to the common 18% slab is a documented approximation.
const DefaultRatePercent = 18

const monthLayout = "Jan 2006"

var hundred = decimal.NewFromInt(100)

// LineTax is the tax arithmetic for a single invoice line. No rounding is
// applied; display rounding is the caller's concern.
type LineTax struct {
	TaxableValue float64 `json:"taxable_value"`
	TaxAmount    float64 `json:"tax_amount"`
	Total        float64 `json:"total"`
}

// ItemTax computes the taxable value, tax amount and gross total for a line
// of quantity units at unitPrice with the given GST rate percentage.
func ItemTax(unitPrice float64, quantity int, ratePercent float64) LineTax {
	taxable := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	amount := taxable.Mul(decimal.NewFromFloat(ratePercent)).Div(hundred)
	return LineTax{
		TaxableValue: taxable.InexactFloat64(),
		TaxAmount:    amount.InexactFloat64(),
		Total:        taxable.Add(amount).InexactFloat64(),
	}
}

// MonthlyReport aggregates the invoices of one calendar month.
type MonthlyReport struct {
	Month         string          `json:"month"`
	TotalInvoices int             `json:"total_invoices"`
	TaxableValue  float64         `json:"taxable_value"`
	TotalGST      float64         `json:"total_gst"`
	Breakdown     map[int]float64 `json:"breakdown"`
}

// MonthlyReports groups invoices by the month and year of their issue date.
// The stored subtotal and tax fields are summed as-is, never recomputed from
// items. Groups appear in first-encountered order; callers wanting
// chronological order sort explicitly.
func MonthlyReports(invoices []catalog.Invoice) []MonthlyReport {
	type accumulator struct {
		count   int
		taxable decimal.Decimal
		gst     decimal.Decimal
	}

	order := []string{}
	groups := map[string]*accumulator{}

	for _, inv := range invoices {
		key := monthKey(inv.Date)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
			order = append(order, key)
		}
		acc.count++
		acc.taxable = acc.taxable.Add(decimal.NewFromFloat(inv.Subtotal))
		acc.gst = acc.gst.Add(decimal.NewFromFloat(inv.Tax))
	}

	reports := make([]MonthlyReport, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		reports = append(reports, MonthlyReport{
			Month:         key,
			TotalInvoices: acc.count,
			TaxableValue:  acc.taxable.InexactFloat64(),
			TotalGST:      acc.gst.InexactFloat64(),
			Breakdown:     map[int]float64{DefaultRatePercent: acc.gst.InexactFloat64()},
		})
	}
	return reports
}

func monthKey(t time.Time) string {
	return t.Format(monthLayout)
}
