package alerts

import (
	"fmt"
	"time"

	"shopdash/internal/catalog"
	"shopdash/internal/forecast"
)

// Alert severities.
const (
	SeverityInfo     = "info"
	SeveritySuccess  = "success"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

const dateLayout = "2006-01-02"

// Alert is a derived operational signal. Alerts are regenerated from scratch
// on every call; no read/dismiss state is persisted, so Read is always false
// on generation. IDs are deterministic per category and target, so two calls
// on the same day produce colliding ids that callers must treat as
// idempotent replacements.
type Alert struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Read     bool   `json:"read"`
}

// Generator builds the alert list from catalog snapshots. It leans on the
// demand forecaster for velocity estimates, which makes the high-demand rule
// intentionally noisy.
type Generator struct {
	forecaster *forecast.Forecaster
}

// NewGenerator creates a Generator backed by the given forecaster.
func NewGenerator(f *forecast.Forecaster) *Generator {
	return &Generator{forecaster: f}
}

// Generate applies the alert rules in order: one critical alert per product
// whose scope stock is strictly below its threshold, a single info alert when
// any product's velocity exceeds the high-demand threshold, and a success
// alert summarizing the asOf day's revenue when it is non-zero. Rules whose
// trigger is empty contribute nothing.
func (g *Generator) Generate(products []catalog.Product, invoices []catalog.Invoice, storeID string, asOf time.Time) []Alert {
	alerts := []Alert{}
	day := asOf.Format(dateLayout)

	for _, p := range products {
		stock := forecast.ResolveStock(p, storeID)
		if stock < p.LowStockThreshold {
			alerts = append(alerts, Alert{
				ID:       "low-stock-" + p.ID,
				Severity: SeverityCritical,
				Title:    "Low Stock Warning",
				Message:  fmt.Sprintf("Product %s is running low (%d remaining). Restock immediately.", p.Name, stock),
				Date:     day,
			})
		}
	}

	highDemand := 0
	for _, p := range products {
		if g.forecaster.SalesVelocity(p, storeID) > forecast.HighDemandVelocity {
			highDemand++
		}
	}
	if highDemand > 0 {
		alerts = append(alerts, Alert{
			ID:       "high-demand-" + day,
			Severity: SeverityInfo,
			Title:    "High Demand Detected",
			Message:  fmt.Sprintf("%d products are experiencing widely high sales velocity today.", highDemand),
			Date:     day,
		})
	}

	revenue := 0.0
	count := 0
	for _, inv := range invoices {
		if inv.Date.Format(dateLayout) != day {
			continue
		}
		if storeID != "" && inv.StoreID != storeID {
			continue
		}
		revenue += inv.Total
		count++
	}
	if revenue > 0 {
		alerts = append(alerts, Alert{
			ID:       "daily-summary-" + day,
			Severity: SeveritySuccess,
			Title:    "Daily Sales Summary",
			Message:  fmt.Sprintf("Total revenue for today so far is $%.2f from %d invoices.", revenue, count),
			Date:     day,
		})
	}

	return alerts
}
