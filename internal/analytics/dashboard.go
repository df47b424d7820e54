package analytics

import "shopdash/internal/catalog"

// Summary is the dashboard KPI block.
type Summary struct {
	TotalProducts   int                 `json:"total_products"`
	TotalRevenue    float64             `json:"total_revenue"`
	TotalProfit     float64             `json:"total_profit"`
	PendingInvoices int                 `json:"pending_invoices"`
	LowStock        []catalog.Product   `json:"low_stock"`
	TopSellers      []catalog.TopSeller `json:"top_sellers"`
}

// BuildSummary computes the dashboard KPIs from the current record set.
// PendingInvoices counts pending and overdue invoices alike.
//
// The low-stock list uses total stock <= threshold, matching the product
// status badge; the low-stock alert rule uses strict <. The two comparisons
// disagree in the source system and both are kept as observed.
func BuildSummary(products []catalog.Product, invoices []catalog.Invoice, revenue []catalog.RevenuePoint, topSellers []catalog.TopSeller) Summary {
	s := Summary{
		TotalProducts: len(products),
		TopSellers:    topSellers,
		LowStock:      []catalog.Product{},
	}

	for _, p := range products {
		if p.TotalStock() <= p.LowStockThreshold {
			s.LowStock = append(s.LowStock, p)
		}
	}

	for _, inv := range invoices {
		if inv.Status == catalog.StatusPending || inv.Status == catalog.StatusOverdue {
			s.PendingInvoices++
		}
	}

	for _, point := range revenue {
		s.TotalRevenue += point.Revenue
		s.TotalProfit += point.Profit
	}

	return s
}
