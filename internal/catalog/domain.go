package catalog

import "time"

// Invoice lifecycle statuses.
const (
	StatusPaid     = "paid"
	StatusPending  = "pending"
	StatusOverdue  = "overdue"
	StatusRefunded = "refunded"
)

// Payment methods accepted at the counter. An empty method is treated as cash.
const (
	PaymentCash   = "Cash"
	PaymentUPI    = "UPI"
	PaymentCard   = "Card"
	PaymentCredit = "Credit"
)

// Store represents a physical branch. An empty store id in a query means
// "aggregate across all stores".
type Store struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Product is a catalog entry. Stock is tracked per store; the map key is the
// store id and the value the on-hand quantity at that store.
type Product struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	CostPrice         float64        `json:"cost_price"`
	SellingPrice      float64        `json:"selling_price"`
	Stores            map[string]int `json:"stores"`
	LowStockThreshold int            `json:"low_stock_threshold"`
	SKU               string         `json:"sku"`
	GSTRate           float64        `json:"gst_rate"`
}

// TotalStock sums the on-hand quantity across all stores.
func (p Product) TotalStock() int {
	total := 0
	for _, qty := range p.Stores {
		total += qty
	}
	return total
}

// InvoiceItem is a line on an invoice. Product name and price are snapshots
// taken at invoice creation, not live references into the catalog.
type InvoiceItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Invoice is a billing record. Subtotal, Tax and Total are computed once at
// creation and are authoritative; reporting never recomputes them from Items.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CustomerName  string        `json:"customer_name"`
	Date          time.Time     `json:"date"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	StoreID       string        `json:"store_id"`
	PaymentMethod string        `json:"payment_method"`
}

// TopSeller is a historical best-seller entry used by the dashboard and as a
// popularity signal by the demand forecaster.
type TopSeller struct {
	Name    string  `json:"name"`
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

// RevenuePoint is one day in the revenue/profit series shown on the dashboard.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}
