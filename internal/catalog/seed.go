package catalog

import "time"

// Store ids used throughout the seed data.
const (
	StoreMain  = "MAIN"
	StoreNorth = "NORTH"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// NewSeededStorage builds a LocalStorage preloaded with the demo record set:
// two stores, ten products, four invoices, the historical top-seller list and
// a two-week revenue series. All state lives for the process only.
func NewSeededStorage() *LocalStorage {
	l := NewLocalStorage()

	l.stores = []Store{
		{ID: StoreMain, Name: "Main Branch", Location: "Downtown"},
		{ID: StoreNorth, Name: "North Wing", Location: "Uptown"},
	}

	l.products = []Product{
		{ID: "1", Name: "Wireless Mouse", Category: "Electronics", CostPrice: 12, SellingPrice: 25, Stores: map[string]int{StoreMain: 150, StoreNorth: 50}, LowStockThreshold: 20, SKU: "EL-001", GSTRate: 18},
		{ID: "2", Name: "USB-C Hub", Category: "Electronics", CostPrice: 18, SellingPrice: 45, Stores: map[string]int{StoreMain: 8, StoreNorth: 0}, LowStockThreshold: 15, SKU: "EL-002", GSTRate: 18},
		{ID: "3", Name: "Mechanical Keyboard", Category: "Electronics", CostPrice: 35, SellingPrice: 89, Stores: map[string]int{StoreMain: 42, StoreNorth: 12}, LowStockThreshold: 10, SKU: "EL-003", GSTRate: 18},
		{ID: "4", Name: "Cotton T-Shirt (L)", Category: "Clothing", CostPrice: 5, SellingPrice: 19.99, Stores: map[string]int{StoreMain: 200, StoreNorth: 100}, LowStockThreshold: 30, SKU: "CL-001", GSTRate: 5},
		{ID: "5", Name: "Denim Jeans", Category: "Clothing", CostPrice: 15, SellingPrice: 49.99, Stores: map[string]int{StoreMain: 3, StoreNorth: 5}, LowStockThreshold: 10, SKU: "CL-002", GSTRate: 12},
		{ID: "6", Name: "Green Tea (Box)", Category: "Food & Beverages", CostPrice: 3, SellingPrice: 8.50, Stores: map[string]int{StoreMain: 500, StoreNorth: 0}, LowStockThreshold: 50, SKU: "FB-001", GSTRate: 5},
		{ID: "7", Name: "Protein Bars (12pk)", Category: "Food & Beverages", CostPrice: 8, SellingPrice: 18, Stores: map[string]int{StoreMain: 75, StoreNorth: 25}, LowStockThreshold: 20, SKU: "FB-002", GSTRate: 12},
		{ID: "8", Name: "A4 Paper Ream", Category: "Office Supplies", CostPrice: 2.50, SellingPrice: 6.99, Stores: map[string]int{StoreMain: 12, StoreNorth: 40}, LowStockThreshold: 25, SKU: "OS-001", GSTRate: 12},
		{ID: "9", Name: "Ballpoint Pens (10pk)", Category: "Office Supplies", CostPrice: 1.20, SellingPrice: 4.50, Stores: map[string]int{StoreMain: 300, StoreNorth: 150}, LowStockThreshold: 40, SKU: "OS-002", GSTRate: 12},
		{ID: "10", Name: "Power Drill", Category: "Hardware", CostPrice: 40, SellingPrice: 95, Stores: map[string]int{StoreMain: 18, StoreNorth: 2}, LowStockThreshold: 5, SKU: "HW-001", GSTRate: 18},
	}

	l.invoices = []Invoice{
		{
			ID: "1", InvoiceNumber: "INV-001", CustomerName: "Acme Corp", Date: day(2026, time.February, 15),
			Items: []InvoiceItem{
				{ProductID: "1", ProductName: "Wireless Mouse", Quantity: 10, UnitPrice: 25, Total: 250},
				{ProductID: "3", ProductName: "Mechanical Keyboard", Quantity: 5, UnitPrice: 89, Total: 445},
			},
			Subtotal: 695, Tax: 62.55, Total: 757.55, Status: StatusPaid, StoreID: StoreMain, PaymentMethod: PaymentCredit,
		},
		{
			ID: "2", InvoiceNumber: "INV-002", CustomerName: "TechStart Inc", Date: day(2026, time.February, 14),
			Items: []InvoiceItem{
				{ProductID: "2", ProductName: "USB-C Hub", Quantity: 20, UnitPrice: 45, Total: 900},
			},
			Subtotal: 900, Tax: 81, Total: 981, Status: StatusPending, StoreID: StoreMain, PaymentMethod: PaymentUPI,
		},
		{
			ID: "3", InvoiceNumber: "INV-003", CustomerName: "Daily Grind Cafe", Date: day(2026, time.February, 10),
			Items: []InvoiceItem{
				{ProductID: "6", ProductName: "Green Tea (Box)", Quantity: 50, UnitPrice: 8.50, Total: 425},
				{ProductID: "7", ProductName: "Protein Bars (12pk)", Quantity: 30, UnitPrice: 18, Total: 540},
			},
			Subtotal: 965, Tax: 86.85, Total: 1051.85, Status: StatusPaid, StoreID: StoreNorth, PaymentMethod: PaymentCash,
		},
		{
			ID: "4", InvoiceNumber: "INV-004", CustomerName: "BuildRight LLC", Date: day(2026, time.February, 8),
			Items: []InvoiceItem{
				{ProductID: "10", ProductName: "Power Drill", Quantity: 3, UnitPrice: 95, Total: 285},
			},
			Subtotal: 285, Tax: 25.65, Total: 310.65, Status: StatusOverdue, StoreID: StoreMain, PaymentMethod: PaymentCard,
		},
	}

	l.topSellers = []TopSeller{
		{Name: "Wireless Mouse", Sold: 342, Revenue: 8550},
		{Name: "Green Tea (Box)", Sold: 280, Revenue: 2380},
		{Name: "Cotton T-Shirt (L)", Sold: 215, Revenue: 4297},
		{Name: "Mechanical Keyboard", Sold: 156, Revenue: 13884},
		{Name: "Ballpoint Pens (10pk)", Sold: 140, Revenue: 630},
	}

	l.revenue = []RevenuePoint{
		{Date: "Feb 1", Revenue: 1200, Profit: 480},
		{Date: "Feb 2", Revenue: 980, Profit: 390},
		{Date: "Feb 3", Revenue: 1450, Profit: 620},
		{Date: "Feb 4", Revenue: 870, Profit: 340},
		{Date: "Feb 5", Revenue: 2100, Profit: 890},
		{Date: "Feb 6", Revenue: 1680, Profit: 710},
		{Date: "Feb 7", Revenue: 1320, Profit: 560},
		{Date: "Feb 8", Revenue: 1890, Profit: 780},
		{Date: "Feb 9", Revenue: 2400, Profit: 1020},
		{Date: "Feb 10", Revenue: 1750, Profit: 740},
		{Date: "Feb 11", Revenue: 1100, Profit: 450},
		{Date: "Feb 12", Revenue: 2050, Profit: 870},
		{Date: "Feb 13", Revenue: 1600, Profit: 680},
		{Date: "Feb 14", Revenue: 2800, Profit: 1190},
		{Date: "Feb 15", Revenue: 3100, Profit: 1320},
	}

	return l
}
