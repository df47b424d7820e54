package catalog

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when an invoice with the given number is not found.
var ErrNotFound = errors.New("invoice not found")

// ErrEmptyID is returned when trying to save an invoice with an empty ID.
var ErrEmptyID = errors.New("empty invoice ID")

// Storage is the main interface for the catalog record store.
type Storage interface {
	Products() []Product
	Stores() []Store
	Invoices() []Invoice
	InvoiceByNumber(number string) (*Invoice, error)
	SaveInvoice(inv Invoice) error
	TopSellers() []TopSeller
	RevenueSeries() []RevenuePoint
}

// LocalStorage provides an in-memory implementation of Storage. Reads hand
// out copies so callers can never mutate the shared record set.
type LocalStorage struct {
	mu         sync.RWMutex
	products   []Product
	stores     []Store
	invoices   []Invoice
	topSellers []TopSeller
	revenue    []RevenuePoint
}

// NewLocalStorage instantiates an empty LocalStorage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

// Products returns a copy of all catalog products in insertion order.
func (l *LocalStorage) Products() []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Product, len(l.products))
	copy(out, l.products)
	return out
}

// Stores returns a copy of all registered stores.
func (l *LocalStorage) Stores() []Store {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Store, len(l.stores))
	copy(out, l.stores)
	return out
}

// Invoices returns a copy of all invoices in insertion order.
func (l *LocalStorage) Invoices() []Invoice {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Invoice, len(l.invoices))
	copy(out, l.invoices)
	return out
}

// InvoiceByNumber retrieves an invoice by its human-facing invoice number.
// Returns ErrNotFound if no invoice matches.
func (l *LocalStorage) InvoiceByNumber(number string) (*Invoice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, inv := range l.invoices {
		if inv.InvoiceNumber == number {
			found := inv
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// SaveInvoice inserts or replaces an invoice keyed by its ID.
// Returns ErrEmptyID if the invoice has an empty ID.
func (l *LocalStorage) SaveInvoice(inv Invoice) error {
	if inv.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.invoices {
		if l.invoices[i].ID == inv.ID {
			l.invoices[i] = inv
			return nil
		}
	}
	l.invoices = append(l.invoices, inv)
	return nil
}

// TopSellers returns a copy of the historical top-seller list.
func (l *LocalStorage) TopSellers() []TopSeller {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]TopSeller, len(l.topSellers))
	copy(out, l.topSellers)
	return out
}

// RevenueSeries returns a copy of the daily revenue/profit series.
func (l *LocalStorage) RevenueSeries() []RevenuePoint {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]RevenuePoint, len(l.revenue))
	copy(out, l.revenue)
	return out
}

// TopSellerNames returns the set of top-seller product names, keyed for
// membership tests by the demand forecaster.
func TopSellerNames(sellers []TopSeller) map[string]struct{} {
	names := make(map[string]struct{}, len(sellers))
	for _, s := range sellers {
		names[s.Name] = struct{}{}
	}
	return names
}
