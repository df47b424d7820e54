package billing

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"shopdash/internal/audit"
	"shopdash/internal/catalog"
)

// ErrInvalidTransition is returned when an invoice cannot move to the
// requested status from its current one.
var ErrInvalidTransition = errors.New("invalid status transition")

// Service provides invoice lookup and the refund flow on a catalog Storage.
// Mutations are recorded in the audit log.
type Service struct {
	storage catalog.Storage
	trail   *audit.Log
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage catalog.Storage, trail *audit.Log, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		trail:   trail,
		logger:  logger,
	}
}

// LookupInvoice finds an invoice by its invoice number. This is the one
// negative-result contract in the system: a miss returns
// catalog.ErrNotFound and must be surfaced to the user, not defaulted.
func (s *Service) LookupInvoice(number string) (*catalog.Invoice, error) {
	return s.storage.InvoiceByNumber(number)
}

// RefundInvoice marks the invoice with the given number as refunded. Already
// refunded invoices cannot be refunded again. A successful refund appends a
// warning entry to the audit trail.
func (s *Service) RefundInvoice(number string) (*catalog.Invoice, error) {
	inv, err := s.storage.InvoiceByNumber(number)
	if err != nil {
		return nil, err
	}

	if inv.Status == catalog.StatusRefunded {
		return nil, ErrInvalidTransition
	}

	inv.Status = catalog.StatusRefunded
	if err := s.storage.SaveInvoice(*inv); err != nil {
		s.logger.Error("failed to save refunded invoice", zap.String("invoice_number", number), zap.Error(err))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.trail.Append("REFUND", fmt.Sprintf("Processed refund for %s", inv.InvoiceNumber), audit.SeverityWarning)
	s.logger.Info("invoice refunded", zap.String("invoice_number", inv.InvoiceNumber), zap.String("store_id", inv.StoreID))
	return inv, nil
}
