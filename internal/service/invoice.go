package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tradehub/tradehub-server/internal/form"
	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
)

// Invoice implements the invoice actions: create, update, delete, list.
// Each action is stateless and issues a single statement; cache
// invalidation of the list view follows every successful mutation.
type Invoice struct {
	invoiceStore model.InvoiceStore
	cache        model.CacheInvalidator
	logger       *logger.Logger
	now          func() time.Time
}

// NewInvoice creates the invoice service.
func NewInvoice(
	invoiceStore model.InvoiceStore,
	cache model.CacheInvalidator,
	logger *logger.Logger,
) *Invoice {
	return &Invoice{
		invoiceStore: invoiceStore,
		cache:        cache,
		logger:       logger,
		now:          time.Now,
	}
}

// Create persists a new invoice. The id and issue date are assigned here;
// anything the caller supplied for them has already been discarded by the
// form schema. Store errors propagate to the caller.
func (s *Invoice) Create(ctx context.Context, params form.Invoice) error {
	invoice := model.Invoice{
		ID:       uuid.New(),
		SellerID: params.SellerID,
		Amount:   form.MinorUnits(params.Amount),
		Status:   params.Status,
		Date:     form.DateStamp(s.now()),
	}

	if err := s.invoiceStore.Create(ctx, invoice); err != nil {
		s.logger.Error("Invoice service: failed to create invoice",
			"seller_id", params.SellerID,
			"error", err.Error())
		return err
	}

	s.invalidateList(ctx)

	s.logger.Info("Invoice service: invoice created",
		"invoice_id", invoice.ID,
		"seller_id", invoice.SellerID)

	return nil
}

// Update modifies an invoice in place. An id matching no row is a silent
// no-op at the store level and is not checked here.
func (s *Invoice) Update(ctx context.Context, id uuid.UUID, params form.Invoice) error {
	invoice := model.Invoice{
		ID:       id,
		SellerID: params.SellerID,
		Amount:   form.MinorUnits(params.Amount),
		Status:   params.Status,
	}

	if err := s.invoiceStore.Update(ctx, invoice); err != nil {
		s.logger.Error("Invoice service: failed to update invoice",
			"invoice_id", id,
			"error", err.Error())
		return err
	}

	s.invalidateList(ctx)

	return nil
}

// Delete removes an invoice. An absent id is a silent no-op.
func (s *Invoice) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.invoiceStore.Delete(ctx, id); err != nil {
		s.logger.Error("Invoice service: failed to delete invoice",
			"invoice_id", id,
			"error", err.Error())
		return err
	}

	s.invalidateList(ctx)

	return nil
}

// List returns all invoices, newest first.
func (s *Invoice) List(ctx context.Context) ([]model.Invoice, error) {
	return s.invoiceStore.List(ctx)
}

// invalidateList drops the cached invoice list view. A failed invalidation
// only makes the cache stale until its TTL, so it is logged, not returned.
func (s *Invoice) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, model.InvoiceListPath); err != nil {
		s.logger.Warn("Invoice service: failed to invalidate list cache",
			"path", model.InvoiceListPath,
			"error", err.Error())
	}
}
