package model

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceStore defines persistence operations for invoices.
type InvoiceStore interface {
	Create(ctx context.Context, invoice Invoice) error
	Update(ctx context.Context, invoice Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Invoice, error)
}

// Invoice represents a stored invoice. Amount is held in minor currency
// units (cents) so no floating point ever touches monetary state.
type Invoice struct {
	ID       uuid.UUID
	SellerID string
	Amount   int64
	Status   InvoiceStatus
	Date     string
}

// InvoiceStatus enumerates invoice fulfillment states.
type InvoiceStatus string

const (
	// InvoiceStatusAwaiting marks an invoice that has not been paid yet.
	InvoiceStatusAwaiting InvoiceStatus = "awaiting"
	// InvoiceStatusFulfilled marks a paid invoice.
	InvoiceStatusFulfilled InvoiceStatus = "fulfilled"
)
