package model

import "context"

// InvoiceListPath is the cached view every invoice mutation invalidates and
// the route create/update redirect to.
const InvoiceListPath = "/dashboard/invoices"

// CacheInvalidator drops the cached rendering of a path so the next request
// regenerates it from current store state.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}
