package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tradehub/tradehub-server/internal/form"
	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
)

// InvoiceService defines the invoice actions the handler exposes.
type InvoiceService interface {
	Create(ctx context.Context, params form.Invoice) error
	Update(ctx context.Context, id uuid.UUID, params form.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Invoice, error)
}

// Invoice handles HTTP endpoints for invoice management.
type Invoice struct {
	service InvoiceService
	logger  *logger.Logger
}

// NewInvoice creates a new Invoice handler.
func NewInvoice(service InvoiceService, logger *logger.Logger) *Invoice {
	return &Invoice{
		service: service,
		logger:  logger,
	}
}

type invoiceResponse struct {
	ID       uuid.UUID `json:"id"`
	SellerID string    `json:"sellerId"`
	Amount   int64     `json:"amount"`
	Status   string    `json:"status"`
	Date     string    `json:"date"`
}

// Create validates the submitted form, persists a new invoice and redirects
// to the invoice list.
func (h *Invoice) Create(c *gin.Context) {
	params, err := form.ParseInvoice(invoiceForm(c))
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), params); err != nil {
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, model.InvoiceListPath)
}

// Update validates the submitted form, updates the invoice by id and
// redirects to the invoice list.
func (h *Invoice) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, &form.ValidationError{Fields: []form.FieldError{
			{Field: "id", Reason: "must be a valid invoice id"},
		}})
		return
	}

	params, err := form.ParseInvoice(invoiceForm(c))
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, params); err != nil {
		handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, model.InvoiceListPath)
}

// Delete removes the invoice by id. It is invoked from the rendered list,
// so it only invalidates the cache and does not redirect.
func (h *Invoice) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, &form.ValidationError{Fields: []form.FieldError{
			{Field: "id", Reason: "must be a valid invoice id"},
		}})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns all invoices as JSON, newest first.
func (h *Invoice) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response := make([]invoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		response = append(response, invoiceResponse{
			ID:       invoice.ID,
			SellerID: invoice.SellerID,
			Amount:   invoice.Amount,
			Status:   string(invoice.Status),
			Date:     invoice.Date,
		})
	}

	c.JSON(http.StatusOK, gin.H{"invoices": response})
}

func invoiceForm(c *gin.Context) form.InvoiceForm {
	return form.InvoiceForm{
		SellerID: c.PostForm("sellerId"),
		Amount:   c.PostForm("amount"),
		Status:   c.PostForm("status"),
	}
}
