package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradehub/tradehub-server/internal/model"
)

var _ model.InvoiceStore = (*InvoiceRepository)(nil)

type InvoiceRepository struct {
	db *Connection
}

func NewInvoiceRepository(db *Connection) *InvoiceRepository {
	return &InvoiceRepository{
		db: db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice model.Invoice) error {
	query := `INSERT INTO invoices (id, seller_id, amount, status, date)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.SellerID, invoice.Amount, string(invoice.Status), invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

// Update modifies an invoice by id. A missing id is a silent no-op; the
// statement matches zero rows and that is not an error.
func (r *InvoiceRepository) Update(ctx context.Context, invoice model.Invoice) error {
	query := `UPDATE invoices
			  SET seller_id = $2, amount = $3, status = $4
			  WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.SellerID, invoice.Amount, string(invoice.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

// Delete removes an invoice by id. A missing id is a silent no-op.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	query := `SELECT id, seller_id, amount, status, date::text
			  FROM invoices
			  ORDER BY date DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		var invoice model.Invoice
		err := rows.Scan(
			&invoice.ID, &invoice.SellerID, &invoice.Amount, &invoice.Status, &invoice.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invoices: %w", err)
	}

	return invoices, nil
}
