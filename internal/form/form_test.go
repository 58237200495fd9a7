package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradehub/tradehub-server/internal/model"
)

func TestParseInvoice(t *testing.T) {
	tests := []struct {
		name       string
		raw        InvoiceForm
		want       Invoice
		wantFields []string
	}{
		{
			name: "valid awaiting invoice",
			raw:  InvoiceForm{SellerID: "seller-1", Amount: "12.34", Status: "awaiting"},
			want: Invoice{
				SellerID: "seller-1",
				Amount:   decimal.RequireFromString("12.34"),
				Status:   model.InvoiceStatusAwaiting,
			},
		},
		{
			name: "valid fulfilled invoice with integer amount",
			raw:  InvoiceForm{SellerID: "seller-2", Amount: "250", Status: "fulfilled"},
			want: Invoice{
				SellerID: "seller-2",
				Amount:   decimal.RequireFromString("250"),
				Status:   model.InvoiceStatusFulfilled,
			},
		},
		{
			name:       "unknown status",
			raw:        InvoiceForm{SellerID: "seller-1", Amount: "12.34", Status: "paid"},
			wantFields: []string{"status"},
		},
		{
			name:       "non-numeric amount",
			raw:        InvoiceForm{SellerID: "seller-1", Amount: "twelve", Status: "awaiting"},
			wantFields: []string{"amount"},
		},
		{
			name:       "missing seller and amount reported together",
			raw:        InvoiceForm{Status: "awaiting"},
			wantFields: []string{"sellerId", "amount"},
		},
		{
			name:       "everything missing",
			raw:        InvoiceForm{},
			wantFields: []string{"sellerId", "amount", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInvoice(tt.raw)

			if len(tt.wantFields) > 0 {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.ElementsMatch(t, tt.wantFields, fieldNames(validationErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.SellerID, got.SellerID)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.True(t, tt.want.Amount.Equal(got.Amount))
		})
	}
}

func TestParseUser(t *testing.T) {
	tests := []struct {
		name       string
		raw        UserForm
		wantFields []string
	}{
		{
			name: "valid user",
			raw: UserForm{
				Name:            "Ada",
				Email:           "ada@example.com",
				Password:        "s3cret",
				PasswordConfirm: "s3cret",
			},
		},
		{
			name: "invalid email",
			raw: UserForm{
				Name:            "Ada",
				Email:           "not-an-email",
				Password:        "s3cret",
				PasswordConfirm: "s3cret",
			},
			wantFields: []string{"email"},
		},
		{
			name:       "missing everything",
			raw:        UserForm{},
			wantFields: []string{"name", "email", "password", "passwordConfirm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUser(tt.raw)

			if len(tt.wantFields) > 0 {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.ElementsMatch(t, tt.wantFields, fieldNames(validationErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw.Name, got.Name)
			assert.Equal(t, tt.raw.Email, got.Email)
			assert.Equal(t, tt.raw.Password, got.Password)
			assert.Equal(t, tt.raw.PasswordConfirm, got.PasswordConfirm)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "email", Reason: "must be a valid email address"},
		{Field: "name", Reason: "is required"},
	}}

	assert.Equal(t, "validation failed: email must be a valid email address; name is required", err.Error())
}

func fieldNames(err *ValidationError) []string {
	names := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		names = append(names, f.Field)
	}
	return names
}
