// Package form validates raw form submissions and coerces them into typed
// records. Validation is all-or-nothing: a failed parse reports every
// rejected field and nothing reaches persistence.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tradehub/tradehub-server/internal/model"
)

// InvoiceForm is a raw invoice submission. Amount stays a string so that
// non-numeric input is a validation failure, not a binding panic. Any id or
// date fields supplied by the caller are ignored; the server assigns both.
type InvoiceForm struct {
	SellerID string `form:"sellerId" validate:"required"`
	Amount   string `form:"amount" validate:"required"`
	Status   string `form:"status" validate:"required,oneof=awaiting fulfilled"`
}

// UserForm is a raw add-user submission.
type UserForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	PasswordConfirm string `form:"passwordConfirm" validate:"required"`
}

// Invoice is a validated invoice submission with the amount coerced to a
// fixed-point decimal.
type Invoice struct {
	SellerID string
	Amount   decimal.Decimal
	Status   model.InvoiceStatus
}

// User is a validated add-user submission. Passwords are still plaintext at
// this point; hashing happens in the service layer.
type User struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseInvoice validates a raw invoice submission and coerces the amount.
func ParseInvoice(raw InvoiceForm) (Invoice, error) {
	fields := checkStruct(raw)

	amount, err := decimal.NewFromString(strings.TrimSpace(raw.Amount))
	if raw.Amount != "" && err != nil {
		fields = append(fields, FieldError{Field: "amount", Reason: "must be a number"})
	}

	if len(fields) > 0 {
		return Invoice{}, &ValidationError{Fields: fields}
	}

	return Invoice{
		SellerID: raw.SellerID,
		Amount:   amount,
		Status:   model.InvoiceStatus(raw.Status),
	}, nil
}

// ParseUser validates a raw add-user submission.
func ParseUser(raw UserForm) (User, error) {
	if fields := checkStruct(raw); len(fields) > 0 {
		return User{}, &ValidationError{Fields: fields}
	}

	return User{
		Name:            raw.Name,
		Email:           raw.Email,
		Password:        raw.Password,
		PasswordConfirm: raw.PasswordConfirm,
	}, nil
}

func checkStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return []FieldError{{Field: "", Reason: err.Error()}}
	}

	fields := make([]FieldError, 0, len(invalid))
	for _, fe := range invalid {
		fields = append(fields, FieldError{Field: fe.Field(), Reason: reason(fe)})
	}
	return fields
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
