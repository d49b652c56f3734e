package model

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already exists")
	ErrInvalidProductID = errors.New("invalid product ID")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidSize      = errors.New("invalid size")

	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderAlreadyPaid = errors.New("order already paid")
	ErrEmptyOrder       = errors.New("order has no line items")
	ErrInvalidOrderID   = errors.New("invalid order ID")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrUnknownMethod    = errors.New("unknown payment method")

	ErrEntryNotFound = errors.New("journal entry not found")

	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")
)

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

type ValidationErrors struct {
	Errors []ValidationError
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	return v.Errors[0].Message
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}
