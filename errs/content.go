package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// The four failure kinds the content core can produce. Every error that
// crosses a service boundary wraps exactly one of these, so handlers can
// map them to status codes without inspecting message strings.
var (
	ErrValidation = errors.New("validation failed")
	ErrStore      = errors.New("document store failure")
	ErrStorage    = errors.New("object storage failure")
	ErrEmail      = errors.New("email delivery failure")
)

// Validation Errors (caught before any I/O)

func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("invalid field %s: %s", field, reason),
		Field:      field,
	}
}

func NewMissingFieldError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("missing required field: %s", field),
		Field:      field,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// Document Store Errors

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewStoreError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStore,
		Details:    fmt.Sprintf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}

// Object Storage Errors

func NewStorageError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorage,
		Details:    fmt.Sprintf("failed to %s object", operation),
		Cause:      cause,
	}
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// Email Errors

func NewEmailError(stage string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmail,
		Details:    fmt.Sprintf("email %s failed", stage),
		Cause:      cause,
	}
}

func IsEmail(err error) bool {
	return errors.Is(err, ErrEmail)
}
