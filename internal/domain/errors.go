package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a broken wizard invariant: state the user cannot fix
// by correcting a form field.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// ErrNotFound is wrapped by every integrity failure.
var ErrNotFound = errors.New("not found")

const (
	ErrCodeSelectedItemNotFound = "SELECTED_ITEM_NOT_FOUND"
	ErrCodeUnknownOrganisation  = "UNKNOWN_ORGANISATION"
	ErrCodeMissingSelection     = "MISSING_SELECTION"
)

func NewSelectedItemNotFoundError(listKey, id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeSelectedItemNotFound,
		Message: fmt.Sprintf("no item with id %q in session list %q", id, listKey),
		Err:     ErrNotFound,
	}
}

func NewUnknownOrganisationError(odsCode string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownOrganisation,
		Message: fmt.Sprintf("ods code %q is not available to this user", odsCode),
		Err:     ErrNotFound,
	}
}

// NewMissingSelectionError is returned when a step is reached without the
// session state an earlier step should have written.
func NewMissingSelectionError(key string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingSelection,
		Message: fmt.Sprintf("session has no value for %q", key),
		Err:     ErrNotFound,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
