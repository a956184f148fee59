package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeTimeout         = "TIMEOUT"
)

func NewUnauthenticatedError(reason string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnauthenticated,
		Message:    reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInvalidInputError is for requests the browser could never have produced
// from our own forms, e.g. an unparseable body.
func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// UpstreamError is a non-2xx answer from BAPI, OAPI or ORDAPI.
type UpstreamError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int
	Body       string
	// Errors is populated from a 400 body shaped {"errors":[{field,id}]}.
	Errors []domain.ValidationError
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s %s returned status %d", e.Service, e.Method, e.Path, e.StatusCode)
}

// Unwrap lets a 404 from an upstream read be handled like any other missing
// record.
func (e *UpstreamError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return nil
}

func IsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	ok := errors.As(err, &upErr)
	return upErr, ok
}

// ValidationErrors extracts field errors from an upstream 400. ok is false for
// every other error, which callers must let propagate.
func ValidationErrors(err error) ([]domain.ValidationError, bool) {
	upErr, ok := IsUpstreamError(err)
	if !ok || upErr.StatusCode != http.StatusBadRequest || len(upErr.Errors) == 0 {
		return nil, false
	}
	return upErr.Errors, true
}
