package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// ErrorCategory decides which of the user-visible outcomes an error leads to.
type ErrorCategory string

const (
	CategoryValidation     ErrorCategory = "VALIDATION"
	CategoryIntegrity      ErrorCategory = "INTEGRITY"
	CategoryAuthentication ErrorCategory = "AUTHENTICATION"
	CategoryUnexpected     ErrorCategory = "UNEXPECTED"
)

// CategorizeError determines error category for rendering and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if _, ok := ValidationErrors(err); ok {
		return CategoryValidation
	}

	if errors.Is(err, domain.ErrNotFound) {
		return CategoryIntegrity
	}

	if svcErr, ok := IsServiceError(err); ok && svcErr.Code == ErrCodeUnauthenticated {
		return CategoryAuthentication
	}

	if upErr, ok := IsUpstreamError(err); ok && upErr.StatusCode == http.StatusUnauthorized {
		return CategoryAuthentication
	}

	return CategoryUnexpected
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch CategorizeError(err) {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryIntegrity:
		return http.StatusNotFound
	case CategoryAuthentication:
		return http.StatusUnauthorized
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return http.StatusGatewayTimeout
	}

	if _, ok := IsUpstreamError(err); ok {
		return http.StatusBadGateway
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode gives a stable code for logs and the error page.
func ToErrorCode(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if upErr, ok := IsUpstreamError(err); ok {
		return strings.ToUpper(upErr.Service) + "_" + http.StatusText(upErr.StatusCode)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
