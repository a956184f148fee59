// Package services holds one service per order form section. Each step is a
// GET/POST pair: the GET builds a page from session state and upstream data,
// the POST validates a form and either advances the wizard or hands the same
// page back with errors.
package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

// Outcome is what a step hands back to the web layer: either a location to
// redirect to, or a page to render with status 200.
type Outcome[P any] struct {
	Redirect string
	Page     *P
}

func redirectTo[P any](location string) Outcome[P] {
	return Outcome[P]{Redirect: location}
}

func render[P any](page *P) Outcome[P] {
	return Outcome[P]{Page: page}
}

// OrderRef identifies the order being edited, as it appears in the URL.
type OrderRef struct {
	OdsCode string
	OrderID string
}

// Path builds an absolute path below the order dashboard.
func (o OrderRef) Path(parts ...string) string {
	base := fmt.Sprintf("/organisation/%s/order/%s", url.PathEscape(o.OdsCode), url.PathEscape(o.OrderID))
	if len(parts) == 0 {
		return base
	}
	return base + "/" + strings.Join(parts, "/")
}

// translateValidation splits an upstream 400 with field errors from every
// other failure. Only the former is shown on the form.
func translateValidation(err error) ([]domain.ValidationError, error) {
	if errs, ok := application.ValidationErrors(err); ok {
		return errs, nil
	}
	return nil, err
}
