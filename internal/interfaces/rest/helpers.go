package rest

import (
	"net/http"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
)

// WriteOutcome redirects (302) or renders the named page with status 200.
func WriteOutcome[P any](w http.ResponseWriter, r *http.Request, renderer *Renderer, name string, out services.Outcome[P]) error {
	if out.Redirect != "" {
		http.Redirect(w, r, out.Redirect, http.StatusFound)
		return nil
	}
	if out.Page == nil {
		return application.NewInternalError(errNoOutcome)
	}
	return renderer.Render(w, http.StatusOK, name, out.Page)
}

// ParseForm reads a urlencoded body, reporting malformed input as invalid
// input rather than an internal failure.
func ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}
