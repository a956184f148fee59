package middleware

import (
	"net/http"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
)

const OrganisationIDHeader = "X-Organisation-Id"

// Identity reads the caller's access token and primary organisation as set by
// the authenticating proxy. Requests without them go to the login page.
func Identity(errs *rest.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			token = strings.TrimSpace(token)
			orgID := strings.TrimSpace(r.Header.Get(OrganisationIDHeader))

			if !ok || token == "" || orgID == "" {
				errs.WriteError(w, r, application.NewUnauthenticatedError("missing identity"))
				return
			}

			ctx := application.WithIdentity(r.Context(), application.Identity{
				AccessToken:    token,
				OrganisationID: orgID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
