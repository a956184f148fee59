package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
)

// Recovery creates middleware that recovers from panics and renders the 500 page
func Recovery(errs *rest.ErrorHandler, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					stack := debug.Stack()
					logger.Error(
						"panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(stack),
					)

					err := application.NewInternalError(fmt.Errorf("panic: %v", rec))
					errs.WritePanic(w, r, err, stack)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
