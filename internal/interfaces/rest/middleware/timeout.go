package middleware

import (
	"context"
	"net/http"
	"time"
)

const timeoutBody = `<!DOCTYPE html><html lang="en"><head><title>Request timeout</title></head>` +
	`<body><h1>Sorry, the service took too long to respond</h1></body></html>`

func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler := http.TimeoutHandler(
				next,
				timeout,
				timeoutBody,
			)

			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
