package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
)

// HandlerFunc is a route handler that leaves every failure it cannot show on
// the form to the shared error path.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorPage is rendered for integrity and unexpected failures.
type ErrorPage struct {
	services.PageBase
	Message string
	Detail  string
	Stack   string
}

type ErrorHandler struct {
	renderer  *Renderer
	loginURL  string
	showStack bool
	logger    *slog.Logger
}

func NewErrorHandler(renderer *Renderer, loginURL string, showStack bool, logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{renderer: renderer, loginURL: loginURL, showStack: showStack, logger: logger}
}

// Handle wraps fn with the shared error path.
func (e *ErrorHandler) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			e.WriteError(w, r, err)
		}
	}
}

// WriteError maps application errors to HTTP responses
func (e *ErrorHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	e.writeError(w, r, err, "")
}

// WritePanic is WriteError for a recovered panic, keeping the panicking
// goroutine's stack.
func (e *ErrorHandler) WritePanic(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	e.writeError(w, r, err, string(stack))
}

func (e *ErrorHandler) writeError(w http.ResponseWriter, r *http.Request, err error, stack string) {
	category := application.CategorizeError(err)

	if category == application.CategoryAuthentication {
		e.logger.Info("redirecting to login", "path", r.URL.Path, "reason", err.Error())
		http.Redirect(w, r, e.loginLocation(r), http.StatusFound)
		return
	}

	status := application.ToHTTPStatus(err)
	page := &ErrorPage{Message: "Sorry, there is a problem with the service"}

	if category == application.CategoryIntegrity {
		status = http.StatusNotFound
		page.Message = "The page or item you asked for could not be found"
		e.logger.Warn("integrity error",
			"method", r.Method,
			"path", r.URL.Path,
			"code", application.ToErrorCode(err),
			"error", err,
		)
	} else {
		if stack == "" {
			stack = string(debug.Stack())
		}
		e.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"code", application.ToErrorCode(err),
			"error", err,
		)
	}
	page.Title = page.Message

	if e.showStack {
		page.Detail = err.Error()
		page.Stack = stack
	}

	if renderErr := e.renderer.Render(w, status, "error", page); renderErr != nil {
		e.logger.Error("failed to render error page", "error", renderErr)
		http.Error(w, http.StatusText(status), status)
	}
}

func (e *ErrorHandler) loginLocation(r *http.Request) string {
	login, err := url.Parse(e.loginURL)
	if err != nil {
		return e.loginURL
	}
	q := login.Query()
	q.Set("returnUrl", r.URL.RequestURI())
	login.RawQuery = q.Encode()
	return login.String()
}

var errNoOutcome = errors.New("step returned neither a page nor a redirect")
