package rest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/domain"
)

//go:embed templates
var templateFS embed.FS

// ErrorView is one entry of the error summary at the top of a page.
type ErrorView struct {
	Field string
	Href  string
	Text  string
}

// ErrorViews turns validation errors into summary entries linking to the
// offending field.
func ErrorViews(errs []domain.ValidationError) []ErrorView {
	views := make([]ErrorView, 0, len(errs))
	for _, e := range errs {
		views = append(views, ErrorView{Field: e.Field, Href: "#" + e.Field, Text: Message(e.ID)})
	}
	return views
}

func fieldError(errs []domain.ValidationError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return Message(e.ID)
		}
	}
	return ""
}

var templateFuncs = template.FuncMap{
	"errorSummary": ErrorViews,
	"fieldError":   fieldError,
	"message":      Message,
	"concat":       func(parts ...string) string { return strings.Join(parts, "") },
}

// Renderer executes the embedded page templates. Each page is parsed into its
// own clone of the layout so that every page can define "content".
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		page, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}
	return r, nil
}

// Render buffers the page so a template failure never leaves a half-written
// response behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
