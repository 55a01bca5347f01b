package renderer

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/labstack/echo/v4"
)

// pageTemplates maps template names to their page file. Every page is
// parsed together with the base layout and the breadcrumbs partial.
var pageTemplates = map[string]string{
	"directory":     "directory.html",
	"text_file":     "text_file.html",
	"markdown_file": "markdown_file.html",
	"csv_file":      "csv_file.html",
}

// TemplateRenderer implements echo.Renderer. Templates are parsed once
// at startup; the dev server swaps in a freshly parsed set on change.
type TemplateRenderer struct {
	dir string

	mu        sync.RWMutex
	templates map[string]*template.Template
}

// New creates a TemplateRenderer over the given views directory.
func New(dir string) (*TemplateRenderer, error) {
	r := &TemplateRenderer{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses all templates and atomically replaces the active
// set. On error the previous set stays in place.
func (t *TemplateRenderer) Reload() error {
	templates := make(map[string]*template.Template)
	for name, pageFile := range pageTemplates {
		tmpl, err := template.ParseFiles(
			filepath.Join(t.dir, "layouts", "base.html"),
			filepath.Join(t.dir, "partials", "breadcrumbs.html"),
			filepath.Join(t.dir, "pages", pageFile),
		)
		if err != nil {
			return fmt.Errorf("parsing template %q: %w", name, err)
		}
		templates[name] = tmpl
	}

	t.mu.Lock()
	t.templates = templates
	t.mu.Unlock()
	return nil
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t.mu.RLock()
	tmpl, ok := t.templates[name]
	t.mu.RUnlock()

	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	// All pages render through the "base" layout block
	return tmpl.ExecuteTemplate(w, "base", data)
}
