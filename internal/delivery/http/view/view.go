// Package view renders the console screens from embedded html/template files.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"
	"backoffice/internal/util"

	"github.com/labstack/echo/v4"
)

const layoutFile = "layout.html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds one parsed template set per screen, each combined with the layout.
type Renderer struct {
	mu    sync.RWMutex
	pages map[string]*template.Template
	funcs template.FuncMap
}

// NewRenderer parses every screen template.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template),
		funcs: Funcs(),
	}
	if err := r.load(templateFS); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) load(fsys fs.FS) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return errors.Wrap(err, "list templates")
	}

	for _, file := range files {
		base := path.Base(file)
		if base == layoutFile {
			continue
		}

		tmpl, err := template.New(base).Funcs(r.funcs).ParseFS(fsys, "templates/"+layoutFile, file)
		if err != nil {
			return errors.Wrapf(err, "parse template %s", base)
		}
		r.pages[strings.TrimSuffix(base, ".html")] = tmpl
	}

	return nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	r.mu.RLock()
	tmpl, ok := r.pages[name]
	r.mu.RUnlock()
	if !ok {
		return errors.Errorf("view %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Funcs are the helpers available in every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(v any) string {
			switch a := v.(type) {
			case entity.Amount:
				return "$" + a.String()
			case float64:
				return "$" + entity.Amount(a).String()
			default:
				return "$0.00"
			}
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}

			return t.Format("Jan 2, 2006")
		},
		"formatBytes":    util.FormatBytes,
		"formatDuration": util.FormatDuration,
		"statusClass":    statusClass,
		"title": func(v any) string {
			s := fmt.Sprint(v)
			if s == "" {
				return s
			}

			return strings.ToUpper(s[:1]) + strings.ReplaceAll(s[1:], "-", " ")
		},
	}
}

// statusClass picks the badge style of an order, delivery or product status.
func statusClass(status any) string {
	switch fmt.Sprint(status) {
	case "completed", "delivered", "active":
		return "badge-success"
	case "processing", "in-transit":
		return "badge-info"
	case "cancel", "failed", "inactive":
		return "badge-danger"
	default:
		return "badge-warning"
	}
}
