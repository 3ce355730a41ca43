// Package web holds the page templates, static assets and the renderer that
// turns a page view model into HTML.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
)

const (
	layoutName = "layout.html"
	AppTitle   = "Vision AI"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer keeps one parsed template set per page, each bundled with the layout.
type Renderer struct {
	cache map[string]*template.Template
}

// NewRenderer parses every page template together with the layout.
func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("find page templates: %w", err)
	}

	cache := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		if name == layoutName {
			continue
		}
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/"+layoutName, page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		cache[name] = tmpl
	}
	if len(cache) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	return &Renderer{cache: cache}, nil
}

// Render executes the page into a buffer first so a template error never
// produces a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.cache[page]
	if !ok {
		return fmt.Errorf("template %s not found", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded assets; mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
