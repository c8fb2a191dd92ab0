// Package web renders the server-side HTML pages from an embedded
// template set.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"taskdeck/internal/flash"
	"taskdeck/internal/forms"
	"taskdeck/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page carries everything a template can show. Handlers fill in only the
// fields their page uses.
type Page struct {
	Title         string
	Authenticated bool
	Email         string
	Flash         *flash.Notice
	Tasks         []models.Task
	Form          *forms.TaskForm
	TaskID        int64
}

// Renderer holds the parsed template set, one entry per page, each paired
// with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var pageNames = []string{"index", "tasks", "add", "edit", "login", "register"}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes a page. Any pending flash notice is popped here so every
// page shows it exactly once.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	tmpl, ok := rd.pages[name]
	if !ok {
		log.Error().Str("template", name).Msg("Unknown template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if notice, ok := flash.Pop(w, r); ok {
		page.Flash = &notice
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Failed to render template")
	}
}
