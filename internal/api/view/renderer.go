package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"

	"github.com/gymtech/dashboard/internal/core/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Data is the envelope every page template receives. Content carries the
// page-specific view model.
type Data struct {
	Title         string
	Path          string
	Session       *domain.Session
	Menu          []MenuEntry
	Error         string
	Flash         string
	ChatSessionID string
	ChatHistory   []domain.ChatMessage
	Content       any
}

// standalone templates render a full document on their own; everything else
// is a content block wrapped in layout.html.
var standalone = map[string]bool{
	"login.html":    true,
	"error.html":    true,
	"notfound.html": true,
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"markdown": Markdown,
	}

	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	for _, name := range names {
		base := strings.TrimPrefix(name, "templates/")
		if base == "layout.html" {
			continue
		}
		var t *template.Template
		if standalone[base] {
			t, err = template.New(base).Funcs(funcs).ParseFS(templatesFS, name)
		} else {
			t, err = template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", name)
		}
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", base, err)
		}
		pages[base] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if standalone[name] {
		return t.ExecuteTemplate(w, name, data)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Markdown converts assistant markdown to HTML. Goldmark escapes any raw
// HTML in the source, so upstream content cannot inject markup.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
