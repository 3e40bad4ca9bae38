// Package view отдаёт HTML-страницы из встроенных в бинарник шаблонов.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Страницы, которые умеет рендерить Renderer.
const (
	PageIndex = "index.html"
	PageItems = "items.html"
	PageItem  = "item.html"
	PageForm  = "form.html"
)

var pages = []string{PageIndex, PageItems, PageItem, PageForm}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// ErrHeadersSent — статус и заголовки уже ушли клиенту, ответ дописать не удалось.
// Второй раз писать статус в этом случае нельзя.
var ErrHeadersSent = errors.New("response headers already sent")

// Renderer хранит разобранные шаблоны: каждая страница — своя копия layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает все шаблоны один раз при старте.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+p)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", p, err)
		}
		r.pages[p] = t
	}
	return r, nil
}

// Render выполняет шаблон в буфер и только потом пишет ответ,
// чтобы ошибка шаблона не оставила клиенту половину страницы.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w: %w", page, ErrHeadersSent, err)
	}
	return nil
}
