package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the page into a buffer first so a template failure never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, v View) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "dashboard.html", v); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
