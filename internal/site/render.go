// Package site renders the portfolio page and serves it in serve mode.
package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/gitfolio/gitfolio/internal/domain"
)

//go:embed page.html.tmpl
var pageTemplate string

// Renderer executes the embedded page template against a portfolio.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded template once.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("portfolio").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full HTML document for the portfolio to w.
func (r *Renderer) Render(w io.Writer, p *domain.Portfolio) error {
	if err := r.tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}
	return nil
}

// WriteFile renders the page into a buffer and writes it to dir/index.html.
func (r *Renderer) WriteFile(dir string, p *domain.Portfolio) error {
	buf := new(bytes.Buffer)
	if err := r.Render(buf, p); err != nil {
		return err
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
