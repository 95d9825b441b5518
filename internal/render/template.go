// Package render turns prepared document records into HTML and HTML into PDF
// bytes via headless Chrome.
package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"pdfservice/internal/domain"
)

// TemplateRenderer renders named HTML templates from a directory. Templates
// are read per render so edits show up without a restart.
type TemplateRenderer struct {
	dir string
}

func NewTemplateRenderer(dir string) *TemplateRenderer {
	return &TemplateRenderer{dir: dir}
}

// Render executes the template identified by name (e.g. "quote",
// "booking-voucher-email") against the prepared record.
func (r *TemplateRenderer) Render(name string, data map[string]any) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", domain.RenderError{Stage: "template", Err: fmt.Errorf("invalid template name %q", name)}
	}

	path := filepath.Join(r.dir, name+".html")
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", domain.RenderError{Stage: "template", Err: fmt.Errorf("load %s: %w", name, err)}
	}

	tpl, err := template.New(name).Funcs(helperFuncs()).Parse(string(raw))
	if err != nil {
		return "", domain.RenderError{Stage: "template", Err: fmt.Errorf("parse %s: %w", name, err)}
	}

	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", domain.RenderError{Stage: "template", Err: fmt.Errorf("execute %s: %w", name, err)}
	}
	return b.String(), nil
}
