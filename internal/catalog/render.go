package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templates is parsed once at package load. A parse failure here is a
// build defect in an embedded template, so the panic from template.Must is
// acceptable: it fires on first import, not mid-render.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateData is what a catalog template executes against.
type templateData struct {
	Ctx   component.Context
	Props layout.Props
}

// templateRenderer adapts a named embedded template to the RenderFunc
// contract. The template receives the validated, coerced props only.
func templateRenderer(name string) component.RenderFunc {
	return func(ctx component.Context, props layout.Props) (template.HTML, error) {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, name, templateData{Ctx: ctx, Props: props}); err != nil {
			return "", fmt.Errorf("executing template %q: %w", name, err)
		}
		return template.HTML(buf.String()), nil
	}
}
