package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

// Placeholder markup is authored here rather than in the catalog because
// placeholders must exist even when a catalog is empty or broken.
var placeholderTmpl = template.Must(template.New("placeholders").Parse(`
{{define "page_malformed"}}<div class="layout-notice layout-notice--unconfigured">
  <p>No content configured for this page yet.</p>
  <p class="layout-notice__hint">Open the theme editor to add your first section.</p>
</div>{{end}}

{{define "page_empty"}}<div class="layout-notice layout-notice--empty">
  <p>This page is empty.</p>
  <p class="layout-notice__hint">All sections were removed. Add sections or reset to the default layout.</p>
</div>{{end}}

{{define "instance_error"}}<div class="component-error" data-error-kind="{{.Kind}}">
  <p class="component-error__title">{{.Title}}</p>
  {{- if .Detail}}
  <pre class="component-error__detail">{{.Detail}}</pre>
  {{- end}}
</div>{{end}}
`))

type placeholderData struct {
	Kind   ErrorKind
	Title  string
	Detail string
}

// renderPlaceholder produces the inline error card for one failed
// instance. Validation detail is included only in dev mode; the title
// always names the offending component type.
func renderPlaceholder(ierr *InstanceError, mode Mode) template.HTML {
	data := placeholderData{Kind: ierr.Kind}

	switch ierr.Kind {
	case ErrUnknownType:
		data.Title = fmt.Sprintf("Unknown component type %q", ierr.Type)
	case ErrInvalidProps:
		data.Title = fmt.Sprintf("Component %q has invalid configuration", ierr.Type)
		if mode == ModeDev {
			data.Detail = schema.FormatErrors(ierr.Detail)
		}
	case ErrRenderFailed:
		data.Title = fmt.Sprintf("Component %q failed to render", ierr.Type)
		if mode == ModeDev {
			data.Detail = ierr.Message
		}
	default:
		data.Title = fmt.Sprintf("Component %q could not be displayed", ierr.Type)
	}

	return execPlaceholder("instance_error", data)
}

// PageHTML assembles a full page from a render result: the page-level
// placeholder for the malformed and empty cases, otherwise every node
// wrapped in a slot div carrying data-instance-id as its identity key.
func (r Result) PageHTML() template.HTML {
	switch r.State {
	case StateMalformed:
		return execPlaceholder("page_malformed", nil)
	case StateEmpty:
		return execPlaceholder("page_empty", nil)
	}

	var buf bytes.Buffer
	for _, node := range r.Nodes {
		fmt.Fprintf(&buf, "<div class=\"layout-slot\" data-instance-id=\"%s\">", template.HTMLEscapeString(node.ID))
		buf.WriteString(string(node.HTML))
		buf.WriteString("</div>\n")
	}
	return template.HTML(buf.String())
}

func execPlaceholder(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := placeholderTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		// The placeholder templates are static and parsed at load; an
		// execution failure here is unreachable short of a code defect.
		return template.HTML("<div class=\"component-error\">Component could not be displayed</div>")
	}
	return template.HTML(buf.String())
}
