// Package component defines the contract every pluggable UI block
// satisfies: a pure rendering function, a runtime props schema, and the
// editor-facing metadata (variants, defaults, editable fields).
//
// Splitting "how to render" from "how to validate" from "how to describe
// for an editor" lets the registry hand each consumer only the slice it
// needs: the rendering pipeline takes renderer and schema, the mutation
// engine takes metadata, and import/export tooling can validate without
// ever rendering.
package component

import (
	"html/template"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

// Context carries the per-instance identity a renderer may need beyond its
// validated props. Renderers must not mutate anything reachable from it.
type Context struct {
	// InstanceID is the placed instance's stable id.
	InstanceID string

	// Variant is the schema-validated presentation mode.
	Variant string
}

// RenderFunc renders a component to an HTML fragment.
//
// The props argument is always the schema-coerced output of validation,
// never raw persisted data. A RenderFunc must be pure: no side effects
// outside the returned fragment, no retained references to props.
type RenderFunc func(ctx Context, props layout.Props) (template.HTML, error)

// FieldKind tells the editor UI which control to show for a field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldNumber   FieldKind = "number"
	FieldToggle   FieldKind = "toggle"
	FieldSelect   FieldKind = "select"
	FieldURL      FieldKind = "url"
)

// Field describes one user-editable prop for the editor UI.
// Constraints listed here are descriptive; the schema is what enforces.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`

	// Options enumerates legal values for FieldSelect fields.
	Options []string `json:"options,omitempty"`
}

// Variant is one legal presentation mode with its human label.
type Variant struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Meta is the editor-facing description of a component type.
type Meta struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`

	// Variants is the closed list of legal variant values.
	Variants []Variant `json:"variants"`

	// DefaultVariant is assigned to brand-new instances.
	DefaultVariant string `json:"default_variant"`

	// DefaultProps hydrates brand-new instances. Consumers always receive
	// a deep copy, never this map itself.
	DefaultProps layout.Props `json:"default_props"`

	// Fields lists the user-editable props.
	Fields []Field `json:"fields"`
}

// HasVariant reports whether v is in the closed variant list.
func (m Meta) HasVariant(v string) bool {
	for _, variant := range m.Variants {
		if variant.Value == v {
			return true
		}
	}
	return false
}

// Definition binds a type identifier to its renderer, schema, and
// metadata. Definitions are authored statically and registered once; they
// are configuration, not domain data.
type Definition struct {
	Type   string
	Render RenderFunc
	Schema *schema.Schema
	Meta   Meta
}
