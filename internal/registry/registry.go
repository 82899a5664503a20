// Package registry maps component type identifiers to their renderer,
// schema, and editor metadata.
//
// The registry is constructed once from a single authored definition table
// and is immutable afterwards: it may be shared by the rendering pipeline
// and the mutation engine without locking. A duplicate type identifier is
// a configuration error that fails construction - never resolved by
// last-registered-wins.
//
// INVARIANT: the renderer, schema, and metadata lookups are all derived
// from the one definition table inside New. Any future lookup must be
// derived the same way, so "renderer and schema disagree about a type" is
// structurally impossible rather than merely unlikely.
package registry

import (
	"fmt"
	"sort"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

// ConfigError reports an invalid registry definition at construction time.
type ConfigError struct {
	Type    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("registry: component %q: %s", e.Type, e.Message)
}

// Registry is the immutable type-identifier lookup table.
type Registry struct {
	renderers map[string]component.RenderFunc
	schemas   map[string]*schema.Schema
	metas     map[string]component.Meta
	types     []string // sorted, for deterministic listings
}

// New builds a registry from statically authored definitions.
//
// Construction fails on: a duplicate type identifier, an empty type, a
// missing renderer or schema, or a default variant outside the definition's
// own variant list. All lookups are derived from defs here and nowhere
// else.
func New(defs ...component.Definition) (*Registry, error) {
	r := &Registry{
		renderers: make(map[string]component.RenderFunc, len(defs)),
		schemas:   make(map[string]*schema.Schema, len(defs)),
		metas:     make(map[string]component.Meta, len(defs)),
	}

	for _, def := range defs {
		if def.Type == "" {
			return nil, &ConfigError{Type: def.Type, Message: "type identifier must be non-empty"}
		}
		if _, exists := r.renderers[def.Type]; exists {
			return nil, &ConfigError{Type: def.Type, Message: "duplicate registration"}
		}
		if def.Render == nil {
			return nil, &ConfigError{Type: def.Type, Message: "renderer is required"}
		}
		if def.Schema == nil {
			return nil, &ConfigError{Type: def.Type, Message: "schema is required"}
		}
		if !def.Meta.HasVariant(def.Meta.DefaultVariant) {
			return nil, &ConfigError{Type: def.Type, Message: fmt.Sprintf("default variant %q not in variant list", def.Meta.DefaultVariant)}
		}

		r.renderers[def.Type] = def.Render
		r.schemas[def.Type] = def.Schema
		r.metas[def.Type] = def.Meta
		r.types = append(r.types, def.Type)
	}

	sort.Strings(r.types)
	return r, nil
}

// MustNew is New for static wiring; it panics on a configuration error.
func MustNew(defs ...component.Definition) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// IsValidType reports whether the type identifier is registered.
func (r *Registry) IsValidType(typ string) bool {
	_, ok := r.renderers[typ]
	return ok
}

// Component returns the renderer for a type.
func (r *Registry) Component(typ string) (component.RenderFunc, bool) {
	fn, ok := r.renderers[typ]
	return fn, ok
}

// Schema returns the props schema for a type.
func (r *Registry) Schema(typ string) (*schema.Schema, bool) {
	s, ok := r.schemas[typ]
	return s, ok
}

// Metadata returns the editor metadata for a type.
func (r *Registry) Metadata(typ string) (component.Meta, bool) {
	m, ok := r.metas[typ]
	return m, ok
}

// Types returns all registered type identifiers in sorted order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.types))
	copy(out, r.types)
	return out
}
