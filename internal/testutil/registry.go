// Package testutil provides deterministic fixtures for tests: a fake
// component registry with fully predictable renderer output, so pipeline
// and editor tests never depend on the production catalog's markup.
package testutil

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/registry"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

// BoxDefinition is a minimal well-behaved component. Its renderer output
// is a single fmt.Sprintf line, so golden files stay hand-checkable.
//
// Schema: optional title (default "Box"), variants default|wide.
func BoxDefinition() component.Definition {
	return component.Definition{
		Type: "Box",
		Render: func(ctx component.Context, props layout.Props) (template.HTML, error) {
			title := template.HTMLEscapeString(fmt.Sprint(props["title"]))
			return template.HTML(fmt.Sprintf(`<div class="box" data-variant="%s">%s</div>`, ctx.Variant, title)), nil
		},
		Schema: schema.MustCompile(`
variant: "default" | "wide"
title:   string | *"Box"
`),
		Meta: component.Meta{
			DisplayName: "Box",
			Variants: []component.Variant{
				{Value: "default", Label: "Default"},
				{Value: "wide", Label: "Wide"},
			},
			DefaultVariant: "default",
			DefaultProps:   layout.Props{"title": "Box"},
			Fields: []component.Field{
				{Name: "title", Label: "Title", Kind: component.FieldText},
			},
		},
	}
}

// StrictDefinition requires a non-empty label, which makes validation
// failures easy to provoke: an empty props map is invalid.
func StrictDefinition() component.Definition {
	return component.Definition{
		Type: "Strict",
		Render: func(ctx component.Context, props layout.Props) (template.HTML, error) {
			label := template.HTMLEscapeString(fmt.Sprint(props["label"]))
			return template.HTML(fmt.Sprintf(`<span class="strict">%s</span>`, label)), nil
		},
		Schema: schema.MustCompile(`
variant: "default"
label:   string & !=""
`),
		Meta: component.Meta{
			DisplayName:    "Strict",
			Variants:       []component.Variant{{Value: "default", Label: "Default"}},
			DefaultVariant: "default",
			DefaultProps:   layout.Props{"label": "Strict"},
		},
	}
}

// BoomDefinition panics on render. The pipeline must contain the panic to
// one slot.
func BoomDefinition() component.Definition {
	return component.Definition{
		Type: "Boom",
		Render: func(ctx component.Context, props layout.Props) (template.HTML, error) {
			panic("boom renderer exploded")
		},
		Schema: schema.MustCompile(`variant: "default"`),
		Meta: component.Meta{
			DisplayName:    "Boom",
			Variants:       []component.Variant{{Value: "default", Label: "Default"}},
			DefaultVariant: "default",
			DefaultProps:   layout.Props{},
		},
	}
}

// FlakyDefinition returns a renderer error without panicking.
func FlakyDefinition() component.Definition {
	return component.Definition{
		Type: "Flaky",
		Render: func(ctx component.Context, props layout.Props) (template.HTML, error) {
			return "", errors.New("upstream data unavailable")
		},
		Schema: schema.MustCompile(`variant: "default"`),
		Meta: component.Meta{
			DisplayName:    "Flaky",
			Variants:       []component.Variant{{Value: "default", Label: "Default"}},
			DefaultVariant: "default",
			DefaultProps:   layout.Props{},
		},
	}
}

// Registry builds a registry with all fixture components.
func Registry() *registry.Registry {
	return registry.MustNew(
		BoxDefinition(),
		StrictDefinition(),
		BoomDefinition(),
		FlakyDefinition(),
	)
}
