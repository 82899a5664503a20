// Package catalog holds the built-in component definitions of the theme
// builder: the static table the production registry is built from.
//
// Each definition pairs an embedded HTML template with a CUE props schema
// and the editor metadata (variants, defaults, editable fields). Adding a
// component type means adding one Definition here; the registry derives
// every lookup from this table.
package catalog

import (
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/registry"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

// Definitions returns the built-in component definitions in display order.
// The returned slice is freshly allocated; schemas and renderers are
// shared, immutable values.
func Definitions() []component.Definition {
	return []component.Definition{
		heading(),
		text(),
		banner(),
		productListGrid(),
		newsletter(),
	}
}

// Registry builds the production registry from the built-in catalog.
func Registry() (*registry.Registry, error) {
	return registry.New(Definitions()...)
}

// RuntimeDefaults returns the per-type runtime default props: fields a
// component needs at render time that are never persisted (fetched data,
// loading flags). The pipeline layers these under the stored props.
func RuntimeDefaults() map[string]layout.Props {
	return map[string]layout.Props{
		"ProductListGrid": {
			"products":  []any{},
			"isLoading": false,
		},
	}
}

func heading() component.Definition {
	return component.Definition{
		Type:   "Heading",
		Render: templateRenderer("heading"),
		Schema: schema.MustCompile(`
variant: "text-only" | "background-image"
text:    string & !=""
level:   int & >=1 & <=6 | *2
if variant == "background-image" {
	imageUrl: string & !=""
}
`),
		Meta: component.Meta{
			DisplayName: "Heading",
			Description: "A section heading, optionally on a background image.",
			Variants: []component.Variant{
				{Value: "text-only", Label: "Text only"},
				{Value: "background-image", Label: "Background image"},
			},
			DefaultVariant: "text-only",
			DefaultProps: layout.Props{
				"text":  "Heading",
				"level": 2,
			},
			Fields: []component.Field{
				{Name: "text", Label: "Text", Kind: component.FieldText, Required: true},
				{Name: "level", Label: "Level", Kind: component.FieldNumber},
				{Name: "imageUrl", Label: "Background image URL", Kind: component.FieldURL},
			},
		},
	}
}

func text() component.Definition {
	return component.Definition{
		Type:   "Text",
		Render: templateRenderer("text"),
		Schema: schema.MustCompile(`
variant: "default"
content: string & !=""
align:   "left" | "center" | "right" | *"left"
`),
		Meta: component.Meta{
			DisplayName: "Text",
			Description: "A paragraph of rich text.",
			Variants: []component.Variant{
				{Value: "default", Label: "Default"},
			},
			DefaultVariant: "default",
			DefaultProps: layout.Props{
				"content": "Lorem ipsum dolor sit amet.",
				"align":   "left",
			},
			Fields: []component.Field{
				{Name: "content", Label: "Content", Kind: component.FieldTextarea, Required: true},
				{Name: "align", Label: "Alignment", Kind: component.FieldSelect, Options: []string{"left", "center", "right"}},
			},
		},
	}
}

func banner() component.Definition {
	return component.Definition{
		Type:   "Banner",
		Render: templateRenderer("banner"),
		Schema: schema.MustCompile(`
variant:  "text-only" | "background-image"
title:    string & !=""
subtitle: string | *""
ctaLabel: string | *""
ctaUrl:   string | *""
if variant == "background-image" {
	imageUrl: string & !=""
}
`),
		Meta: component.Meta{
			DisplayName: "Banner",
			Description: "A promotional banner with an optional call to action.",
			Variants: []component.Variant{
				{Value: "text-only", Label: "Text only"},
				{Value: "background-image", Label: "Background image"},
			},
			DefaultVariant: "text-only",
			DefaultProps: layout.Props{
				"title":    "Season sale",
				"subtitle": "",
				"ctaLabel": "Shop now",
				"ctaUrl":   "/catalog",
			},
			Fields: []component.Field{
				{Name: "title", Label: "Title", Kind: component.FieldText, Required: true},
				{Name: "subtitle", Label: "Subtitle", Kind: component.FieldText},
				{Name: "ctaLabel", Label: "Button label", Kind: component.FieldText},
				{Name: "ctaUrl", Label: "Button URL", Kind: component.FieldURL},
				{Name: "imageUrl", Label: "Background image URL", Kind: component.FieldURL},
			},
		},
	}
}

func productListGrid() component.Definition {
	return component.Definition{
		Type:   "ProductListGrid",
		Render: templateRenderer("product_list_grid"),
		Schema: schema.MustCompile(`
variant: "grid" | "carousel"
title:   string | *""
columns: int & >=1 & <=6 | *3

// Runtime-only fields: supplied by the host at render time, never
// persisted with the layout.
products: [...{name: string, price: string, imageUrl: string | *""}] | *[]
isLoading: bool | *false
`),
		Meta: component.Meta{
			DisplayName: "Product grid",
			Description: "A grid of products from the shop catalog.",
			Variants: []component.Variant{
				{Value: "grid", Label: "Grid"},
				{Value: "carousel", Label: "Carousel"},
			},
			DefaultVariant: "grid",
			DefaultProps: layout.Props{
				"title":   "Our products",
				"columns": 3,
			},
			Fields: []component.Field{
				{Name: "title", Label: "Title", Kind: component.FieldText},
				{Name: "columns", Label: "Columns", Kind: component.FieldNumber},
			},
		},
	}
}

func newsletter() component.Definition {
	return component.Definition{
		Type:   "Newsletter",
		Render: templateRenderer("newsletter"),
		Schema: schema.MustCompile(`
variant:     "inline" | "stacked"
heading:     string & !=""
buttonLabel: string | *"Subscribe"
`),
		Meta: component.Meta{
			DisplayName: "Newsletter signup",
			Description: "An email capture form.",
			Variants: []component.Variant{
				{Value: "inline", Label: "Inline"},
				{Value: "stacked", Label: "Stacked"},
			},
			DefaultVariant: "inline",
			DefaultProps: layout.Props{
				"heading":     "Stay in the loop",
				"buttonLabel": "Subscribe",
			},
			Fields: []component.Field{
				{Name: "heading", Label: "Heading", Kind: component.FieldText, Required: true},
				{Name: "buttonLabel", Label: "Button label", Kind: component.FieldText},
			},
		},
	}
}
