package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

func TestRegistryBuilds(t *testing.T) {
	r, err := Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"Banner", "Heading", "Newsletter", "ProductListGrid", "Text"}, r.Types())
}

// Every built-in definition must be self-consistent: its default variant
// and default props, layered over its runtime defaults, validate against
// its own schema and render without error. Otherwise a freshly added
// instance would show up as an error card.
func TestDefaultsValidateAndRender(t *testing.T) {
	runtimeDefaults := RuntimeDefaults()

	for _, def := range Definitions() {
		t.Run(def.Type, func(t *testing.T) {
			effective := layout.MergeProps(runtimeDefaults[def.Type], def.Meta.DefaultProps, nil)

			coerced, errs := def.Schema.Validate(def.Meta.DefaultVariant, effective)
			require.Empty(t, errs, "default props must satisfy the schema")

			html, err := def.Render(component.Context{InstanceID: "test", Variant: def.Meta.DefaultVariant}, coerced)
			require.NoError(t, err)
			assert.NotEmpty(t, html)
		})
	}
}

func TestHeadingVariantRequiresImage(t *testing.T) {
	defs := Definitions()
	var heading component.Definition
	for _, d := range defs {
		if d.Type == "Heading" {
			heading = d
		}
	}
	require.NotNil(t, heading.Schema)

	_, errs := heading.Schema.Validate("background-image", layout.Props{"text": "Hi"})
	assert.NotEmpty(t, errs, "background-image without imageUrl must fail")

	coerced, errs := heading.Schema.Validate("background-image", layout.Props{"text": "Hi", "imageUrl": "/hero.jpg"})
	require.Empty(t, errs)

	html, err := heading.Render(component.Context{InstanceID: "h1", Variant: "background-image"}, coerced)
	require.NoError(t, err)
	assert.Contains(t, string(html), "heading--image")
	assert.Contains(t, string(html), "/hero.jpg")
}

func TestProductListGridRendersRuntimeProducts(t *testing.T) {
	var grid component.Definition
	for _, d := range Definitions() {
		if d.Type == "ProductListGrid" {
			grid = d
		}
	}

	stored := layout.Props{"title": "Bestsellers", "columns": 2}
	effective := layout.MergeProps(RuntimeDefaults()["ProductListGrid"], stored, nil)
	effective["products"] = []any{
		map[string]any{"name": "Mug", "price": "9.99"},
		map[string]any{"name": "Tee", "price": "19.99", "imageUrl": "/tee.jpg"},
	}

	coerced, errs := grid.Schema.Validate("grid", effective)
	require.Empty(t, errs)

	html, err := grid.Render(component.Context{InstanceID: "g1", Variant: "grid"}, coerced)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Mug")
	assert.Contains(t, string(html), "19.99")
	assert.Contains(t, string(html), `data-columns="2"`)
}

func TestProductListGridLoadingState(t *testing.T) {
	var grid component.Definition
	for _, d := range Definitions() {
		if d.Type == "ProductListGrid" {
			grid = d
		}
	}

	effective := layout.MergeProps(RuntimeDefaults()["ProductListGrid"], grid.Meta.DefaultProps, layout.Props{"isLoading": true})
	coerced, errs := grid.Schema.Validate("grid", effective)
	require.Empty(t, errs)

	html, err := grid.Render(component.Context{InstanceID: "g1", Variant: "grid"}, coerced)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Loading products")
}

func TestTextEscapesMarkup(t *testing.T) {
	var text component.Definition
	for _, d := range Definitions() {
		if d.Type == "Text" {
			text = d
		}
	}

	coerced, errs := text.Schema.Validate("default", layout.Props{"content": "<script>alert(1)</script>"})
	require.Empty(t, errs)

	html, err := text.Render(component.Context{InstanceID: "t1", Variant: "default"}, coerced)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}
