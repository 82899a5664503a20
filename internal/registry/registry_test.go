package registry

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

func testDef(typ string) component.Definition {
	return component.Definition{
		Type: typ,
		Render: func(ctx component.Context, props layout.Props) (template.HTML, error) {
			return template.HTML("<div></div>"), nil
		},
		Schema: schema.MustCompile(`variant: "default"` + "\n" + `title: string | *""`),
		Meta: component.Meta{
			DisplayName:    typ,
			Variants:       []component.Variant{{Value: "default", Label: "Default"}},
			DefaultVariant: "default",
			DefaultProps:   layout.Props{"title": ""},
		},
	}
}

func TestNewDerivedLookupsStayConsistent(t *testing.T) {
	r, err := New(testDef("Heading"), testDef("Text"))
	require.NoError(t, err)

	// For every type, renderer, schema, and metadata lookups are either
	// all present or all absent; the derived tables never drift.
	for _, typ := range []string{"Heading", "Text", "Bogus"} {
		_, hasRender := r.Component(typ)
		_, hasSchema := r.Schema(typ)
		_, hasMeta := r.Metadata(typ)

		assert.Equal(t, hasRender, hasSchema, "type %q: renderer/schema lookup drift", typ)
		assert.Equal(t, hasRender, hasMeta, "type %q: renderer/metadata lookup drift", typ)
		assert.Equal(t, hasRender, r.IsValidType(typ), "type %q: IsValidType drift", typ)
	}
}

func TestNewRejectsDuplicateType(t *testing.T) {
	_, err := New(testDef("Heading"), testDef("Heading"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Heading", cfgErr.Type)
	assert.Contains(t, cfgErr.Message, "duplicate")
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*component.Definition)
	}{
		{"empty type", func(d *component.Definition) { d.Type = "" }},
		{"nil renderer", func(d *component.Definition) { d.Render = nil }},
		{"nil schema", func(d *component.Definition) { d.Schema = nil }},
		{"default variant outside list", func(d *component.Definition) { d.Meta.DefaultVariant = "missing" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDef("Heading")
			tt.mutate(&def)
			_, err := New(def)
			assert.Error(t, err)
		})
	}
}

func TestTypesSortedAndCopied(t *testing.T) {
	r := MustNew(testDef("Text"), testDef("Banner"), testDef("Heading"))

	types := r.Types()
	assert.Equal(t, []string{"Banner", "Heading", "Text"}, types)

	types[0] = "mutated"
	assert.Equal(t, []string{"Banner", "Heading", "Text"}, r.Types())
}

func TestMustNewPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() { MustNew(testDef("A"), testDef("A")) })
}

func TestEmptyRegistryIsUsable(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.False(t, r.IsValidType("anything"))
	assert.Empty(t, r.Types())
}
