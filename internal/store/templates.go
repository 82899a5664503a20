package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// templateBlock is one component entry of an embedded page template. It
// has no id: ids are minted per materialization so two shops never share
// instance identity.
type templateBlock struct {
	Type    string         `yaml:"type"`
	Variant string         `yaml:"variant"`
	Props   map[string]any `yaml:"props"`
}

var defaultTemplates = mustParseTemplates(defaultsYAML)

func mustParseTemplates(src []byte) map[layout.PageType][]templateBlock {
	templates, err := parseTemplates(src)
	if err != nil {
		panic(err)
	}
	return templates
}

func parseTemplates(src []byte) (map[layout.PageType][]templateBlock, error) {
	var raw map[string][]templateBlock
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("parse default templates: %w", err)
	}

	templates := make(map[layout.PageType][]templateBlock, len(raw))
	for key, blocks := range raw {
		pt, err := layout.ParsePageType(key)
		if err != nil {
			return nil, fmt.Errorf("default templates: %w", err)
		}
		for i, b := range blocks {
			if b.Type == "" {
				return nil, fmt.Errorf("default template %q: block %d has no component type", key, i)
			}
			if b.Variant == "" {
				return nil, fmt.Errorf("default template %q: block %d (%s) has no variant", key, i, b.Type)
			}
		}
		templates[pt] = blocks
	}
	for _, pt := range layout.PageTypes {
		if _, ok := templates[pt]; !ok {
			return nil, fmt.Errorf("default templates: page type %q has no template", pt)
		}
	}
	return templates, nil
}

// defaultLayout materializes the embedded template for the page type with
// fresh instance ids.
func (s *Store) defaultLayout(pt layout.PageType) layout.Layout {
	blocks := defaultTemplates[pt]
	l := make(layout.Layout, 0, len(blocks))
	for _, b := range blocks {
		props := make(layout.Props, len(b.Props))
		for k, v := range b.Props {
			props[k] = v
		}
		l = append(l, layout.ComponentInstance{
			ID:      s.newID(),
			Type:    b.Type,
			Variant: b.Variant,
			Props:   props,
		})
	}
	return l
}
