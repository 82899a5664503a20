package render

import (
	"fmt"
	"html/template"
	"log/slog"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/registry"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/schema"
)

// Mode controls how much failure detail reaches the rendered markup.
// Structured validation failures are always logged in both modes.
type Mode int

const (
	// ModeProd renders placeholders without validation detail.
	ModeProd Mode = iota
	// ModeDev embeds the structured validation failure in the placeholder.
	ModeDev
)

// PageState classifies the whole-layout outcome.
type PageState int

const (
	// StateOK means per-instance nodes were produced (some may be
	// placeholders).
	StateOK PageState = iota
	// StateEmpty means the layout was present but intentionally empty.
	StateEmpty
	// StateMalformed means the stored data was not a recognizable layout.
	StateMalformed
)

// ErrorKind classifies a per-instance failure.
type ErrorKind string

const (
	ErrUnknownType  ErrorKind = "unknown_type"
	ErrInvalidProps ErrorKind = "invalid_props"
	ErrRenderFailed ErrorKind = "render_failed"
)

// InstanceError is the structured failure attached to a placeholder node.
type InstanceError struct {
	Kind   ErrorKind                `json:"kind"`
	Type   string                   `json:"type"`
	Detail []schema.ValidationError `json:"detail,omitempty"`

	// Message carries non-validation detail (renderer error text).
	Message string `json:"message,omitempty"`
}

// Node is one rendered slot: a component fragment or a placeholder.
// ID is the instance's stable identity key; reordering the layout moves
// nodes rather than remounting them.
type Node struct {
	ID   string
	Type string
	HTML template.HTML

	// Err is non-nil when HTML holds a placeholder.
	Err *InstanceError
}

// Result is the outcome of rendering one layout.
type Result struct {
	State PageState
	Nodes []Node
}

// Injected is the render-facing surface the host supplies: uniform fields
// applied to every instance and per-type runtime defaults for fields the
// persisted data never stores.
type Injected struct {
	// Uniform is overlaid onto every instance's props and wins every key
	// collision (e.g. shopId).
	Uniform layout.Props

	// TypeDefaults are layered underneath the stored props, keyed by
	// component type (e.g. an empty products list for ProductListGrid).
	TypeDefaults map[string]layout.Props
}

// Pipeline renders layouts against one registry. It holds no per-render
// state and is safe to reuse across pages.
type Pipeline struct {
	reg    *registry.Registry
	mode   Mode
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMode selects dev or prod placeholder detail. Default: ModeProd.
func WithMode(m Mode) Option {
	return func(p *Pipeline) { p.mode = m }
}

// WithLogger sets the diagnostic logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a pipeline over the given registry.
func New(reg *registry.Registry, opts ...Option) *Pipeline {
	p := &Pipeline{reg: reg, mode: ModeProd, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RenderRaw parses persisted layout bytes and renders them. Malformed data
// becomes the page-level "no content configured" result; it is never an
// error return, because a broken blob must not break the page.
func (p *Pipeline) RenderRaw(data []byte, inj Injected) Result {
	l, err := layout.Parse(data)
	if err != nil {
		p.logger.Warn("layout data malformed, rendering page-level placeholder", "error", err)
		return Result{State: StateMalformed}
	}
	return p.Render(l, inj)
}

// Render renders a parsed layout. A nil layout is treated as malformed
// (case 1); an empty layout is the distinct intentionally-cleared case.
func (p *Pipeline) Render(l layout.Layout, inj Injected) Result {
	if l == nil {
		return Result{State: StateMalformed}
	}
	if len(l) == 0 {
		return Result{State: StateEmpty}
	}

	nodes := make([]Node, 0, len(l))
	for _, inst := range l {
		nodes = append(nodes, p.renderInstance(inst, inj))
	}
	return Result{State: StateOK, Nodes: nodes}
}

// renderInstance runs the per-instance algorithm. Every outcome, including
// a renderer panic, degrades to a placeholder node - nothing propagates.
func (p *Pipeline) renderInstance(inst layout.ComponentInstance, inj Injected) Node {
	renderFn, ok := p.reg.Component(inst.Type)
	if !ok {
		p.logger.Warn("unknown component type, rendering placeholder",
			"instance", inst.ID, "type", inst.Type)
		return p.placeholderNode(inst, &InstanceError{Kind: ErrUnknownType, Type: inst.Type})
	}

	// The two lookups are derived from one table, so a registered type
	// always has a schema; the guard keeps the failure local even if that
	// invariant is ever broken.
	sch, ok := p.reg.Schema(inst.Type)
	if !ok {
		p.logger.Error("registered type has no schema", "type", inst.Type)
		return p.placeholderNode(inst, &InstanceError{Kind: ErrUnknownType, Type: inst.Type})
	}

	effective := layout.MergeProps(inj.TypeDefaults[inst.Type], inst.Props, inj.Uniform)

	coerced, verrs := sch.Validate(inst.Variant, effective)
	if len(verrs) > 0 {
		p.logger.Warn("component props failed validation, rendering placeholder",
			"instance", inst.ID, "type", inst.Type, "errors", schema.FormatErrors(verrs))
		return p.placeholderNode(inst, &InstanceError{Kind: ErrInvalidProps, Type: inst.Type, Detail: verrs})
	}

	html, err := p.safeRender(renderFn, inst, coerced)
	if err != nil {
		p.logger.Error("component renderer failed, rendering placeholder",
			"instance", inst.ID, "type", inst.Type, "error", err)
		return p.placeholderNode(inst, &InstanceError{Kind: ErrRenderFailed, Type: inst.Type, Message: err.Error()})
	}

	return Node{ID: inst.ID, Type: inst.Type, HTML: html}
}

// safeRender invokes a renderer with a panic guard. A panicking component
// is a defect in that component, and it must cost exactly one slot on the
// page.
func (p *Pipeline) safeRender(fn component.RenderFunc, inst layout.ComponentInstance, props layout.Props) (html template.HTML, err error) {
	defer func() {
		if r := recover(); r != nil {
			html = ""
			err = fmt.Errorf("renderer panicked: %v", r)
		}
	}()
	return fn(component.Context{InstanceID: inst.ID, Variant: inst.Variant}, props)
}

func (p *Pipeline) placeholderNode(inst layout.ComponentInstance, ierr *InstanceError) Node {
	return Node{
		ID:   inst.ID,
		Type: inst.Type,
		HTML: renderPlaceholder(ierr, p.mode),
		Err:  ierr,
	}
}
