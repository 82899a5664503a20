package layout

// ComponentInstance is one placed block within a page layout.
// Exactly these four fields cross the persistence boundary; runtime-only
// fields (fetched data, loading flags) are never part of an instance.
type ComponentInstance struct {
	// ID is an opaque unique identifier, generated once at creation and
	// never reused. Stable across edits and reorders.
	ID string `json:"id"`

	// Type is the component registry key (e.g. "Heading"). Not guaranteed
	// valid - the rendering pipeline treats an unknown type as a
	// recoverable per-instance error, never a crash.
	Type string `json:"type"`

	// Variant selects the component's presentation mode. Which variant
	// values are legal, and which companion fields they require, is
	// enforced by the component's own schema, not by the registry.
	Variant string `json:"variant"`

	// Props is the component-specific configuration, persisted verbatim.
	Props Props `json:"props"`
}

// Clone returns a deep copy of the instance.
func (ci ComponentInstance) Clone() ComponentInstance {
	out := ci
	out.Props = ci.Props.Clone()
	return out
}

// Equal reports structural equality: same id, type, variant, and props.
func (ci ComponentInstance) Equal(other ComponentInstance) bool {
	return ci.ID == other.ID &&
		ci.Type == other.Type &&
		ci.Variant == other.Variant &&
		ci.Props.Equal(other.Props)
}

// Layout is the ordered list of component instances for one page.
// Order defines vertical stacking; duplicates of a type are allowed.
type Layout []ComponentInstance

// Clone returns a deep copy. An empty (non-nil) layout clones to an empty
// layout, preserving the empty-vs-absent distinction.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	for i, inst := range l {
		out[i] = inst.Clone()
	}
	return out
}

// Equal reports deep structural equality. Order and content both matter.
// This is the comparison behind dirty tracking, so it must never be a
// reference check or a serialize-and-compare shortcut.
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// IndexOf returns the position of the instance with the given id, or -1.
func (l Layout) IndexOf(id string) int {
	for i, inst := range l {
		if inst.ID == id {
			return i
		}
	}
	return -1
}
