package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/registry"
)

// PageStore is the persistence boundary for page layouts. The editor
// treats it as opaque request/response I/O; implementations live outside
// this package (see internal/store for the SQLite one).
//
// Save and ResetToDefault return the authoritative stored Page, which may
// be a normalized form of what was sent. Instances crossing this boundary
// carry exactly the four persisted fields - no runtime-only data.
type PageStore interface {
	LoadAll(ctx context.Context, shopID string) ([]layout.Page, error)
	LoadOne(ctx context.Context, shopID string, pt layout.PageType) (layout.Page, error)
	Save(ctx context.Context, shopID string, pt layout.PageType, l layout.Layout) (layout.Page, error)
	ResetToDefault(ctx context.Context, shopID string, pt layout.PageType) (layout.Page, error)
}

var (
	// ErrSaveInFlight rejects a save while another save is outstanding.
	ErrSaveInFlight = errors.New("editor: save already in flight")

	// ErrResetInFlight rejects a reset while another reset is outstanding.
	ErrResetInFlight = errors.New("editor: reset already in flight")

	// ErrNoPageLoaded rejects save/reset before any page was loaded.
	ErrNoPageLoaded = errors.New("editor: no page loaded")
)

// Editor holds one page's in-progress layout and applies the editing
// operations to it.
//
// An Editor is owned by a single editing session. Its mutex exists for the
// busy-flag handshake between the synchronous operations and an in-flight
// Save/Reset, not to support concurrent editing from multiple call sites.
type Editor struct {
	reg    *registry.Registry
	store  PageStore
	ids    IDGenerator
	logger *slog.Logger
	shopID string

	mu          sync.Mutex
	page        layout.PageType
	current     layout.Layout
	original    layout.Layout
	isSaving    bool
	isResetting bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator overrides the instance id source. Default: UUIDv7.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Editor) { e.ids = g }
}

// WithLogger sets the diagnostic logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// New creates an editor for one shop over the given registry and store.
// No page is loaded yet; call Load or SwitchPage first.
func New(reg *registry.Registry, store PageStore, shopID string, opts ...Option) *Editor {
	e := &Editor{
		reg:    reg,
		store:  store,
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
		shopID: shopID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load fetches a page's layout and makes it the working copy. Both the
// working copy and the snapshot are replaced, so the editor is clean
// afterwards.
func (e *Editor) Load(ctx context.Context, pt layout.PageType) error {
	page, err := e.store.LoadOne(ctx, e.shopID, pt)
	if err != nil {
		return fmt.Errorf("loading page %q: %w", pt, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.page = pt
	e.current = page.Layout.Clone()
	e.original = page.Layout.Clone()
	return nil
}

// SwitchPage makes another page the current one. The previous working
// copy is discarded - the editor keeps no memory of two pages at once, so
// any unsaved-changes confirmation must run before calling this.
func (e *Editor) SwitchPage(ctx context.Context, pt layout.PageType) error {
	if e.HasUnsavedChanges() {
		e.logger.Debug("switching page with unsaved changes, discarding working copy",
			"from", e.Page(), "to", pt)
	}
	return e.Load(ctx, pt)
}

// Add inserts a new instance of the given type at atIndex (clamped to
// [0, len]). The instance gets a fresh unique id, the type's default
// variant, and a deep copy of the type's default props.
//
// An unregistered type is a logged no-op, not an error: the palette the
// UI offered and the registry disagreed, and the page must not break over
// it. Returns the new instance id and whether the add happened.
func (e *Editor) Add(typ string, atIndex int) (string, bool) {
	meta, ok := e.reg.Metadata(typ)
	if !ok {
		e.logger.Warn("ignoring add of unknown component type", "type", typ)
		return "", false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if atIndex < 0 {
		atIndex = 0
	}
	if atIndex > len(e.current) {
		atIndex = len(e.current)
	}

	inst := layout.ComponentInstance{
		ID:      e.ids.Generate(),
		Type:    typ,
		Variant: meta.DefaultVariant,
		Props:   meta.DefaultProps.Clone(),
	}
	if inst.Props == nil {
		inst.Props = layout.Props{}
	}

	updated := make(layout.Layout, 0, len(e.current)+1)
	updated = append(updated, e.current[:atIndex]...)
	updated = append(updated, inst)
	updated = append(updated, e.current[atIndex:]...)
	e.current = updated

	return inst.ID, true
}

// Reorder moves the instance at fromIndex to toIndex, preserving every
// other instance's relative order. Equal or out-of-range indices are a
// logged no-op.
func (e *Editor) Reorder(fromIndex, toIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.current)
	if fromIndex == toIndex || fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		e.logger.Debug("ignoring reorder with unusable indices",
			"from", fromIndex, "to", toIndex, "len", n)
		return
	}

	inst := e.current[fromIndex]
	rest := append(e.current[:fromIndex:fromIndex], e.current[fromIndex+1:]...)

	updated := make(layout.Layout, 0, n)
	updated = append(updated, rest[:toIndex]...)
	updated = append(updated, inst)
	updated = append(updated, rest[toIndex:]...)
	e.current = updated
}

// Delete removes the instance with the given id. A missing id is a logged
// no-op - the UI may race its own view of the layout, and deleting an
// already-deleted block is not a fault.
func (e *Editor) Delete(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.current.IndexOf(id)
	if idx < 0 {
		e.logger.Debug("ignoring delete of unknown instance id", "id", id)
		return
	}
	e.current = append(e.current[:idx:idx], e.current[idx+1:]...)
}

// Layout returns a deep copy of the working copy. Callers never see the
// live structure, so a renderer preview cannot mutate editor state.
func (e *Editor) Layout() layout.Layout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

// HasUnsavedChanges reports whether the working copy differs structurally
// from the last loaded-or-saved snapshot.
func (e *Editor) HasUnsavedChanges() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.current.Equal(e.original)
}

// Page returns the currently loaded page type ("" before the first Load).
func (e *Editor) Page() layout.PageType {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.page
}

// IsSaving reports whether a save is outstanding.
func (e *Editor) IsSaving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isSaving
}

// IsResetting reports whether a reset is outstanding.
func (e *Editor) IsResetting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isResetting
}

// Save submits the working copy to the persistence boundary.
//
// On success both copies adopt the server-confirmed result (the store may
// normalize what it was sent) and the editor is clean. On failure the
// working copy is untouched and the dirty flag stands; surfacing the
// failure and retrying is the caller's job - Save never retries.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.page == "" {
		e.mu.Unlock()
		return ErrNoPageLoaded
	}
	if e.isSaving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	e.isSaving = true
	pt := e.page
	submitted := e.current.Clone()
	e.mu.Unlock()

	page, err := e.store.Save(ctx, e.shopID, pt, submitted)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.isSaving = false
	if err != nil {
		return fmt.Errorf("saving page %q: %w", pt, err)
	}

	// The working copy may have moved on while the request was in flight;
	// adopt the confirmed result only if it still corresponds to what was
	// submitted, otherwise just refresh the snapshot baseline.
	if e.current.Equal(submitted) {
		e.current = page.Layout.Clone()
	}
	e.original = page.Layout.Clone()
	return nil
}

// Reset asks the persistence boundary for the page's default template
// layout and adopts it wholesale, discarding unsaved changes. Any
// confirmation UX is the host's responsibility.
func (e *Editor) Reset(ctx context.Context) error {
	e.mu.Lock()
	if e.page == "" {
		e.mu.Unlock()
		return ErrNoPageLoaded
	}
	if e.isResetting {
		e.mu.Unlock()
		return ErrResetInFlight
	}
	e.isResetting = true
	pt := e.page
	e.mu.Unlock()

	page, err := e.store.ResetToDefault(ctx, e.shopID, pt)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.isResetting = false
	if err != nil {
		return fmt.Errorf("resetting page %q: %w", pt, err)
	}

	e.current = page.Layout.Clone()
	e.original = page.Layout.Clone()
	return nil
}
