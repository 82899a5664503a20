// Package dnd translates drag-and-drop gestures into layout mutations.
//
// This adapter is the only place gesture semantics and data semantics
// meet: a drop payload maps 1:1 onto either Add (dragging a type from the
// palette) or Reorder (dragging a placed block). The mutation engine
// itself never sees pointer positions, drag thresholds, or any other
// gesture vocabulary - and the adapter never performs any mutation other
// than those two.
package dnd

import (
	"log/slog"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

// Gesture is the payload of a completed drag: exactly one of SourceType
// (palette drag) or SourceInstanceID (reorder drag) is set, plus the index
// the block was dropped at.
type Gesture struct {
	SourceType       string
	SourceInstanceID string
	TargetIndex      int
}

// Mutator is the slice of the mutation engine the adapter is allowed to
// drive. Satisfied by *editor.Editor.
type Mutator interface {
	Add(typ string, atIndex int) (string, bool)
	Reorder(fromIndex, toIndex int)
	Layout() layout.Layout
}

// Adapter converts gestures into engine calls.
type Adapter struct {
	engine Mutator
	logger *slog.Logger
}

// New creates an adapter over a mutation engine.
func New(engine Mutator, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{engine: engine, logger: logger}
}

// Drop applies a completed drag gesture. Contradictory payloads (none or
// both source fields set, an instance id the layout does not contain) are
// logged no-ops, matching the engine's own precondition policy.
func (a *Adapter) Drop(g Gesture) {
	switch {
	case g.SourceType != "" && g.SourceInstanceID != "":
		a.logger.Warn("ignoring drop with both a source type and an instance id",
			"type", g.SourceType, "instance", g.SourceInstanceID)

	case g.SourceType != "":
		a.engine.Add(g.SourceType, g.TargetIndex)

	case g.SourceInstanceID != "":
		from := a.engine.Layout().IndexOf(g.SourceInstanceID)
		if from < 0 {
			a.logger.Warn("ignoring drop of unknown instance id", "instance", g.SourceInstanceID)
			return
		}
		a.engine.Reorder(from, g.TargetIndex)

	default:
		a.logger.Warn("ignoring drop with no source")
	}
}
