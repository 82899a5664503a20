// Package editor implements the layout mutation engine behind the visual
// theme editor.
//
// The engine owns two layouts: the working copy the user edits and the
// snapshot of the last loaded-or-saved state. Dirty state is the deep
// structural inequality of the two - order and content both matter, and
// the comparison is never a serialize-and-compare shortcut.
//
// Add, Reorder, and Delete are synchronous and purely in-memory; their
// precondition failures (unknown type, out-of-range index, missing id) are
// logged no-ops, because they represent the UI asking for something
// contradictory, not a system fault. Save and Reset are the only two
// suspension points: each talks to the persistence boundary, holds a busy
// flag while in flight, and rejects a second identical request with a
// sentinel error instead of racing the first.
//
// One Editor owns one page's working copy at a time. SwitchPage discards
// the previous copy without asking; an unsaved-changes confirmation gate
// belongs to the host UI, which can consult HasUnsavedChanges first.
// External consumers only ever receive deep copies of the working copy,
// never the live structure.
package editor
