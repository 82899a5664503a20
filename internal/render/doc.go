// Package render implements the layout validation and rendering pipeline.
//
// Given a persisted layout and the runtime-injected props, the pipeline
// resolves each instance's type against the registry, merges the three
// props layers (type runtime defaults < stored props < uniform injected
// props), validates the result against the type's schema, and renders
// either the component or a self-contained placeholder.
//
// Failure semantics, in order of checks:
//
//  1. Data that is not a recognizable layout at all yields one page-level
//     "no content configured" placeholder; no per-instance work happens.
//  2. A present-but-empty layout yields a distinct "empty page"
//     placeholder, so editors can tell "never configured" from
//     "intentionally cleared".
//  3. An unknown type yields an inline placeholder naming the type; the
//     remaining instances still render.
//  4. Invalid props yield an inline placeholder; the structured validation
//     failure appears in the markup only in dev mode but is always logged.
//
// Nothing escapes one instance's handling: renderer errors and panics are
// captured and degraded to placeholders. Output order always equals input
// order, and every node - success or placeholder - carries its instance id
// as its stable identity key.
package render
