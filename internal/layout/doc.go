// Package layout defines the data model for page layouts.
//
// A Layout is an ordered list of ComponentInstance values. Order is
// significant (it defines vertical stacking on the rendered page) and
// duplicates of the same component type are allowed. An empty Layout is
// valid and distinct from "no layout stored at all".
//
// Each ComponentInstance carries exactly four persisted fields:
//
//	id      - opaque unique identifier, stable across edits and reorders
//	type    - key into the component registry (not guaranteed valid)
//	variant - presentation-mode discriminator, enforced by the type's schema
//	props   - open key/value configuration, validated lazily at render time
//
// INVARIANT: props never contains runtime-injected fields (fetched data,
// loading flags, callbacks). Those are supplied at render time and must not
// survive a trip through the persistence boundary.
//
// Serialization uses RFC 8785 canonical JSON (UTF-16 key ordering, NFC
// normalized strings, no HTML escaping) so that a stored layout has exactly
// one byte representation. Parsing uses json.Number throughout to avoid
// float64 precision loss; equality is structural and numeric-aware, never
// string comparison.
package layout
