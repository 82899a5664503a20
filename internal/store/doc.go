// Package store provides the SQLite-backed implementation of the page
// persistence boundary.
//
// One row per (shop_id, page_type) pair, enforced by a UNIQUE constraint.
// The layout column holds RFC 8785 canonical JSON produced by
// layout.MarshalCanonical, so a stored layout has exactly one byte
// representation and Save returns a normalized form of what it was sent
// (key order fixed, numbers in canonical form, nil props as {}).
//
// An empty layout persists as "[]", which is distinct from a missing row:
// the first is a page the owner intentionally cleared, the second does
// not exist yet and is provisioned from the embedded default template on
// first load.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
package store
