package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

// ErrUnknownPageType rejects a page type outside the closed enumeration
// before it reaches SQL.
var ErrUnknownPageType = errors.New("store: unknown page type")

// LoadAll returns every page of the shop, ordered by page type. Pages
// that were never touched are not provisioned here; use LoadOne for that.
func (s *Store) LoadAll(ctx context.Context, shopID string) ([]layout.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page_type, layout, created_at, updated_at
		FROM pages WHERE shop_id = ?
		ORDER BY page_type ASC
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("load all pages: %w", err)
	}
	defer rows.Close()

	var out []layout.Page
	for rows.Next() {
		var (
			pt                   string
			blob                 []byte
			createdAt, updatedAt string
		)
		if err := rows.Scan(&pt, &blob, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("load all pages: %w", err)
		}
		page, err := buildPage(shopID, layout.PageType(pt), blob, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, page)
	}
	return out, rows.Err()
}

// LoadOne returns the page's current layout plus timestamps. A page that
// does not exist yet is provisioned from the embedded default template
// first, so a fresh shop always has a renderable page per type.
func (s *Store) LoadOne(ctx context.Context, shopID string, pt layout.PageType) (layout.Page, error) {
	if !pt.Valid() {
		return layout.Page{}, fmt.Errorf("%w: %q", ErrUnknownPageType, pt)
	}

	page, err := s.loadRow(ctx, shopID, pt)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return layout.Page{}, err
	}
	return s.writeLayout(ctx, shopID, pt, s.defaultLayout(pt))
}

// LoadRaw returns the stored layout column verbatim. The rendering
// pipeline consumes this instead of LoadOne so a hand-edited or stale
// blob reaches its malformed-layout handling rather than erroring here.
func (s *Store) LoadRaw(ctx context.Context, shopID string, pt layout.PageType) ([]byte, error) {
	if !pt.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPageType, pt)
	}

	var blob []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT layout FROM pages WHERE shop_id = ? AND page_type = ?
	`, shopID, string(pt)).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		page, err := s.writeLayout(ctx, shopID, pt, s.defaultLayout(pt))
		if err != nil {
			return nil, err
		}
		return layout.MarshalCanonical(page.Layout)
	}
	if err != nil {
		return nil, fmt.Errorf("load raw layout: %w", err)
	}
	return blob, nil
}

// Save atomically replaces the stored layout for the page and returns the
// authoritative stored result. Normalization happens through the
// canonical round trip: the returned page's layout is what a subsequent
// load will produce, not necessarily byte-for-byte what was passed in.
func (s *Store) Save(ctx context.Context, shopID string, pt layout.PageType, l layout.Layout) (layout.Page, error) {
	if !pt.Valid() {
		return layout.Page{}, fmt.Errorf("%w: %q", ErrUnknownPageType, pt)
	}
	if l == nil {
		// nil is "no layout", which a save may never produce; an
		// intentionally cleared page is an empty, non-nil layout.
		return layout.Page{}, fmt.Errorf("store: refusing to save nil layout for page %q", pt)
	}
	return s.writeLayout(ctx, shopID, pt, l)
}

// ResetToDefault atomically replaces the stored layout with the embedded
// default template for the page type, minting fresh instance ids.
func (s *Store) ResetToDefault(ctx context.Context, shopID string, pt layout.PageType) (layout.Page, error) {
	if !pt.Valid() {
		return layout.Page{}, fmt.Errorf("%w: %q", ErrUnknownPageType, pt)
	}
	return s.writeLayout(ctx, shopID, pt, s.defaultLayout(pt))
}

func (s *Store) loadRow(ctx context.Context, shopID string, pt layout.PageType) (layout.Page, error) {
	var (
		blob                 []byte
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT layout, created_at, updated_at
		FROM pages WHERE shop_id = ? AND page_type = ?
	`, shopID, string(pt)).Scan(&blob, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return layout.Page{}, err
		}
		return layout.Page{}, fmt.Errorf("load page %q: %w", pt, err)
	}
	return buildPage(shopID, pt, blob, createdAt, updatedAt)
}

// writeLayout upserts the canonical form and reads the row back, so Save,
// Reset, and first-load provisioning all return the same authoritative
// shape.
func (s *Store) writeLayout(ctx context.Context, shopID string, pt layout.PageType, l layout.Layout) (layout.Page, error) {
	blob, err := layout.MarshalCanonical(l)
	if err != nil {
		return layout.Page{}, fmt.Errorf("serialize layout for page %q: %w", pt, err)
	}

	now := s.now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (shop_id, page_type, layout, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(shop_id, page_type) DO UPDATE SET
			layout = excluded.layout,
			updated_at = excluded.updated_at
	`, shopID, string(pt), string(blob), now, now)
	if err != nil {
		return layout.Page{}, fmt.Errorf("write page %q: %w", pt, err)
	}

	return s.loadRow(ctx, shopID, pt)
}

func buildPage(shopID string, pt layout.PageType, blob []byte, createdAt, updatedAt string) (layout.Page, error) {
	l, err := layout.Parse(blob)
	if err != nil {
		return layout.Page{}, fmt.Errorf("stored layout for page %q is corrupt: %w", pt, err)
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return layout.Page{}, fmt.Errorf("page %q: bad created_at %q: %w", pt, createdAt, err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return layout.Page{}, fmt.Errorf("page %q: bad updated_at %q: %w", pt, updatedAt, err)
	}

	return layout.Page{
		ShopID:    shopID,
		Type:      pt,
		Layout:    l,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}
