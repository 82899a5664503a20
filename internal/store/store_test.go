package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	var n int
	s, err := Open(filepath.Join(t.TempDir(), "pages.db"), WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := s.LoadOne(context.Background(), "shop-1", layout.PageHome); err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s2.Close()

	page, err := s2.LoadOne(context.Background(), "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("LoadOne after reopen: %v", err)
	}
	if len(page.Layout) == 0 {
		t.Fatal("provisioned page lost across reopen")
	}
}

func TestLoadOneProvisionsDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	page, err := s.LoadOne(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	if page.ShopID != "shop-1" || page.Type != layout.PageHome {
		t.Fatalf("wrong page identity: %q %q", page.ShopID, page.Type)
	}

	wantTypes := []string{"Banner", "ProductListGrid", "Newsletter"}
	if len(page.Layout) != len(wantTypes) {
		t.Fatalf("home template has %d instances, want %d", len(page.Layout), len(wantTypes))
	}
	seen := map[string]bool{}
	for i, inst := range page.Layout {
		if inst.Type != wantTypes[i] {
			t.Errorf("instance %d type = %q, want %q", i, inst.Type, wantTypes[i])
		}
		if inst.ID == "" {
			t.Errorf("instance %d has empty id", i)
		}
		if seen[inst.ID] {
			t.Errorf("duplicate instance id %q", inst.ID)
		}
		seen[inst.ID] = true
		if inst.Variant == "" {
			t.Errorf("instance %d has empty variant", i)
		}
	}
	if page.CreatedAt.IsZero() || page.UpdatedAt.IsZero() {
		t.Error("provisioned page has zero timestamps")
	}

	// The second load must return the same provisioned row, not mint a
	// new layout.
	again, err := s.LoadOne(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("second LoadOne: %v", err)
	}
	if !again.Layout.Equal(page.Layout) {
		t.Error("second load re-provisioned the page")
	}
}

func TestEachPageTypeHasTemplate(t *testing.T) {
	s := openTestStore(t)
	for _, pt := range layout.PageTypes {
		page, err := s.LoadOne(context.Background(), "shop-1", pt)
		if err != nil {
			t.Fatalf("LoadOne(%q): %v", pt, err)
		}
		if len(page.Layout) == 0 {
			t.Errorf("default template for %q is empty", pt)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l := layout.Layout{
		{ID: "a", Type: "Heading", Variant: "text-only", Props: layout.Props{"text": "Hi", "level": 1}},
		{ID: "b", Type: "Text", Variant: "default", Props: nil},
	}
	saved, err := s.Save(ctx, "shop-1", layout.PageContact, l)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved.Layout) != 2 {
		t.Fatalf("saved layout has %d instances, want 2", len(saved.Layout))
	}
	// nil props come back as an empty object, not nil.
	if saved.Layout[1].Props == nil {
		t.Error("nil props not normalized to empty map")
	}
	if !saved.Layout.Equal(l) {
		t.Error("saved layout differs from submitted layout")
	}

	loaded, err := s.LoadOne(ctx, "shop-1", layout.PageContact)
	if err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	if !loaded.Layout.Equal(saved.Layout) {
		t.Error("loaded layout differs from saved layout")
	}
}

func TestSaveEmptyLayoutIsNotReprovisioned(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, "shop-1", layout.PageHome, layout.Layout{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	page, err := s.LoadOne(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	if page.Layout == nil {
		t.Fatal("cleared page loaded as nil layout")
	}
	if len(page.Layout) != 0 {
		t.Fatalf("cleared page loaded %d instances, want 0", len(page.Layout))
	}

	raw, err := s.LoadRaw(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("cleared page stored as %q, want %q", raw, "[]")
	}
}

func TestSaveRejectsNilLayout(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Save(context.Background(), "shop-1", layout.PageHome, nil); err == nil {
		t.Fatal("Save(nil) succeeded, want error")
	}
}

func TestSavePreservesCreatedAt(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewFrozenClock(start)
	s, err := Open(filepath.Join(t.TempDir(), "pages.db"), WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	first, err := s.Save(ctx, "shop-1", layout.PageHome, layout.Layout{})
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if !first.CreatedAt.Equal(start) || !first.UpdatedAt.Equal(start) {
		t.Fatalf("initial timestamps = %v / %v, want %v", first.CreatedAt, first.UpdatedAt, start)
	}

	clock.Advance(90 * time.Minute)
	saved, err := s.Save(ctx, "shop-1", layout.PageHome, layout.Layout{
		{ID: "a", Type: "Text", Variant: "default", Props: layout.Props{"content": "x"}},
	})
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if !saved.CreatedAt.Equal(start) {
		t.Errorf("created_at rewritten on update: %v", saved.CreatedAt)
	}
	if !saved.UpdatedAt.Equal(start.Add(90 * time.Minute)) {
		t.Errorf("updated_at = %v, want %v", saved.UpdatedAt, start.Add(90*time.Minute))
	}
}

func TestResetToDefaultMintsFreshIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.LoadOne(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	if _, err := s.Save(ctx, "shop-1", layout.PageHome, layout.Layout{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reset, err := s.ResetToDefault(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("ResetToDefault: %v", err)
	}
	if len(reset.Layout) != len(first.Layout) {
		t.Fatalf("reset layout has %d instances, want %d", len(reset.Layout), len(first.Layout))
	}
	firstIDs := map[string]bool{}
	for _, inst := range first.Layout {
		firstIDs[inst.ID] = true
	}
	for i, inst := range reset.Layout {
		if inst.Type != first.Layout[i].Type {
			t.Errorf("instance %d type = %q, want %q", i, inst.Type, first.Layout[i].Type)
		}
		if firstIDs[inst.ID] {
			t.Errorf("instance id %q reused across reset", inst.ID)
		}
	}
}

func TestLoadAllOrderedByPageType(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Provision in non-alphabetical order.
	for _, pt := range []layout.PageType{layout.PageProduct, layout.PageHome, layout.PageCatalog} {
		if _, err := s.LoadOne(ctx, "shop-1", pt); err != nil {
			t.Fatalf("LoadOne(%q): %v", pt, err)
		}
	}
	// Another shop's pages must not leak in.
	if _, err := s.LoadOne(ctx, "shop-2", layout.PageHome); err != nil {
		t.Fatalf("LoadOne(shop-2): %v", err)
	}

	pages, err := s.LoadAll(ctx, "shop-1")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	got := make([]string, len(pages))
	for i, p := range pages {
		if p.ShopID != "shop-1" {
			t.Errorf("page %d belongs to %q", i, p.ShopID)
		}
		got[i] = string(p.Type)
	}
	want := "catalog,home,product"
	if strings.Join(got, ",") != want {
		t.Errorf("LoadAll order = %q, want %q", strings.Join(got, ","), want)
	}
}

func TestLoadRawPassesCorruptBlobThrough(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.LoadOne(ctx, "shop-1", layout.PageHome); err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	if _, err := s.db.Exec(
		`UPDATE pages SET layout = ? WHERE shop_id = ? AND page_type = ?`,
		`{"not":"a layout"}`, "shop-1", string(layout.PageHome),
	); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	raw, err := s.LoadRaw(ctx, "shop-1", layout.PageHome)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if string(raw) != `{"not":"a layout"}` {
		t.Errorf("LoadRaw = %q, want blob verbatim", raw)
	}

	// The typed load refuses the same row.
	if _, err := s.LoadOne(ctx, "shop-1", layout.PageHome); err == nil {
		t.Error("LoadOne accepted a corrupt layout column")
	}
}

func TestUnknownPageTypeRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.LoadOne(ctx, "shop-1", "blog"); err == nil {
		t.Error("LoadOne accepted unknown page type")
	}
	if _, err := s.Save(ctx, "shop-1", "blog", layout.Layout{}); err == nil {
		t.Error("Save accepted unknown page type")
	}
	if _, err := s.ResetToDefault(ctx, "shop-1", "blog"); err == nil {
		t.Error("ResetToDefault accepted unknown page type")
	}
	if _, err := s.LoadRaw(ctx, "shop-1", "blog"); err == nil {
		t.Error("LoadRaw accepted unknown page type")
	}
}
