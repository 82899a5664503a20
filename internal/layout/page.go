package layout

import (
	"fmt"
	"time"
)

// PageType identifies which of a shop's pages a layout belongs to.
// The set is closed: exactly one page of each type exists per shop.
type PageType string

const (
	PageHome    PageType = "home"
	PageCatalog PageType = "catalog"
	PageProduct PageType = "product"
	PageContact PageType = "contact"
)

// PageTypes lists all valid page types in display order.
var PageTypes = []PageType{PageHome, PageCatalog, PageProduct, PageContact}

// Valid reports whether pt is a member of the closed page-type set.
func (pt PageType) Valid() bool {
	switch pt {
	case PageHome, PageCatalog, PageProduct, PageContact:
		return true
	}
	return false
}

// ParsePageType converts a raw string to a PageType.
func ParsePageType(s string) (PageType, error) {
	pt := PageType(s)
	if !pt.Valid() {
		return "", fmt.Errorf("unknown page type %q (valid: %v)", s, PageTypes)
	}
	return pt, nil
}

// Page is one shop page: its layout plus bookkeeping timestamps.
// The (ShopID, Type) pair is unique - a shop has at most one page per type.
type Page struct {
	ShopID    string    `json:"shop_id"`
	Type      PageType  `json:"type"`
	Layout    Layout    `json:"layout"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
