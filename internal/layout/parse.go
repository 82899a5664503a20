package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed reports that persisted data is not a recognizable layout at
// all: absent, JSON null, not an array, or an element that is not an
// instance object. Callers render a single page-level "no content
// configured" placeholder for this case and skip per-instance processing.
//
// An empty array is NOT malformed - it parses to an empty Layout, which is
// the intentionally-cleared state and gets a different placeholder.
var ErrMalformed = errors.New("malformed layout data")

// Parse decodes persisted layout JSON into a Layout.
//
// Numbers decode as json.Number to preserve precision. Per-instance field
// errors (missing id, non-string type) are NOT detected here: an instance
// with unusual field values is still a structurally valid instance, and
// the rendering pipeline degrades it per instance instead of discarding
// the whole page.
func Parse(data []byte) (Layout, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: no layout stored", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var raw []rawInstance
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := make(Layout, len(raw))
	for i, ri := range raw {
		out[i] = ComponentInstance{
			ID:      ri.ID,
			Type:    ri.Type,
			Variant: ri.Variant,
			Props:   ri.Props,
		}
		if out[i].Props == nil {
			out[i].Props = Props{}
		}
	}
	return out, nil
}

// rawInstance mirrors the four-field persisted shape. Unknown extra fields
// are dropped on parse, which keeps stale blobs from older schema versions
// loadable.
type rawInstance struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Variant string `json:"variant"`
	Props   Props  `json:"props"`
}
