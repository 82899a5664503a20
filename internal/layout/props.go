package layout

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf16"
)

// Props is the open, component-specific configuration map of an instance.
// Values are JSON-shaped: nil, bool, string, json.Number (or a Go numeric
// type when authored in code), []any, and map[string]any.
//
// Props is persisted verbatim and validated lazily at render time against
// the registry-declared schema for the instance's type.
type Props map[string]any

// Clone returns a deep copy. Mutating the copy never affects the original.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

// Equal reports structural equality with the other props map.
// Numbers compare by value, so json.Number("3") equals int(3) - a layout
// that round-tripped through JSON stays equal to its in-memory origin.
func (p Props) Equal(other Props) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !equalValue(v, ov) {
			return false
		}
	}
	return true
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// Go's sort.Strings uses UTF-8 byte order, which differs for keys outside
// the BMP, so the comparison goes through unicode/utf16.
func (p Props) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings by UTF-16 code units as required by
// RFC 8785 canonical JSON key ordering.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := min(len(a16), len(b16))
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	default:
		return 0
	}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = cloneValue(elem)
		}
		return out
	case Props:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		// Scalars (string, bool, numbers, json.Number, nil) are immutable.
		return val
	}
}

// equalValue compares two JSON-shaped values structurally.
func equalValue(a, b any) bool {
	// Numeric values compare by value regardless of representation.
	if an, aok := numericValue(a); aok {
		bn, bok := numericValue(b)
		return bok && an == bn
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := toMap(b)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, elem := range av {
			belem, present := bv[k]
			if !present || !equalValue(elem, belem) {
				return false
			}
		}
		return true
	case Props:
		bv, ok := toMap(b)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

func toMap(v any) (Props, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Props(m), true
	case Props:
		return m, true
	default:
		return nil, false
	}
}

// numericValue reduces any numeric representation to float64.
// float64 is exact for every int64 a layout plausibly stores; props are
// UI configuration, not financial counters.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// normalizeValue converts a JSON-shaped value to the parsed representation
// (json.Number for numbers, map[string]any for objects). Used by canonical
// marshaling so in-memory and round-tripped layouts serialize identically.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, json.Number:
		return val, nil
	case int, int32, int64:
		return json.Number(fmt.Sprintf("%d", val)), nil
	case float32, float64:
		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return json.Number(data), nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			norm, err := normalizeValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			norm, err := normalizeValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", k, err)
			}
			out[k] = norm
		}
		return out, nil
	case Props:
		return normalizeValue(map[string]any(val))
	default:
		return nil, fmt.Errorf("unsupported props value type: %T", v)
	}
}
