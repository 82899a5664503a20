package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical serializes a Layout to RFC 8785 canonical JSON.
// This is the only serialization that may cross the persistence boundary:
// one layout value has exactly one byte representation, so stored blobs
// can be compared and deduplicated byte-wise.
//
// Canonical rules applied:
//  1. Object keys sorted by UTF-16 code units
//  2. Strings NFC normalized, no HTML escaping
//  3. Numbers in shortest json.Number form
//
// Each instance serializes to exactly {id, props, type, variant}; an
// instance with nil props serializes with "props":{} so parsing a stored
// layout never yields a nil props map.
func MarshalCanonical(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, inst := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := marshalInstance(&buf, inst); err != nil {
			return nil, fmt.Errorf("instance[%d]: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// marshalInstance writes one instance object. The four keys are ASCII, so
// their UTF-16 canonical order is plain alphabetical: id, props, type,
// variant.
func marshalInstance(buf *bytes.Buffer, inst ComponentInstance) error {
	buf.WriteString(`{"id":`)
	if err := marshalCanonicalString(buf, inst.ID); err != nil {
		return err
	}
	buf.WriteString(`,"props":`)
	props := inst.Props
	if props == nil {
		props = Props{}
	}
	if err := marshalCanonicalValue(buf, map[string]any(props)); err != nil {
		return fmt.Errorf("props: %w", err)
	}
	buf.WriteString(`,"type":`)
	if err := marshalCanonicalString(buf, inst.Type); err != nil {
		return err
	}
	buf.WriteString(`,"variant":`)
	if err := marshalCanonicalString(buf, inst.Variant); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func marshalCanonicalValue(buf *bytes.Buffer, v any) error {
	norm, err := normalizeValue(v)
	if err != nil {
		return err
	}

	switch val := norm.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		buf.WriteString(strconv.FormatBool(val))
		return nil
	case string:
		return marshalCanonicalString(buf, val)
	case json.Number:
		buf.WriteString(val.String())
		return nil
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalCanonicalValue(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]any:
		buf.WriteByte('{')
		keys := Props(val).SortedKeys()
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalCanonicalString(buf, k); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
			buf.WriteByte(':')
			if err := marshalCanonicalValue(buf, val[k]); err != nil {
				return fmt.Errorf("value for key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("unsupported canonical JSON type: %T", norm)
	}
}

// marshalCanonicalString writes an NFC-normalized JSON string.
// RFC 8785 escapes only control characters, backslash, and quote; HTML
// characters and U+2028/U+2029 stay literal. Go's json.Encoder escapes
// both for JavaScript embedding, so the escaping is done by hand here.
func marshalCanonicalString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)

	buf.WriteByte('"')
	for _, r := range normalized {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
	return nil
}
