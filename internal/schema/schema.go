package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

// Schema is a compiled props contract for one component type.
//
// The CUE source must evaluate to a struct. The instance's variant is
// validated as the top-level "variant" field of the same document, which is
// what lets a schema express variant-conditional requirements:
//
//	variant: "text-only" | "background-image"
//	text:    string & !=""
//	if variant == "background-image" {
//		imageUrl: string & !=""
//	}
type Schema struct {
	source string
	ctx    *cue.Context
	val    cue.Value

	// The CUE evaluator is not safe for concurrent use on shared values;
	// Validate serializes through this mutex.
	mu sync.Mutex
}

// Compile parses and compiles a CUE schema source.
// A compile failure is a programming error in a registry entry; callers
// surface it at startup, never at render time.
func Compile(source string) (*Schema, error) {
	ctx := cuecontext.New()
	val := ctx.CompileString(source)
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("[%s] compiling schema: %w", ErrSchemaCompile, err)
	}
	if k := val.IncompleteKind(); k != cue.StructKind {
		return nil, fmt.Errorf("[%s] schema must be a struct, got %s", ErrSchemaCompile, k)
	}
	return &Schema{source: source, ctx: ctx, val: val}, nil
}

// MustCompile is Compile for static registry entries; it panics on error.
func MustCompile(source string) *Schema {
	s, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return s
}

// Source returns the CUE source the schema was compiled from.
func (s *Schema) Source() string {
	return s.source
}

// Validate checks the effective props plus the instance variant against the
// schema and returns the coerced result: declared optional fields filled
// with their CUE defaults, the "variant" key stripped back out.
//
// On failure it returns nil props and at least one ValidationError. It
// never panics and never returns an unstructured error.
func (s *Schema) Validate(variant string, props layout.Props) (layout.Props, []ValidationError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(map[string]any, len(props)+1)
	for k, v := range props {
		doc[k] = v
	}
	doc["variant"] = variant

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, []ValidationError{{
			Message: fmt.Sprintf("props not JSON-encodable: %v", err),
			Code:    ErrPropsEncode,
		}}
	}

	// JSON is a subset of CUE, so the document compiles directly.
	pv := s.ctx.CompileBytes(data)
	if err := pv.Err(); err != nil {
		return nil, toValidationErrors(err)
	}

	unified := s.val.Unify(pv)
	if err := unified.Err(); err != nil {
		return nil, toValidationErrors(err)
	}
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return nil, toValidationErrors(err)
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, toValidationErrors(err)
	}
	delete(out, "variant")
	return layout.Props(out), nil
}

// toValidationErrors converts a CUE error (possibly a list) into structured
// validation errors. All errors are reported, not just the first.
func toValidationErrors(err error) []ValidationError {
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)

		code := ErrFieldInvalid
		if strings.Contains(msg, "incomplete") {
			code = ErrFieldMissing
		}

		out = append(out, ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: msg,
			Code:    code,
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Message: err.Error(), Code: ErrFieldInvalid})
	}
	return out
}
