package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

const headingSchema = `
variant: "text-only" | "background-image"
text:    string & !=""
level:   int & >=1 & <=6 | *2
if variant == "background-image" {
	imageUrl: string & !=""
}
`

func TestCompileRejectsBadSource(t *testing.T) {
	_, err := Compile(`text: string &`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrSchemaCompile)
}

func TestCompileRejectsNonStruct(t *testing.T) {
	_, err := Compile(`"just a string"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrSchemaCompile)
}

func TestMustCompilePanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`x: int &`) })
}

func TestValidateSuccess(t *testing.T) {
	s := MustCompile(headingSchema)

	got, errs := s.Validate("text-only", layout.Props{"text": "Hello", "level": 3})
	require.Empty(t, errs)
	assert.Equal(t, "Hello", got["text"])
}

func TestValidateAppliesDefaults(t *testing.T) {
	s := MustCompile(headingSchema)

	got, errs := s.Validate("text-only", layout.Props{"text": "Hello"})
	require.Empty(t, errs)
	// The renderer must receive the coerced result, defaults included.
	assert.EqualValues(t, 2, got["level"])
}

func TestValidateMissingRequiredField(t *testing.T) {
	s := MustCompile(headingSchema)

	got, errs := s.Validate("text-only", layout.Props{})
	assert.Nil(t, got)
	require.NotEmpty(t, errs)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "text")
}

func TestValidateWrongType(t *testing.T) {
	s := MustCompile(headingSchema)

	got, errs := s.Validate("text-only", layout.Props{"text": 42})
	assert.Nil(t, got)
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrFieldInvalid, errs[0].Code)
}

func TestValidateIllegalVariant(t *testing.T) {
	s := MustCompile(headingSchema)

	got, errs := s.Validate("sideways", layout.Props{"text": "Hello"})
	assert.Nil(t, got)
	require.NotEmpty(t, errs)
}

func TestValidateVariantConditionalField(t *testing.T) {
	s := MustCompile(headingSchema)

	// text-only does not need imageUrl.
	_, errs := s.Validate("text-only", layout.Props{"text": "Hi"})
	assert.Empty(t, errs)

	// background-image requires it.
	_, errs = s.Validate("background-image", layout.Props{"text": "Hi"})
	require.NotEmpty(t, errs)

	got, errs := s.Validate("background-image", layout.Props{"text": "Hi", "imageUrl": "/hero.jpg"})
	require.Empty(t, errs)
	assert.Equal(t, "/hero.jpg", got["imageUrl"])
}

func TestValidateOutOfRange(t *testing.T) {
	s := MustCompile(headingSchema)

	_, errs := s.Validate("text-only", layout.Props{"text": "Hi", "level": 9})
	require.NotEmpty(t, errs)
	assert.Equal(t, "level", errs[0].Field)
}

func TestValidateOpenTopLevelPassesUndeclaredKeys(t *testing.T) {
	s := MustCompile(headingSchema)

	// Runtime-injected uniform fields (shopId) and stale leftovers are not
	// declared by the schema; they pass through untouched.
	got, errs := s.Validate("text-only", layout.Props{"text": "Hi", "shopId": "shop-1"})
	require.Empty(t, errs)
	assert.Equal(t, "shop-1", got["shopId"])
}

func TestValidateStripsVariantFromResult(t *testing.T) {
	s := MustCompile(headingSchema)

	got, errs := s.Validate("text-only", layout.Props{"text": "Hi"})
	require.Empty(t, errs)
	assert.NotContains(t, got, "variant")
}

func TestValidateReportsAllErrors(t *testing.T) {
	s := MustCompile(`
variant: "default"
title:   string
count:   int & >=0
`)

	_, errs := s.Validate("default", layout.Props{"title": 1, "count": -5})
	assert.GreaterOrEqual(t, len(errs), 2, "validation collects all failures, not just the first")
}

func TestFormatErrors(t *testing.T) {
	errs := []ValidationError{
		{Field: "text", Message: "required", Code: ErrFieldMissing},
		{Field: "level", Message: "out of range", Code: ErrFieldInvalid},
	}
	out := FormatErrors(errs)
	assert.Contains(t, out, "text")
	assert.Contains(t, out, "level")
}
