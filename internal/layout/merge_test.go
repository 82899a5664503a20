package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergePropsPrecedence(t *testing.T) {
	defaults := Props{"products": []any{}, "isLoading": false, "title": "Default"}
	stored := Props{"title": "Stored", "columns": 3}
	runtime := Props{"shopId": "shop-1", "isLoading": true}

	got := MergeProps(defaults, stored, runtime)

	// defaults < stored < runtime
	assert.Equal(t, "Stored", got["title"])
	assert.Equal(t, true, got["isLoading"])
	assert.Equal(t, "shop-1", got["shopId"])
	assert.Equal(t, 3, got["columns"])
	assert.Equal(t, []any{}, got["products"])
}

func TestMergePropsNilLayers(t *testing.T) {
	got := MergeProps(nil, Props{"a": 1}, nil)
	assert.Equal(t, Props{"a": 1}, got)

	got = MergeProps(nil, nil, nil)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestMergePropsDoesNotAliasInputs(t *testing.T) {
	stored := Props{"cta": map[string]any{"label": "Buy"}}

	got := MergeProps(nil, stored, nil)
	got["cta"].(map[string]any)["label"] = "Mutated"

	assert.Equal(t, "Buy", stored["cta"].(map[string]any)["label"])
}

func TestMergePropsObjectValuesReplaceWholesale(t *testing.T) {
	defaults := Props{"cta": map[string]any{"label": "Shop", "url": "/"}}
	stored := Props{"cta": map[string]any{"label": "Buy"}}

	got := MergeProps(defaults, stored, nil)

	cta := got["cta"].(map[string]any)
	assert.Equal(t, "Buy", cta["label"])
	// No deep merge: the default's url does not leak into the stored value.
	assert.NotContains(t, cta, "url")
}
