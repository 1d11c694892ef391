package nlmkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntoPermissive(t *testing.T) {
	// Extra and missing fields are tolerated.
	var nb Notebook
	err := decodeInto("notebook_get", map[string]any{
		"id":            "nb1",
		"title":         "Research",
		"unknown_field": "ignored",
	}, &nb)
	require.NoError(t, err)
	assert.Equal(t, "nb1", nb.ID)
	assert.Zero(t, nb.SourceCount)
}

func TestDecodeIntoTypeMismatch(t *testing.T) {
	var nb Notebook
	err := decodeInto("notebook_get", map[string]any{
		"id":           "nb1",
		"source_count": "three",
	}, &nb)
	require.Error(t, err)

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindValidation, terr.Kind)
	assert.Equal(t, "notebook_get", terr.Tool)
}

func TestAliasKeys(t *testing.T) {
	data := map[string]any{"sources_count": 3, "title": "x"}
	out := aliasKeys(data, map[string]string{"sources_count": "source_count"})
	assert.Equal(t, 3, out["source_count"])
	assert.NotContains(t, out, "sources_count")

	// The input map is untouched.
	assert.Contains(t, data, "sources_count")
}

func TestAliasKeysCanonicalWins(t *testing.T) {
	data := map[string]any{"source_count": 5, "sources_count": 3}
	out := aliasKeys(data, map[string]string{"sources_count": "source_count"})
	assert.Equal(t, 5, out["source_count"])
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, nilIfEmpty(""))
	assert.Equal(t, "x", nilIfEmpty("x"))

	assert.Nil(t, nilIfEmptySlice[int](nil))
	assert.Nil(t, nilIfEmptySlice([]int{}))
	assert.Equal(t, []int{1}, nilIfEmptySlice([]int{1}))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank("  \t "))
	assert.False(t, isBlank(" x "))
}
