package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jejakarbon/cli/internal/models"
)

func TestNormalizeList_FlatArray(t *testing.T) {
	raw := json.RawMessage(`[{"id":"a"},{"id":"b"}]`)
	got, err := normalizeList[models.Badge](raw, "badges")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
}

func TestNormalizeList_Wrapped(t *testing.T) {
	raw := json.RawMessage(`{"badges":[{"id":"a"}],"page":1,"per_page":10}`)
	got, err := normalizeList[models.Badge](raw, "badges")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestNormalizeList_WrappedUnknownKey(t *testing.T) {
	// Key name does not match, but the single array field is found.
	raw := json.RawMessage(`{"items":[{"id":"x"}],"count":1}`)
	got, err := normalizeList[models.Badge](raw, "badges")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}

func TestNormalizeList_NullAndEmpty(t *testing.T) {
	for _, raw := range []string{"null", "", "  "} {
		got, err := normalizeList[models.Badge](json.RawMessage(raw))
		require.NoError(t, err, "input %q", raw)
		assert.Empty(t, got, "input %q", raw)
	}
}

func TestNormalizeList_NoListAnywhere(t *testing.T) {
	raw := json.RawMessage(`{"page":1,"count":0}`)
	_, err := normalizeList[models.Badge](raw, "badges")
	assert.Error(t, err)
}
