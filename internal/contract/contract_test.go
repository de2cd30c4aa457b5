package contract

import (
	"path/filepath"
	"testing"

	"github.com/opendatatools/odcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "contract.yaml", testutil.ValidContract)

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "billing-data", doc["id"])

		info, ok := doc["info"].(map[string]interface{})
		require.True(t, ok, "nested mappings decode as string-keyed maps")
		assert.Equal(t, "v1.0.0", info["version"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.yaml")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "broken.yaml", "key: [unclosed\n  nested: wrong")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing YAML")
	})

	t.Run("empty file yields empty document", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "empty.yaml", "")
		doc, err := Load(path)
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Empty(t, doc)
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := Document{
		"dataContractSpecification": "3.0.0",
		"id":                        "roundtrip",
		"info": map[string]interface{}{
			"title":   "Round Trip",
			"version": "v1.0.0",
		},
		"tags": []string{"one", "two"},
		"terms": map[string]interface{}{
			"noticePeriodDays": 14,
		},
	}

	path := filepath.Join(t.TempDir(), "roundtrip.yaml")
	require.NoError(t, Save(path, original))

	reloaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "roundtrip", reloaded["id"])
	assert.Equal(t, []interface{}{"one", "two"}, reloaded["tags"])
	info := reloaded["info"].(map[string]interface{})
	assert.Equal(t, "Round Trip", info["title"])
	terms := reloaded["terms"].(map[string]interface{})
	assert.Equal(t, 14, terms["noticePeriodDays"])
}

func TestJSONValue(t *testing.T) {
	t.Run("normalizes YAML types for the validator", func(t *testing.T) {
		doc := Document{
			"count":   3,
			"ratio":   0.5,
			"name":    "x",
			"flags":   []interface{}{true, false},
			"nested":  map[string]interface{}{"k": 1},
			"novalue": nil,
		}

		v, err := JSONValue(doc)
		require.NoError(t, err)

		m, ok := v.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(3), m["count"], "integers become float64")
		assert.Equal(t, 0.5, m["ratio"])
		nested := m["nested"].(map[string]interface{})
		assert.Equal(t, float64(1), nested["k"])
	})

	t.Run("rejects non-JSON-compatible values", func(t *testing.T) {
		_, err := JSONValue(map[string]interface{}{"fn": func() {}})
		assert.Error(t, err)
	})
}

func TestMarshalJSON(t *testing.T) {
	out, err := MarshalJSON(Document{"id": "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "x"}`, string(out))
}
