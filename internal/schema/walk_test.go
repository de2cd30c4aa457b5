package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkTestSchema = `{
  "type": "object",
  "properties": {
    "zulu": {"type": "string", "description": "Comes first despite the name"},
    "alpha": {"type": "integer"},
    "status": {"type": "string", "enum": ["draft", "active"]},
    "tags": {"type": "array", "items": {"type": "string"}},
    "bare_list": {"type": "array"},
    "info": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "version": {"type": "string"}
      },
      "required": ["title"]
    }
  },
  "required": ["zulu", "info"]
}`

func TestParseFields(t *testing.T) {
	fields, err := ParseFields([]byte(walkTestSchema))
	require.NoError(t, err)
	require.Len(t, fields, 6)

	t.Run("declaration order is preserved", func(t *testing.T) {
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
		}
		assert.Equal(t, []string{"zulu", "alpha", "status", "tags", "bare_list", "info"}, names)
	})

	t.Run("required flags follow the required list", func(t *testing.T) {
		assert.True(t, fields[0].Required)
		assert.False(t, fields[1].Required)
		assert.True(t, fields[5].Required)
	})

	t.Run("enum values are extracted", func(t *testing.T) {
		assert.Equal(t, []string{"draft", "active"}, fields[2].Enum)
	})

	t.Run("array item type defaults to string", func(t *testing.T) {
		assert.Equal(t, "string", fields[3].Items)
		assert.Equal(t, "string", fields[4].Items)
	})

	t.Run("nested object properties are walked", func(t *testing.T) {
		info := fields[5]
		require.Len(t, info.Properties, 2)
		assert.Equal(t, "title", info.Properties[0].Name)
		assert.True(t, info.Properties[0].Required)
		assert.False(t, info.Properties[1].Required)
	})
}

func TestParseFields_Label(t *testing.T) {
	fields, err := ParseFields([]byte(walkTestSchema))
	require.NoError(t, err)

	assert.Equal(t, "Comes first despite the name", fields[0].Label(), "description wins")
	assert.Equal(t, "alpha", fields[1].Label(), "falls back to the property name")
}

func TestParseFields_Errors(t *testing.T) {
	tests := map[string]string{
		"not JSON":              "properties: {}",
		"properties not object": `{"properties": ["a"]}`,
		"property not object":   `{"properties": {"a": "string"}}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFields([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParseFields_NoProperties(t *testing.T) {
	fields, err := ParseFields([]byte(`{"type": "object"}`))
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestParseFields_BundledSchemas(t *testing.T) {
	t.Run("odcs top-level properties", func(t *testing.T) {
		raw, err := Raw(KindODCS, "")
		require.NoError(t, err)
		fields, err := ParseFields(raw)
		require.NoError(t, err)

		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
		}
		assert.Equal(t, []string{"dataContractSpecification", "id", "info", "status", "tags", "terms"}, names)
	})

	t.Run("odps product is a nested object", func(t *testing.T) {
		raw, err := Raw(KindODPS, "")
		require.NoError(t, err)
		fields, err := ParseFields(raw)
		require.NoError(t, err)
		require.Len(t, fields, 3)
		assert.Equal(t, "object", fields[2].Type)
		assert.NotEmpty(t, fields[2].Properties)
	})
}
