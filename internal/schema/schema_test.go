package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Kind
		wantErr bool
	}{
		"odps":       {input: "odps", want: KindODPS},
		"odcs":       {input: "odcs", want: KindODCS},
		"unknown":    {input: "avro", wantErr: true},
		"empty":      {input: "", wantErr: true},
		"upper case": {input: "ODPS", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRaw_Bundled(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			raw, err := Raw(kind, "")
			require.NoError(t, err)
			assert.True(t, json.Valid(raw), "bundled schema must be valid JSON")
		})
	}
}

func TestRaw_OverrideDir(t *testing.T) {
	t.Run("JSON override wins", func(t *testing.T) {
		dir := t.TempDir()
		override := `{"type": "object", "properties": {"x": {"type": "string"}}}`
		path := filepath.Join(dir, Filename(KindODCS))
		require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

		raw, err := Raw(KindODCS, dir)
		require.NoError(t, err)
		assert.JSONEq(t, override, string(raw))
	})

	t.Run("YAML override is converted to JSON", func(t *testing.T) {
		dir := t.TempDir()
		override := "type: object\nproperties:\n  x:\n    type: string\n"
		path := filepath.Join(dir, Filename(KindODPS))
		require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

		raw, err := Raw(KindODPS, dir)
		require.NoError(t, err)
		assert.True(t, json.Valid(raw))
		assert.Contains(t, string(raw), `"type":"object"`)
	})

	t.Run("missing override falls back to bundled", func(t *testing.T) {
		raw, err := Raw(KindODCS, t.TempDir())
		require.NoError(t, err)
		bundledRaw, err := Raw(KindODCS, "")
		require.NoError(t, err)
		assert.Equal(t, bundledRaw, raw)
	})

	t.Run("malformed override errors", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, Filename(KindODCS))
		require.NoError(t, os.WriteFile(path, []byte("{broken: [yaml"), 0o644))

		_, err := Raw(KindODCS, dir)
		assert.Error(t, err)
	})
}

func TestCompile_BundledSchemas(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			compiled, err := Compile(kind, "")
			require.NoError(t, err)
			assert.NotNil(t, compiled)
		})
	}
}

func TestCompile_MalformedSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename(KindODCS))
	// valid JSON, invalid schema
	require.NoError(t, os.WriteFile(path, []byte(`{"type": 12}`), 0o644))

	_, err := Compile(KindODCS, dir)
	assert.Error(t, err)
}
