// Package schema bundles the ODPS and ODCS JSON Schemas, compiles them for
// validation, and exposes an order-preserving walk over schema properties
// for the interactive editors.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Kind identifies which bundled schema to use.
type Kind string

const (
	// KindODPS is the Open Data Product Specification schema.
	KindODPS Kind = "odps"
	// KindODCS is the Open Data Contract Standard schema.
	KindODCS Kind = "odcs"
)

//go:embed schemas/odps-schema-v4.0.json
var odpsSchemaJSON []byte

//go:embed schemas/odcs-schema-v3.0.json
var odcsSchemaJSON []byte

// bundled maps each kind to its embedded schema document and the filename
// looked up when a schema_dir override is configured.
var bundled = map[Kind]struct {
	data     []byte
	filename string
	version  string
}{
	KindODPS: {odpsSchemaJSON, "odps-schema-v4.0.json", "v4.0"},
	KindODCS: {odcsSchemaJSON, "odcs-schema-v3.0.json", "v3.0"},
}

// Kinds returns all bundled schema kinds in display order.
func Kinds() []Kind {
	return []Kind{KindODPS, KindODCS}
}

// ParseKind converts a user-supplied name into a Kind.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindODPS, KindODCS:
		return Kind(name), nil
	}
	return "", fmt.Errorf("unknown schema %q (expected odps or odcs)", name)
}

// Version returns the bundled standard version for the kind.
func Version(kind Kind) string {
	return bundled[kind].version
}

// Filename returns the override filename looked up in schema_dir.
func Filename(kind Kind) string {
	return bundled[kind].filename
}

// Raw returns the schema document as JSON bytes. When overrideDir is
// non-empty and contains the kind's schema file, that file is loaded
// instead of the bundled copy; the override may be JSON or YAML.
func Raw(kind Kind, overrideDir string) ([]byte, error) {
	b, ok := bundled[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}

	if overrideDir == "" {
		return b.data, nil
	}

	path := filepath.Join(overrideDir, b.filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b.data, nil
		}
		return nil, fmt.Errorf("reading schema override %s: %w", path, err)
	}
	return normalizeToJSON(path, data)
}

// Compile loads and compiles the schema for validation.
func Compile(kind Kind, overrideDir string) (*jsonschema.Schema, error) {
	raw, err := Raw(kind, overrideDir)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("odcheck:///%s", bundled[kind].filename)
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("loading %s schema: %w", kind, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", kind, err)
	}
	return compiled, nil
}

// normalizeToJSON accepts a schema document as JSON or YAML and returns it
// as JSON bytes. YAML documents are round-tripped through encoding/json so
// the schema compiler sees only JSON-native types.
func normalizeToJSON(path string, data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting schema %s to JSON: %w", path, err)
	}
	return out, nil
}
