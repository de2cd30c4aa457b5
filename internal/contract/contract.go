// Package contract loads and saves ODPS/ODCS instance documents. Instances
// are arbitrary YAML mappings; nothing here knows about any schema.
package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is one parsed instance document.
type Document = map[string]interface{}

// Load reads and parses a YAML instance document.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML in %s: %w", path, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Save writes a document back to disk as YAML with two-space indentation.
func Save(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing YAML to %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing YAML to %s: %w", path, err)
	}
	return nil
}

// MarshalJSON renders a document as indented JSON, the format offered for
// download by the web editor.
func MarshalJSON(doc Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document as JSON: %w", err)
	}
	return out, nil
}

// JSONValue round-trips a YAML-decoded value through encoding/json so the
// schema validator sees only JSON-native types (string-keyed maps, float64
// numbers). YAML documents with non-string mapping keys are rejected here.
func JSONValue(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("document is not JSON-compatible: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("normalizing document: %w", err)
	}
	return out, nil
}
