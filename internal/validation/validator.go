// Package validation checks instance documents against the ODPS/ODCS JSON
// Schemas and applies the repository conventions that sit outside any
// schema: contract structure and file naming.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates instance documents against one compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Result is the outcome of validating one document.
type Result struct {
	Valid   bool
	Message string
	// Path is the sequence of keys and array indices leading to the first
	// violation. For a missing required property it includes the missing key.
	Path []string
}

// New compiles the bundled schema for the kind (honoring a schema_dir
// override) and wraps it in a Validator.
func New(kind schema.Kind, overrideDir string) (*Validator, error) {
	compiled, err := schema.Compile(kind, overrideDir)
	if err != nil {
		return nil, err
	}
	return &Validator{schema: compiled}, nil
}

// NewWithSchema wraps an already compiled schema.
func NewWithSchema(s *jsonschema.Schema) *Validator {
	return &Validator{schema: s}
}

// Validate checks one document against the schema.
func (v *Validator) Validate(doc contract.Document) Result {
	normalized, err := contract.JSONValue(doc)
	if err != nil {
		return Result{Valid: false, Message: err.Error()}
	}

	err = v.schema.Validate(normalized)
	if err == nil {
		return Result{Valid: true}
	}

	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		leaf := firstViolation(ve)
		path := pointerSegments(leaf.InstanceLocation)
		if missing := missingProperties(leaf.Message); len(missing) > 0 {
			path = append(path, missing[0])
		}
		return Result{Valid: false, Message: leaf.Message, Path: path}
	}
	return Result{Valid: false, Message: err.Error()}
}

// FormatPath renders a violation path for console output.
func FormatPath(path []string) string {
	return strings.Join(path, " -> ")
}

// firstViolation descends into the first cause chain to find the most
// specific error the validator reported.
func firstViolation(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerSegments splits a JSON pointer ("/info/version") into its
// unescaped segments.
func pointerSegments(pointer string) []string {
	if pointer == "" || pointer == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	segments := make([]string, len(parts))
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		p = strings.ReplaceAll(p, "~0", "~")
		segments[i] = p
	}
	return segments
}

var missingPropsRe = regexp.MustCompile(`'([^']+)'`)

// missingProperties extracts property names from a required-keyword error
// message ("missing properties: 'id', 'info'").
func missingProperties(message string) []string {
	if !strings.HasPrefix(message, "missing propert") {
		return nil
	}
	matches := missingPropsRe.FindAllStringSubmatch(message, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
