package web

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/editor"
	"github.com/opendatatools/odcheck/internal/schema"
)

// fieldView is one rendered form widget. Nested object schemas become a
// fieldset of nested views.
type fieldView struct {
	InputName string // dotted path used as the form input name
	Label     string
	Type      string
	Enum      []string
	Value     string
	Required  bool
	Nested    []fieldView
}

// buildViews renders schema fields into form widgets, filling current
// values from the document.
func buildViews(fields []schema.Field, data contract.Document, prefix string) []fieldView {
	views := make([]fieldView, 0, len(fields))
	for _, field := range fields {
		view := fieldView{
			InputName: prefix + field.Name,
			Label:     field.Label(),
			Type:      field.Type,
			Enum:      field.Enum,
			Required:  field.Required,
		}

		switch field.Type {
		case "object":
			nested, _ := data[field.Name].(map[string]interface{})
			view.Nested = buildViews(field.Properties, nested, view.InputName+".")
		case "array":
			if items, ok := data[field.Name].([]interface{}); ok {
				parts := make([]string, 0, len(items))
				for _, item := range items {
					parts = append(parts, fmt.Sprintf("%v", item))
				}
				view.Value = strings.Join(parts, ", ")
			} else if items, ok := data[field.Name].([]string); ok {
				view.Value = strings.Join(items, ", ")
			}
		default:
			if v, ok := data[field.Name]; ok && v != nil {
				view.Value = fmt.Sprintf("%v", v)
			}
		}
		views = append(views, view)
	}
	return views
}

// decodeForm rebuilds a document from submitted form values, applying the
// same per-type coercion as the terminal editor. Empty inputs are omitted.
// Coercion failures are reported as warnings and the value is dropped.
func decodeForm(fields []schema.Field, values url.Values, prefix string) (contract.Document, []string) {
	doc := contract.Document{}
	var warnings []string

	for _, field := range fields {
		name := prefix + field.Name
		switch field.Type {
		case "object":
			nested, nestedWarnings := decodeForm(field.Properties, values, name+".")
			warnings = append(warnings, nestedWarnings...)
			if len(nested) > 0 {
				doc[field.Name] = nested
			}
		case "array":
			raw := strings.TrimSpace(values.Get(name))
			if raw == "" {
				continue
			}
			items := editor.SplitList(raw)
			generic := make([]interface{}, len(items))
			for i, item := range items {
				generic[i] = item
			}
			doc[field.Name] = generic
		default:
			raw := strings.TrimSpace(values.Get(name))
			if raw == "" {
				continue
			}
			value, err := editor.CoerceScalar(field.Type, raw)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v", name, err))
				continue
			}
			doc[field.Name] = value
		}
	}
	return doc, warnings
}
