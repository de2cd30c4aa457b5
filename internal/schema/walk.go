package schema

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Field describes one schema property for form rendering and prompting.
// Fields appear in the order the schema declares them.
type Field struct {
	Name        string
	Type        string
	Description string
	Enum        []string
	Required    bool
	Items       string  // item type when Type == "array"
	Properties  []Field // nested fields when Type == "object"
}

// Label returns the text shown when prompting for the field: the schema
// description when present, otherwise the property name.
func (f Field) Label() string {
	if f.Description != "" {
		return f.Description
	}
	return f.Name
}

// ParseFields extracts the declared properties of a JSON Schema document,
// preserving declaration order. Nested object schemas are walked
// recursively.
func ParseFields(raw []byte) ([]Field, error) {
	root := orderedmap.New()
	if err := json.Unmarshal(raw, root); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}
	return objectFields(*root)
}

// objectFields reads the properties and required list of one object schema.
func objectFields(node orderedmap.OrderedMap) ([]Field, error) {
	required := stringSet(node, "required")

	propsVal, ok := node.Get("properties")
	if !ok {
		return nil, nil
	}
	props, ok := propsVal.(orderedmap.OrderedMap)
	if !ok {
		return nil, fmt.Errorf("schema properties is not an object")
	}

	fields := make([]Field, 0, len(props.Keys()))
	for _, name := range props.Keys() {
		raw, _ := props.Get(name)
		prop, ok := raw.(orderedmap.OrderedMap)
		if !ok {
			return nil, fmt.Errorf("schema property %q is not an object", name)
		}

		field := Field{
			Name:        name,
			Type:        getString(prop, "type"),
			Description: getString(prop, "description"),
			Enum:        getStrings(prop, "enum"),
			Required:    required[name],
		}

		switch field.Type {
		case "array":
			if itemsVal, ok := prop.Get("items"); ok {
				if items, ok := itemsVal.(orderedmap.OrderedMap); ok {
					field.Items = getString(items, "type")
				}
			}
			if field.Items == "" {
				field.Items = "string"
			}
		case "object":
			children, err := objectFields(prop)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			field.Properties = children
		}

		fields = append(fields, field)
	}
	return fields, nil
}

// getString fetches a string-valued key, returning "" when absent or not a string.
func getString(node orderedmap.OrderedMap, key string) string {
	v, ok := node.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// getStrings fetches an array-of-strings key such as enum.
func getStrings(node orderedmap.OrderedMap, key string) []string {
	v, ok := node.Get(key)
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// stringSet fetches an array-of-strings key as a membership set.
func stringSet(node orderedmap.OrderedMap, key string) map[string]bool {
	set := make(map[string]bool)
	for _, s := range getStrings(node, key) {
		set[s] = true
	}
	return set
}
