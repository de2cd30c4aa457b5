package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// CoerceScalar converts raw user input into the Go value matching a schema
// primitive type. Unknown types pass through as strings.
func CoerceScalar(schemaType, input string) (interface{}, error) {
	switch schemaType {
	case "number":
		f, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", input)
		}
		return f, nil
	case "integer":
		n, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", input)
		}
		return n, nil
	case "boolean":
		switch strings.ToLower(input) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean (true/false, yes/no, 1/0)", input)
	default:
		return input, nil
	}
}

// SplitList turns comma-separated input into a trimmed string slice.
// Empty segments are dropped.
func SplitList(input string) []string {
	parts := strings.Split(input, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
