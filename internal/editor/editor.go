// Package editor implements the terminal contract editor: a prompt loop
// over a schema's declared properties with per-type input coercion.
package editor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/schema"
)

// Editor prompts for contract field values. Input is read line-by-line
// from in, so tests can script a session.
type Editor struct {
	in     *bufio.Scanner
	out    io.Writer
	colors *shared.Colors
}

// New creates an editor reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Editor {
	return &Editor{
		in:     bufio.NewScanner(in),
		out:    out,
		colors: shared.NewColors(),
	}
}

// Run walks the schema fields in declaration order and prompts for each
// scalar and array value. Empty input keeps the current value. Nested
// object fields are skipped; the web editor covers those.
func (e *Editor) Run(fields []schema.Field, data contract.Document) contract.Document {
	if data == nil {
		data = contract.Document{}
	}

	for _, field := range fields {
		switch field.Type {
		case "string", "number", "integer", "boolean":
			e.promptScalar(field, data)
		case "array":
			e.promptArray(field, data)
		case "object":
			fmt.Fprintf(e.out, "%s\n", e.colors.Dim(fmt.Sprintf("(skipping nested object %q, use the web editor)", field.Name)))
		}
	}
	return data
}

// promptScalar asks for one scalar value and coerces it per the declared type.
func (e *Editor) promptScalar(field schema.Field, data contract.Document) {
	current := currentString(data, field.Name)
	if len(field.Enum) > 0 {
		fmt.Fprintf(e.out, "%s\n", e.colors.Dim("options: "+strings.Join(field.Enum, ", ")))
	}
	fmt.Fprintf(e.out, "%s [%s]: ", field.Label(), current)

	input := e.readLine()
	if input == "" {
		return
	}

	value, err := CoerceScalar(field.Type, input)
	if err != nil {
		fmt.Fprintf(e.out, "%s %v, keeping previous value\n", e.colors.Yellow(shared.MarkWarn), err)
		return
	}
	data[field.Name] = value
}

// promptArray asks for a comma-separated list of values.
func (e *Editor) promptArray(field schema.Field, data contract.Document) {
	if current, ok := data[field.Name]; ok {
		fmt.Fprintf(e.out, "%s\n", e.colors.Dim(fmt.Sprintf("current items: %v", current)))
	}
	fmt.Fprintf(e.out, "%s (comma-separated): ", field.Label())

	input := e.readLine()
	if input == "" {
		return
	}
	data[field.Name] = SplitList(input)
}

func (e *Editor) readLine() string {
	if !e.in.Scan() {
		return ""
	}
	return strings.TrimSpace(e.in.Text())
}

// currentString renders the current value of a field for display in the prompt.
func currentString(data contract.Document, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
