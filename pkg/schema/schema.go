// Package schema infers a structural outline of a JSON document.
//
// Objects map each key to the outline of its value, arrays are described by
// their first item, and scalars by a short type name. The outline renders as
// a nested Markdown list or as a JSON Schema document.
package schema

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/SingularityNET-Archive/meetgraph/pkg/jsontree"
)

// Scalar type names.
const (
	TypeString    = "str"
	TypeInt       = "int"
	TypeFloat     = "float"
	TypeBool      = "bool"
	TypeNull      = "null"
	TypeEmptyList = "empty_list"
)

// Kind distinguishes the three node shapes.
type Kind int

const (
	Scalar Kind = iota
	Object
	List
)

// Node is one level of an inferred schema.
type Node struct {
	Kind Kind

	// Type names the scalar type. Set only for Scalar nodes.
	Type string

	// Fields lists object members in document order.
	Fields []Field

	// Elem describes list items. An empty list has a TypeEmptyList scalar.
	Elem *Node
}

// Field is a named object member.
type Field struct {
	Name   string
	Schema Node
}

// Infer returns the schema of v.
func Infer(v jsontree.Value) Node {
	switch v.Kind() {
	case jsontree.Object:
		n := Node{Kind: Object, Fields: make([]Field, 0, v.Len())}
		for _, m := range v.Members() {
			n.Fields = append(n.Fields, Field{Name: m.Key, Schema: Infer(m.Value)})
		}
		return n
	case jsontree.Array:
		items := v.Items()
		if len(items) == 0 {
			return Node{Kind: List, Elem: &Node{Kind: Scalar, Type: TypeEmptyList}}
		}
		elem := Infer(items[0])
		return Node{Kind: List, Elem: &elem}
	case jsontree.String:
		return Node{Kind: Scalar, Type: TypeString}
	case jsontree.Number:
		if v.IsInteger() {
			return Node{Kind: Scalar, Type: TypeInt}
		}
		return Node{Kind: Scalar, Type: TypeFloat}
	case jsontree.Bool:
		return Node{Kind: Scalar, Type: TypeBool}
	case jsontree.Null:
		return Node{Kind: Scalar, Type: TypeNull}
	default:
		panic(fmt.Sprintf("schema: unexpected kind %v", v.Kind()))
	}
}

// Markdown renders n as nested list lines, two spaces per level.
func Markdown(n Node) []string {
	var lines []string
	writeMarkdown(&lines, n, 0)
	return lines
}

func writeMarkdown(lines *[]string, n Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch n.Kind {
	case Object:
		for _, f := range n.Fields {
			if f.Schema.Kind == Scalar {
				*lines = append(*lines, fmt.Sprintf("%s- **%s**: `%s`", prefix, f.Name, f.Schema.Type))
				continue
			}
			*lines = append(*lines, fmt.Sprintf("%s- **%s**:", prefix, f.Name))
			writeMarkdown(lines, f.Schema, indent+1)
		}
	case List:
		*lines = append(*lines, prefix+"- List of:")
		writeMarkdown(lines, *n.Elem, indent+1)
	case Scalar:
		*lines = append(*lines, fmt.Sprintf("%s- `%s`", prefix, n.Type))
	}
}

var jsonTypes = map[string]string{
	TypeString: "string",
	TypeInt:    "integer",
	TypeFloat:  "number",
	TypeBool:   "boolean",
	TypeNull:   "null",
}

// JSONSchema converts n to a JSON Schema (draft 2020-12) document.
func JSONSchema(n Node, title string) *jsonschema.Schema {
	s := toJSONSchema(n)
	s.Version = jsonschema.Version
	s.Title = title
	return s
}

func toJSONSchema(n Node) *jsonschema.Schema {
	switch n.Kind {
	case Object:
		props := jsonschema.NewProperties()
		for _, f := range n.Fields {
			props.Set(f.Name, toJSONSchema(f.Schema))
		}
		return &jsonschema.Schema{Type: "object", Properties: props}
	case List:
		s := &jsonschema.Schema{Type: "array"}
		if n.Elem != nil && n.Elem.Type != TypeEmptyList {
			s.Items = toJSONSchema(*n.Elem)
		}
		return s
	default:
		return &jsonschema.Schema{Type: jsonTypes[n.Type]}
	}
}
