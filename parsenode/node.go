// Package parsenode is a read-only view over a decoded JSON or YAML tree.
// Loaders walk MapNode/ListNode/ValueNode values and never mutate them; every
// node records where it came from so problems can be reported precisely.
package parsenode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
)

// Kind enumerates node kinds.
type Kind int

const (
	KindMap Kind = iota
	KindList
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindList:
		return "list"
	case KindValue:
		return "scalar"
	default:
		return "unknown"
	}
}

// ScalarKind is the primitive type inferred for a scalar by the tokenizer.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarBool
	ScalarInt
	ScalarFloat
	ScalarNull
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarBool:
		return "boolean"
	case ScalarInt:
		return "integer"
	case ScalarFloat:
		return "number"
	case ScalarNull:
		return "null"
	default:
		return "unknown"
	}
}

// Node is the common view over maps, lists and scalars.
type Node interface {
	Kind() Kind
	Position() openapi.Position
}

// Property is a single key/value entry of a MapNode.
type Property struct {
	Key         string
	KeyPosition openapi.Position
	Value       Node
}

// MapNode is an ordered mapping.
type MapNode struct {
	pos   openapi.Position
	props []Property
	index map[string]int
}

func (m *MapNode) Kind() Kind                 { return KindMap }
func (m *MapNode) Position() openapi.Position { return m.pos }

// Len reports the number of entries.
func (m *MapNode) Len() int { return len(m.props) }

// Get returns the value stored under key, or nil when absent.
func (m *MapNode) Get(key string) Node {
	if i, ok := m.index[key]; ok {
		return m.props[i].Value
	}
	return nil
}

// Keys returns the keys in document order.
func (m *MapNode) Keys() []string {
	out := make([]string, len(m.props))
	for i, p := range m.props {
		out[i] = p.Key
	}
	return out
}

// Properties returns the entries in document order.
func (m *MapNode) Properties() []Property {
	return append([]Property(nil), m.props...)
}

func (m *MapNode) add(p Property) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[p.Key] = len(m.props)
	m.props = append(m.props, p)
}

// ListNode is an ordered sequence.
type ListNode struct {
	pos   openapi.Position
	items []Node
}

func (l *ListNode) Kind() Kind                 { return KindList }
func (l *ListNode) Position() openapi.Position { return l.pos }

// Len reports the number of items.
func (l *ListNode) Len() int { return len(l.items) }

// Items returns the elements in document order.
func (l *ListNode) Items() []Node { return append([]Node(nil), l.items...) }

// ValueNode is a scalar. Raw keeps the source text so that a string field
// given an unquoted number (version: 1.0) still reads back verbatim.
type ValueNode struct {
	pos  openapi.Position
	raw  string
	kind ScalarKind
}

func (v *ValueNode) Kind() Kind                 { return KindValue }
func (v *ValueNode) Position() openapi.Position { return v.pos }

// Raw returns the scalar text as written in the source.
func (v *ValueNode) Raw() string { return v.raw }

// ScalarKind returns the inferred primitive type.
func (v *ValueNode) ScalarKind() ScalarKind { return v.kind }

// IsNull reports whether the scalar is an explicit null.
func (v *ValueNode) IsNull() bool { return v.kind == ScalarNull }

// String returns the scalar text. Null is a mismatch.
func (v *ValueNode) String() (string, error) {
	if v.kind == ScalarNull {
		return "", v.mismatch("string")
	}
	return v.raw, nil
}

// Bool returns a boolean; quoted "true"/"false" are accepted.
func (v *ValueNode) Bool() (bool, error) {
	switch v.kind {
	case ScalarBool, ScalarString:
		switch strings.ToLower(v.raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, v.mismatch("boolean")
}

// Int returns an integer. Floats with an integral value are accepted.
func (v *ValueNode) Int() (int64, error) {
	switch v.kind {
	case ScalarInt, ScalarString:
		if i, err := strconv.ParseInt(v.raw, 0, 64); err == nil {
			return i, nil
		}
		if v.kind == ScalarString {
			break
		}
		fallthrough
	case ScalarFloat:
		if f, err := strconv.ParseFloat(v.raw, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f), nil
		}
	}
	return 0, v.mismatch("integer")
}

// Float returns a number.
func (v *ValueNode) Float() (float64, error) {
	switch v.kind {
	case ScalarInt, ScalarFloat, ScalarString:
		if f, err := strconv.ParseFloat(v.raw, 64); err == nil {
			return f, nil
		}
		if i, err := strconv.ParseInt(v.raw, 0, 64); err == nil {
			return float64(i), nil
		}
	}
	return 0, v.mismatch("number")
}

// Interface returns the scalar as string, bool, int64, float64 or nil.
func (v *ValueNode) Interface() any {
	switch v.kind {
	case ScalarNull:
		return nil
	case ScalarBool:
		if b, err := v.Bool(); err == nil {
			return b
		}
	case ScalarInt:
		if i, err := strconv.ParseInt(v.raw, 0, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(v.raw, 64); err == nil {
			return f
		}
	case ScalarFloat:
		if f, err := strconv.ParseFloat(v.raw, 64); err == nil {
			return f
		}
	}
	return v.raw
}

func (v *ValueNode) mismatch(expected string) *TypeMismatchError {
	return &TypeMismatchError{Position: v.pos, Expected: expected, Got: v.kind.String(), Raw: v.raw}
}

// TypeMismatchError reports that a node could not be read as the requested type.
type TypeMismatchError struct {
	Position openapi.Position
	Expected string
	Got      string
	Raw      string // scalar text when Got is a scalar kind
}

func (e *TypeMismatchError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("expected %s, got %s %q", e.Expected, e.Got, e.Raw)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

func nodeMismatch(n Node, expected string) *TypeMismatchError {
	if n == nil {
		return &TypeMismatchError{Expected: expected, Got: "nothing"}
	}
	if v, ok := n.(*ValueNode); ok {
		return v.mismatch(expected)
	}
	return &TypeMismatchError{Position: n.Position(), Expected: expected, Got: n.Kind().String()}
}

// AsMap returns n as a MapNode.
func AsMap(n Node) (*MapNode, error) {
	if m, ok := n.(*MapNode); ok {
		return m, nil
	}
	return nil, nodeMismatch(n, "map")
}

// AsList returns n as a ListNode.
func AsList(n Node) (*ListNode, error) {
	if l, ok := n.(*ListNode); ok {
		return l, nil
	}
	return nil, nodeMismatch(n, "list")
}

// AsValue returns n as a ValueNode.
func AsValue(n Node) (*ValueNode, error) {
	if v, ok := n.(*ValueNode); ok {
		return v, nil
	}
	return nil, nodeMismatch(n, "scalar")
}

// AsString reads a scalar node as text.
func AsString(n Node) (string, error) {
	v, err := AsValue(n)
	if err != nil {
		return "", nodeMismatch(n, "string")
	}
	return v.String()
}

// AsBool reads a scalar node as a boolean.
func AsBool(n Node) (bool, error) {
	v, err := AsValue(n)
	if err != nil {
		return false, nodeMismatch(n, "boolean")
	}
	return v.Bool()
}

// AsInt reads a scalar node as an integer.
func AsInt(n Node) (int64, error) {
	v, err := AsValue(n)
	if err != nil {
		return 0, nodeMismatch(n, "integer")
	}
	return v.Int()
}

// AsFloat reads a scalar node as a number.
func AsFloat(n Node) (float64, error) {
	v, err := AsValue(n)
	if err != nil {
		return 0, nodeMismatch(n, "number")
	}
	return v.Float()
}
