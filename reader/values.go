package reader

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// loadAny converts a subtree into a raw value tree: *ordered.Map[any],
// []any, or a scalar.
func loadAny(n parsenode.Node) any {
	switch x := n.(type) {
	case *parsenode.MapNode:
		m := ordered.New[any](x.Len())
		for _, p := range x.Properties() {
			m.Set(p.Key, loadAny(p.Value))
		}
		return m
	case *parsenode.ListNode:
		items := x.Items()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = loadAny(it)
		}
		return out
	case *parsenode.ValueNode:
		return x.Interface()
	}
	return nil
}

// loadExtension reads an extension value through its registered parser, or
// as a raw tree.
func (c *ParsingContext) loadExtension(key string, n parsenode.Node) any {
	if parse, ok := c.settings.ExtensionParsers[key]; ok {
		v, err := parse(n, c.version)
		if err == nil && v != nil {
			return v
		}
		if err != nil {
			c.warnf(n.Position(), openapi.CodeInvalidValue, "extension %s: %v", key, err)
		}
	}
	return loadAny(n)
}

func (c *ParsingContext) str(n parsenode.Node) (string, bool) {
	s, err := parsenode.AsString(n)
	if err != nil {
		c.mismatch(n, err)
		return "", false
	}
	return s, true
}

func (c *ParsingContext) boolean(n parsenode.Node) (bool, bool) {
	b, err := parsenode.AsBool(n)
	if err != nil {
		c.mismatch(n, err)
		return false, false
	}
	return b, true
}

func (c *ParsingContext) integer(n parsenode.Node) (int64, bool) {
	i, err := parsenode.AsInt(n)
	if err != nil {
		c.mismatch(n, err)
		return 0, false
	}
	return i, true
}

func (c *ParsingContext) number(n parsenode.Node) (float64, bool) {
	f, err := parsenode.AsFloat(n)
	if err != nil {
		c.mismatch(n, err)
		return 0, false
	}
	return f, true
}

// strings reads a list of scalars. Malformed items are skipped with a
// warning each.
func (c *ParsingContext) strings(n parsenode.Node, what string) []string {
	l, ok := c.asList(n, what)
	if !ok {
		return nil
	}
	out := make([]string, 0, l.Len())
	for _, it := range l.Items() {
		if s, ok := c.str(it); ok {
			out = append(out, s)
		}
	}
	return out
}

// stringMap reads a map of scalars in document order.
func (c *ParsingContext) stringMap(n parsenode.Node, what string) *ordered.Map[string] {
	m, ok := c.asMap(n, what)
	if !ok {
		return nil
	}
	out := ordered.New[string](m.Len())
	for _, p := range m.Properties() {
		if s, ok := c.str(p.Value); ok {
			out.Set(p.Key, s)
		}
	}
	return out
}

func setString[T any](set func(o T, v string)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		if s, ok := c.str(n); ok {
			set(o, s)
		}
	}
}

func setBool[T any](set func(o T, v bool)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		if b, ok := c.boolean(n); ok {
			set(o, b)
		}
	}
}

func setInt[T any](set func(o T, v int64)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		if i, ok := c.integer(n); ok {
			set(o, i)
		}
	}
}

func setNumber[T any](set func(o T, v float64)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		if f, ok := c.number(n); ok {
			set(o, f)
		}
	}
}

func setAny[T any](set func(o T, v any)) FieldAction[T] {
	return func(o T, n parsenode.Node, _ *ParsingContext) {
		set(o, loadAny(n))
	}
}

func setStrings[T any](what string, set func(o T, v []string)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		if l := c.strings(n, what); l != nil {
			set(o, l)
		}
	}
}

// ignore is the action of fields consumed elsewhere.
func ignore[T any](T, parsenode.Node, *ParsingContext) {}

// loadMap reads a map node whose values are loaded by load, in document
// order.
func loadMap[V any](n parsenode.Node, c *ParsingContext, what string, load func(parsenode.Node, *ParsingContext) V) *ordered.Map[V] {
	m, ok := c.asMap(n, what)
	if !ok {
		return nil
	}
	out := ordered.New[V](m.Len())
	for _, p := range m.Properties() {
		out.Set(p.Key, load(p.Value, c))
	}
	return out
}

// loadList reads a list node whose items are loaded by load.
func loadList[V any](n parsenode.Node, c *ParsingContext, what string, load func(parsenode.Node, *ParsingContext) V) []V {
	l, ok := c.asList(n, what)
	if !ok {
		return nil
	}
	items := l.Items()
	out := make([]V, 0, len(items))
	for _, it := range items {
		out = append(out, load(it, c))
	}
	return out
}
