package reader

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// UnknownFieldPolicy decides what happens to a field that matches neither
// a fixed name nor a pattern.
type UnknownFieldPolicy int

const (
	// UnknownWarn records an unknown_field warning and skips the field.
	UnknownWarn UnknownFieldPolicy = iota
	// UnknownExtensionsElseWarn is UnknownWarn for types whose extension
	// pattern captures every x- field.
	UnknownExtensionsElseWarn
	// UnknownIgnore skips the field silently.
	UnknownIgnore
)

func (p UnknownFieldPolicy) String() string {
	switch p {
	case UnknownWarn:
		return "warn"
	case UnknownExtensionsElseWarn:
		return "extensions-else-warn"
	case UnknownIgnore:
		return "ignore"
	}
	return "unknown"
}

// FieldAction populates o from the value of a fixed field.
type FieldAction[T any] func(o T, n parsenode.Node, c *ParsingContext)

// PatternAction populates o from a field matched by a predicate.
type PatternAction[T any] func(o T, key string, n parsenode.Node, c *ParsingContext)

type patternField[T any] struct {
	match  func(key string) bool
	action PatternAction[T]
}

// FieldMap is the dispatch table of a model type: exact names first, then
// predicates in registration order. Tables are built during package
// initialization and never modified afterwards.
type FieldMap[T any] struct {
	name     string
	fixed    map[string]FieldAction[T]
	patterns []patternField[T]
	policy   UnknownFieldPolicy
}

// NewFieldMap returns an empty table for the named object type.
func NewFieldMap[T any](name string, policy UnknownFieldPolicy) *FieldMap[T] {
	return &FieldMap[T]{name: name, fixed: make(map[string]FieldAction[T]), policy: policy}
}

// Field registers an exact field name.
func (m *FieldMap[T]) Field(name string, a FieldAction[T]) *FieldMap[T] {
	m.fixed[name] = a
	return m
}

// Pattern registers a predicate. Earlier predicates win.
func (m *FieldMap[T]) Pattern(match func(string) bool, a PatternAction[T]) *FieldMap[T] {
	m.patterns = append(m.patterns, patternField[T]{match: match, action: a})
	return m
}

// Extensions registers the x- pattern storing into the bag returned by
// bag. It must be the last pattern.
func (m *FieldMap[T]) Extensions(bag func(o T) **models.Extensions) *FieldMap[T] {
	m.policy = UnknownExtensionsElseWarn
	return m.Pattern(models.IsExtension, func(o T, key string, n parsenode.Node, c *ParsingContext) {
		p := bag(o)
		if *p == nil {
			*p = &models.Extensions{}
		}
		(*p).Set(key, c.loadExtension(key, n))
	})
}

// Policy returns the unknown field policy of the table.
func (m *FieldMap[T]) Policy() UnknownFieldPolicy { return m.policy }

// Has reports whether a fixed field is registered under name.
func (m *FieldMap[T]) Has(name string) bool {
	_, ok := m.fixed[name]
	return ok
}

func (m *FieldMap[T]) dispatch(o T, p parsenode.Property, c *ParsingContext) {
	if a, ok := m.fixed[p.Key]; ok {
		a(o, p.Value, c)
		return
	}
	for _, pf := range m.patterns {
		if pf.match(p.Key) {
			pf.action(o, p.Key, p.Value, c)
			return
		}
	}
	if m.policy == UnknownIgnore {
		return
	}
	pos := p.KeyPosition
	if pos.Pointer == "" && p.Value != nil {
		pos = p.Value.Position()
	}
	c.warnf(pos, openapi.CodeUnknownField, "%s: unknown field %q", m.name, p.Key)
}

// parseMap dispatches every property of n in document order.
func parseMap[T any](n *parsenode.MapNode, o T, fields *FieldMap[T], c *ParsingContext) {
	for _, p := range n.Properties() {
		fields.dispatch(o, p, c)
	}
}

// loadObject reads n into o through fields. A node that is not a map yields
// a structural error and o unchanged; so does exceeding the depth limit.
func loadObject[T any](n parsenode.Node, c *ParsingContext, o T, fields *FieldMap[T]) T {
	m, ok := c.asMap(n, fields.name)
	if !ok {
		return o
	}
	if !c.enter(n) {
		return o
	}
	defer c.leave()
	parseMap(m, o, fields, c)
	return o
}
