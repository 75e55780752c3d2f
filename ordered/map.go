// Package ordered provides an insertion-ordered, string-keyed map. OpenAPI
// documents are order-sensitive for humans (paths, properties, responses), so
// every keyed collection in the model keeps the order it was read in.
package ordered

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map keeps keys in insertion order. The zero value is ready to use.
// A nil *Map behaves as an empty, read-only map.
type Map[V any] struct {
	om *orderedmap.OrderedMap[string, V]
}

// New returns an empty map with room for n entries.
func New[V any](n int) *Map[V] {
	return &Map[V]{om: orderedmap.New[string, V](orderedmap.WithCapacity[string, V](n))}
}

// Set stores v under key. Re-setting an existing key keeps its position.
func (m *Map[V]) Set(key string, v V) {
	if m.om == nil {
		m.om = orderedmap.New[string, V]()
	}
	m.om.Set(key, v)
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil || m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(key)
}

// Value returns the value stored under key, or the zero value.
func (m *Map[V]) Value(key string) V {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *Map[V]) Delete(key string) {
	if m == nil || m.om == nil {
		return
	}
	m.om.Delete(key)
}

// Len reports the number of entries.
func (m *Map[V]) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates entries in insertion order.
func (m *Map[V]) All() func(yield func(string, V) bool) {
	return func(yield func(string, V) bool) {
		if m == nil || m.om == nil {
			return
		}
		for p := m.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return nil
	}
	out := New[V](m.Len())
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}
