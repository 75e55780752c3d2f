package writer

import (
	"sort"

	"github.com/sahardevv/OpenAPI.NET/ordered"
)

// WriteProperty writes name: value when value is not empty.
func WriteProperty(w Writer, name, value string) {
	if value == "" {
		return
	}
	w.WritePropertyName(name)
	w.WriteValue(value)
}

// WriteRequiredProperty writes name: value even when value is empty.
func WriteRequiredProperty(w Writer, name, value string) {
	w.WritePropertyName(name)
	w.WriteValue(value)
}

// WriteBoolProperty writes name: value when value differs from def.
func WriteBoolProperty(w Writer, name string, value, def bool) {
	if value == def {
		return
	}
	w.WritePropertyName(name)
	w.WriteValue(value)
}

// WriteOptionalBool writes name: *v when v is set.
func WriteOptionalBool(w Writer, name string, v *bool) {
	if v == nil {
		return
	}
	w.WritePropertyName(name)
	w.WriteValue(*v)
}

// WriteOptionalNumber writes name: *v when v is set.
func WriteOptionalNumber[N int64 | float64](w Writer, name string, v *N) {
	if v == nil {
		return
	}
	w.WritePropertyName(name)
	w.WriteValue(*v)
}

// WriteOptionalObject writes name: fn(v) when v is not nil.
func WriteOptionalObject[T any](w Writer, name string, v *T, fn func(*T, Writer)) {
	if v == nil {
		return
	}
	w.WritePropertyName(name)
	fn(v, w)
}

// WriteRequiredObject writes name: fn(v), or an empty object when v is nil.
func WriteRequiredObject[T any](w Writer, name string, v *T, fn func(*T, Writer)) {
	w.WritePropertyName(name)
	if v == nil {
		w.WriteStartObject()
		w.WriteEndObject()
		return
	}
	fn(v, w)
}

// WriteList writes name: [fn(item)...] when items is not empty.
func WriteList[T any](w Writer, name string, items []T, fn func(Writer, T)) {
	if len(items) == 0 {
		return
	}
	w.WritePropertyName(name)
	w.WriteStartArray()
	for _, it := range items {
		fn(w, it)
	}
	w.WriteEndArray()
}

// WriteStringList writes name: [items...] when items is not empty.
func WriteStringList(w Writer, name string, items []string) {
	WriteList(w, name, items, func(w Writer, s string) { w.WriteValue(s) })
}

// WriteMap writes name: {key: fn(value)...} in insertion order when m is
// not empty.
func WriteMap[V any](w Writer, name string, m *ordered.Map[V], fn func(Writer, V)) {
	if m.Len() == 0 {
		return
	}
	w.WritePropertyName(name)
	WriteMapBody(w, m, fn)
}

// WriteRequiredMap is WriteMap that writes an empty object for an empty map.
func WriteRequiredMap[V any](w Writer, name string, m *ordered.Map[V], fn func(Writer, V)) {
	w.WritePropertyName(name)
	WriteMapBody(w, m, fn)
}

// WriteMapBody writes {key: fn(value)...} without a property name.
func WriteMapBody[V any](w Writer, m *ordered.Map[V], fn func(Writer, V)) {
	w.WriteStartObject()
	for k, v := range m.All() {
		w.WritePropertyName(k)
		fn(w, v)
	}
	w.WriteEndObject()
}

// WriteAny writes a raw value tree: *ordered.Map[any], map[string]any
// (sorted keys), []any, []string or a scalar.
func WriteAny(w Writer, v any) {
	switch x := v.(type) {
	case nil:
		w.WriteNull()
	case *ordered.Map[any]:
		if x == nil {
			w.WriteNull()
			return
		}
		WriteMapBody(w, x, WriteAny)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		w.WriteStartObject()
		for _, k := range keys {
			w.WritePropertyName(k)
			WriteAny(w, x[k])
		}
		w.WriteEndObject()
	case []any:
		w.WriteStartArray()
		for _, it := range x {
			WriteAny(w, it)
		}
		w.WriteEndArray()
	case []string:
		w.WriteStartArray()
		for _, it := range x {
			w.WriteValue(it)
		}
		w.WriteEndArray()
	default:
		w.WriteValue(v)
	}
}
