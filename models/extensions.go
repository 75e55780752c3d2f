package models

import (
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// ExtensionPrefix starts every vendor extension field name.
const ExtensionPrefix = "x-"

// IsExtension reports whether name is a vendor extension field.
func IsExtension(name string) bool { return strings.HasPrefix(name, ExtensionPrefix) }

// Extensions holds vendor extension fields in input order. Values are raw
// trees (*ordered.Map[any], []any, scalars) or ExtensionValue.
type Extensions = ordered.Map[any]

// ExtensionValue is a typed extension produced by a registered parser. It
// renders itself in place of the raw tree.
type ExtensionValue interface {
	WriteExtension(w writer.Writer, v openapi.SpecVersion)
}

// Extensible is implemented by every element that carries extensions.
type Extensible interface {
	GetExtensions() *Extensions
}

// ExtensionsOf returns the extensions of an element or a schema, or nil.
func ExtensionsOf(v any) *Extensions {
	switch x := v.(type) {
	case Extensible:
		return x.GetExtensions()
	case *jsonschema.Schema:
		return GetExtensions(x)
	}
	return nil
}

// Extension returns the named extension of v, or nil when absent.
func Extension(v any, name string) any {
	return ExtensionsOf(v).Value(name)
}

func writeExtensions(w writer.Writer, ext *Extensions, v openapi.SpecVersion) {
	for name, val := range ext.All() {
		w.WritePropertyName(name)
		if ev, ok := val.(ExtensionValue); ok {
			ev.WriteExtension(w, v)
			continue
		}
		writer.WriteAny(w, val)
	}
}

func writeExtensionsExcept(w writer.Writer, ext *Extensions, v openapi.SpecVersion, skip string) {
	if !ext.Has(skip) {
		writeExtensions(w, ext, v)
		return
	}
	rest := ext.Clone()
	rest.Delete(skip)
	writeExtensions(w, rest, v)
}
