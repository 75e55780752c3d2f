// Package models is the typed OpenAPI document graph. Every element renders
// itself under both wire dialects: WriteAsV3 for OpenAPI 3.0 and WriteAsV2
// for Swagger 2.0. Constructs with no counterpart in a dialect write nothing
// for it.
package models

import (
	"bytes"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Element is a node of the document graph.
type Element interface {
	WriteAsV3(w writer.Writer)
	WriteAsV2(w writer.Writer)
}

// Serialize writes e in the given dialect and flushes w.
func Serialize(e Element, w writer.Writer, v openapi.SpecVersion) error {
	switch v {
	case openapi.V2:
		e.WriteAsV2(w)
	default:
		e.WriteAsV3(w)
	}
	return w.Flush()
}

// SerializeJSON renders e as JSON text.
func SerializeJSON(e Element, v openapi.SpecVersion, s writer.Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := Serialize(e, writer.NewJSONWriter(&buf, s), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeYAML renders e as YAML text.
func SerializeYAML(e Element, v openapi.SpecVersion) ([]byte, error) {
	var buf bytes.Buffer
	if err := Serialize(e, writer.NewYAMLWriter(&buf), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeReference(w writer.Writer, ref string) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "$ref", ref)
	w.WriteEndObject()
}
