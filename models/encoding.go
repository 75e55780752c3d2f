package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// ParameterStyle describes how a parameter value is serialized.
type ParameterStyle string

const (
	StyleMatrix         ParameterStyle = "matrix"
	StyleLabel          ParameterStyle = "label"
	StyleForm           ParameterStyle = "form"
	StyleSimple         ParameterStyle = "simple"
	StyleSpaceDelimited ParameterStyle = "spaceDelimited"
	StylePipeDelimited  ParameterStyle = "pipeDelimited"
	StyleDeepObject     ParameterStyle = "deepObject"
)

// Valid reports whether s is one of the defined styles.
func (s ParameterStyle) Valid() bool {
	switch s {
	case StyleMatrix, StyleLabel, StyleForm, StyleSimple, StyleSpaceDelimited, StylePipeDelimited, StyleDeepObject:
		return true
	}
	return false
}

// Encoding describes the serialization of a single multipart or form
// property. It exists only in OpenAPI 3.0.
type Encoding struct {
	ContentType   string
	Headers       *ordered.Map[*Header]
	Style         ParameterStyle
	Explode       *bool
	AllowReserved bool
	Extensions    *Extensions
}

func (e *Encoding) GetExtensions() *Extensions { return e.Extensions }

func (e *Encoding) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "contentType", e.ContentType)
	writer.WriteMap(w, "headers", e.Headers, func(w writer.Writer, h *Header) { h.WriteAsV3(w) })
	writer.WriteProperty(w, "style", string(e.Style))
	style := e.Style
	if style == "" {
		style = StyleForm
	}
	writeExplode(w, e.Explode, style)
	writer.WriteBoolProperty(w, "allowReserved", e.AllowReserved, false)
	writeExtensions(w, e.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (e *Encoding) WriteAsV2(writer.Writer) {}

// MediaType pairs a schema and examples with a content type. Swagger 2.0
// folds it into the owning response or body parameter.
type MediaType struct {
	Schema     *jsonschema.Schema
	Example    any
	Examples   *ordered.Map[*Example]
	Encoding   *ordered.Map[*Encoding]
	Extensions *Extensions
}

func (m *MediaType) GetExtensions() *Extensions { return m.Extensions }

func (m *MediaType) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	if m.Schema != nil {
		w.WritePropertyName("schema")
		WriteSchemaV3(w, m.Schema)
	}
	if m.Example != nil {
		w.WritePropertyName("example")
		writer.WriteAny(w, m.Example)
	}
	writer.WriteMap(w, "examples", m.Examples, func(w writer.Writer, e *Example) { e.WriteAsV3(w) })
	writer.WriteMap(w, "encoding", m.Encoding, func(w writer.Writer, e *Encoding) { e.WriteAsV3(w) })
	writeExtensions(w, m.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (m *MediaType) WriteAsV2(writer.Writer) {}

// exampleValue returns the single example of m: the example field, or the
// value of the first named example.
func (m *MediaType) exampleValue() any {
	if m.Example != nil {
		return m.Example
	}
	for _, e := range m.Examples.All() {
		if e != nil && e.Value != nil {
			return e.Value
		}
	}
	return nil
}
