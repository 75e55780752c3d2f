package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Responses maps status codes (and "default") to responses.
type Responses struct {
	Items      *ordered.Map[*Response]
	Extensions *Extensions
}

func (r *Responses) GetExtensions() *Extensions { return r.Extensions }

func (r *Responses) WriteAsV3(w writer.Writer) { r.write(w, openapi.V3) }
func (r *Responses) WriteAsV2(w writer.Writer) { r.write(w, openapi.V2) }

func (r *Responses) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	for code, resp := range r.Items.All() {
		w.WritePropertyName(code)
		if v == openapi.V2 {
			resp.WriteAsV2(w)
		} else {
			resp.WriteAsV3(w)
		}
	}
	writeExtensions(w, r.Extensions, v)
	w.WriteEndObject()
}

// Response is a single operation response.
type Response struct {
	Description string
	Headers     *ordered.Map[*Header]
	Content     *ordered.Map[*MediaType]
	// Links holds the links section as a raw tree.
	Links      *ordered.Map[any]
	Extensions *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (r *Response) GetExtensions() *Extensions { return r.Extensions }
func (r *Response) GetReference() *Reference   { return r.Reference }
func (r *Response) IsUnresolved() bool         { return r.UnresolvedReference }

func (r *Response) WriteAsV3(w writer.Writer) {
	if r.Reference != nil {
		writeReference(w, r.Reference.ReferenceV3())
		return
	}
	r.WriteAsV3WithoutReference(w)
}

func (r *Response) WriteAsV3WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "description", r.Description)
	writer.WriteMap(w, "headers", r.Headers, func(w writer.Writer, h *Header) { h.WriteAsV3(w) })
	writer.WriteMap(w, "content", r.Content, func(w writer.Writer, m *MediaType) { m.WriteAsV3(w) })
	writer.WriteMap(w, "links", r.Links, writer.WriteAny)
	writeExtensions(w, r.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (r *Response) WriteAsV2(w writer.Writer) {
	if r.Reference != nil {
		writeReference(w, r.Reference.ReferenceV2())
		return
	}
	r.WriteAsV2WithoutReference(w)
}

// WriteAsV2WithoutReference folds the content map into a single schema and
// an examples object keyed by content type.
func (r *Response) WriteAsV2WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "description", r.Description)
	if s := r.schema(); s != nil {
		w.WritePropertyName("schema")
		WriteSchemaV2(w, s)
	}
	examples := ordered.New[any](0)
	for ct, m := range r.Content.All() {
		if m == nil {
			continue
		}
		if ex := m.exampleValue(); ex != nil {
			examples.Set(ct, ex)
		}
	}
	writer.WriteMap(w, "examples", examples, writer.WriteAny)
	writer.WriteMap(w, "headers", r.Headers, func(w writer.Writer, h *Header) { h.WriteAsV2(w) })
	writeExtensions(w, r.Extensions, openapi.V2)
	w.WriteEndObject()
}

func (r *Response) schema() *jsonschema.Schema {
	for _, m := range r.Content.All() {
		if m != nil && m.Schema != nil {
			return m.Schema
		}
	}
	return nil
}
