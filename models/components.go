package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Components holds the reusable objects of a document. Links and callbacks
// are kept as raw trees.
type Components struct {
	Schemas         *ordered.Map[*jsonschema.Schema]
	Responses       *ordered.Map[*Response]
	Parameters      *ordered.Map[*Parameter]
	Examples        *ordered.Map[*Example]
	RequestBodies   *ordered.Map[*RequestBody]
	Headers         *ordered.Map[*Header]
	SecuritySchemes *ordered.Map[*SecurityScheme]
	Links           *ordered.Map[any]
	Callbacks       *ordered.Map[any]
	Extensions      *Extensions
}

func (c *Components) GetExtensions() *Extensions { return c.Extensions }

// isSelf reports whether e carries the component's own address, as opposed
// to an alias pointing elsewhere. An unresolved placeholder is never self,
// so a component aliasing itself keeps its $ref.
func isSelf(e Referenceable, kind ReferenceType, id string) bool {
	if e.IsUnresolved() {
		return false
	}
	ref := e.GetReference()
	return ref == nil || (!ref.IsExternal() && ref.Type == kind && ref.ID == id)
}

func writeComponentsV3[E Referenceable](w writer.Writer, name string, kind ReferenceType, m *ordered.Map[E]) {
	if m.Len() == 0 {
		return
	}
	w.WritePropertyName(name)
	w.WriteStartObject()
	for id, e := range m.All() {
		w.WritePropertyName(id)
		if isSelf(e, kind, id) {
			e.WriteAsV3WithoutReference(w)
		} else {
			e.WriteAsV3(w)
		}
	}
	w.WriteEndObject()
}

func writeComponentsV2[E Referenceable](w writer.Writer, kind ReferenceType, m *ordered.Map[E]) {
	for id, e := range m.All() {
		w.WritePropertyName(id)
		if isSelf(e, kind, id) {
			e.WriteAsV2WithoutReference(w)
		} else {
			e.WriteAsV2(w)
		}
	}
}

func schemaElements(m *ordered.Map[*jsonschema.Schema]) *ordered.Map[SchemaElement] {
	out := ordered.New[SchemaElement](m.Len())
	for id, s := range m.All() {
		out.Set(id, SchemaElement{Schema: s})
	}
	return out
}

func (c *Components) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writeComponentsV3(w, "schemas", ReferenceSchema, schemaElements(c.Schemas))
	writeComponentsV3(w, "responses", ReferenceResponse, c.Responses)
	writeComponentsV3(w, "parameters", ReferenceParameter, c.Parameters)
	writeComponentsV3(w, "examples", ReferenceExample, c.Examples)
	writeComponentsV3(w, "requestBodies", ReferenceRequestBody, c.RequestBodies)
	writeComponentsV3(w, "headers", ReferenceHeader, c.Headers)
	writeComponentsV3(w, "securitySchemes", ReferenceSecurityScheme, c.SecuritySchemes)
	writer.WriteMap(w, "links", c.Links, writer.WriteAny)
	writer.WriteMap(w, "callbacks", c.Callbacks, writer.WriteAny)
	writeExtensions(w, c.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 writes nothing; the document spreads components over the
// Swagger 2.0 top-level sections.
func (c *Components) WriteAsV2(writer.Writer) {}

// writeSectionsV2 writes definitions, parameters, responses and
// securityDefinitions into the open document object. Non-form request
// bodies become body parameters; components without a Swagger 2.0 form
// are left out.
func (c *Components) writeSectionsV2(w writer.Writer) {
	if c == nil {
		return
	}
	if c.Schemas.Len() > 0 {
		w.WritePropertyName("definitions")
		w.WriteStartObject()
		writeComponentsV2(w, ReferenceSchema, schemaElements(c.Schemas))
		w.WriteEndObject()
	}
	params := ordered.New[*Parameter](c.Parameters.Len())
	for id, p := range c.Parameters.All() {
		if p != nil && p.In != InCookie {
			params.Set(id, p)
		}
	}
	bodies := 0
	for _, rb := range c.RequestBodies.All() {
		if rb != nil && !rb.IsForm() {
			bodies++
		}
	}
	if params.Len() > 0 || bodies > 0 {
		w.WritePropertyName("parameters")
		w.WriteStartObject()
		writeComponentsV2(w, ReferenceParameter, params)
		for id, rb := range c.RequestBodies.All() {
			if rb == nil || rb.IsForm() {
				continue
			}
			w.WritePropertyName(id)
			if isSelf(rb, ReferenceRequestBody, id) {
				rb.writeBodyParameterV2(w)
			} else {
				writeReference(w, rb.Reference.ReferenceV2())
			}
		}
		w.WriteEndObject()
	}
	if c.Responses.Len() > 0 {
		w.WritePropertyName("responses")
		w.WriteStartObject()
		writeComponentsV2(w, ReferenceResponse, c.Responses)
		w.WriteEndObject()
	}
	schemes := ordered.New[*SecurityScheme](c.SecuritySchemes.Len())
	for id, s := range c.SecuritySchemes.All() {
		if s != nil && s.HasV2Form() {
			schemes.Set(id, s)
		}
	}
	if schemes.Len() > 0 {
		w.WritePropertyName("securityDefinitions")
		w.WriteStartObject()
		writeComponentsV2(w, ReferenceSecurityScheme, schemes)
		w.WriteEndObject()
	}
	writeExtensions(w, c.Extensions, openapi.V2)
}
