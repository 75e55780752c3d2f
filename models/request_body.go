package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// BodyNameExtension names the Swagger 2.0 body parameter of a request body.
const BodyNameExtension = "x-bodyName"

const defaultBodyName = "body"

// Form content types. A request body with one of these is written as
// formData parameters in Swagger 2.0.
const (
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeMultipartForm  = "multipart/form-data"
)

// RequestBody is an OpenAPI 3.0 request body. Swagger 2.0 expresses it as a
// body parameter or as formData parameters; the owning operation or the
// document writes that form, so WriteAsV2 writes nothing on its own.
type RequestBody struct {
	Description string
	Content     *ordered.Map[*MediaType]
	Required    bool
	Extensions  *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (r *RequestBody) GetExtensions() *Extensions { return r.Extensions }
func (r *RequestBody) GetReference() *Reference   { return r.Reference }
func (r *RequestBody) IsUnresolved() bool         { return r.UnresolvedReference }

func (r *RequestBody) WriteAsV3(w writer.Writer) {
	if r.Reference != nil {
		writeReference(w, r.Reference.ReferenceV3())
		return
	}
	r.WriteAsV3WithoutReference(w)
}

func (r *RequestBody) WriteAsV3WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "description", r.Description)
	writer.WriteRequiredMap(w, "content", r.Content, func(w writer.Writer, m *MediaType) { m.WriteAsV3(w) })
	writer.WriteBoolProperty(w, "required", r.Required, false)
	writeExtensions(w, r.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (r *RequestBody) WriteAsV2(writer.Writer)                 {}
func (r *RequestBody) WriteAsV2WithoutReference(writer.Writer) {}

// IsForm reports whether the body carries form content.
func (r *RequestBody) IsForm() bool {
	return r.Content.Has(ContentTypeFormURLEncoded) || r.Content.Has(ContentTypeMultipartForm)
}

// BodyName returns the x-bodyName extension, or "body".
func (r *RequestBody) BodyName() string {
	if s, ok := r.Extensions.Value(BodyNameExtension).(string); ok && s != "" {
		return s
	}
	return defaultBodyName
}

func (r *RequestBody) firstSchema() *jsonschema.Schema {
	for _, m := range r.Content.All() {
		if m != nil && m.Schema != nil {
			return m.Schema
		}
	}
	return nil
}

func (r *RequestBody) formSchema() *jsonschema.Schema {
	for _, ct := range []string{ContentTypeFormURLEncoded, ContentTypeMultipartForm} {
		if m := r.Content.Value(ct); m != nil && m.Schema != nil {
			return m.Schema
		}
	}
	return nil
}

// writeBodyParameterV2 writes r as a single Swagger 2.0 body parameter.
func (r *RequestBody) writeBodyParameterV2(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "name", r.BodyName())
	writer.WriteRequiredProperty(w, "in", "body")
	writer.WriteProperty(w, "description", r.Description)
	writer.WriteBoolProperty(w, "required", r.Required, false)
	w.WritePropertyName("schema")
	if s := r.firstSchema(); s != nil {
		WriteSchemaV2(w, s)
	} else {
		w.WriteStartObject()
		w.WriteEndObject()
	}
	writeExtensionsExcept(w, r.Extensions, openapi.V2, BodyNameExtension)
	w.WriteEndObject()
}

// writeFormParametersV2 writes one formData parameter per property of the
// form schema. Binary properties become file parameters.
func (r *RequestBody) writeFormParametersV2(w writer.Writer) {
	s := r.formSchema()
	props, ok := jsonschema.Get[*jsonschema.PropertiesKeyword](s, jsonschema.NameProperties)
	if !ok {
		return
	}
	required := map[string]bool{}
	for _, n := range s.GetRequired() {
		required[n] = true
	}
	for name, ps := range props.Properties.All() {
		w.WriteStartObject()
		writer.WriteRequiredProperty(w, "name", name)
		writer.WriteRequiredProperty(w, "in", "formData")
		writer.WriteProperty(w, "description", ps.GetDescription())
		writer.WriteBoolProperty(w, "required", required[name], false)
		if f := ps.GetFormat(); f == "binary" || f == "base64" {
			writer.WriteRequiredProperty(w, "type", "file")
		} else {
			writeFlatSchemaV2(w, ps, "")
		}
		w.WriteEndObject()
	}
}

// writeAsOperationParametersV2 writes r among the parameters of an
// operation: a reference to the shared body parameter, inline formData
// parameters, or an inline body parameter.
func (r *RequestBody) writeAsOperationParametersV2(w writer.Writer) {
	switch {
	case r.IsForm():
		r.writeFormParametersV2(w)
	case r.Reference != nil:
		writeReference(w, r.Reference.ReferenceV2())
	default:
		r.writeBodyParameterV2(w)
	}
}
