package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Operation is a single API operation on a path.
type Operation struct {
	Tags         []*Tag
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []*Parameter
	RequestBody  *RequestBody
	Responses    *Responses
	// Callbacks holds the callbacks section as a raw tree.
	Callbacks  *ordered.Map[any]
	Deprecated bool
	// Security is nil when absent. An empty non-nil slice removes the
	// document-level requirements for this operation.
	Security   []*SecurityRequirement
	Servers    []*Server
	Extensions *Extensions
}

func (o *Operation) GetExtensions() *Extensions { return o.Extensions }

func tagName(t *Tag) string {
	if t.Reference != nil {
		return t.Reference.ID
	}
	return t.Name
}

func (o *Operation) writeTags(w writer.Writer) {
	writer.WriteList(w, "tags", o.Tags, func(w writer.Writer, t *Tag) { w.WriteValue(tagName(t)) })
}

func writeSecurity(w writer.Writer, reqs []*SecurityRequirement, v openapi.SpecVersion) {
	if reqs == nil {
		return
	}
	w.WritePropertyName("security")
	w.WriteStartArray()
	for _, r := range reqs {
		if v == openapi.V2 {
			r.WriteAsV2(w)
		} else {
			r.WriteAsV3(w)
		}
	}
	w.WriteEndArray()
}

func (o *Operation) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	o.writeTags(w)
	writer.WriteProperty(w, "summary", o.Summary)
	writer.WriteProperty(w, "description", o.Description)
	writer.WriteOptionalObject(w, "externalDocs", o.ExternalDocs, (*ExternalDocs).WriteAsV3)
	writer.WriteProperty(w, "operationId", o.OperationID)
	writer.WriteList(w, "parameters", o.Parameters, func(w writer.Writer, p *Parameter) { p.WriteAsV3(w) })
	writer.WriteOptionalObject(w, "requestBody", o.RequestBody, (*RequestBody).WriteAsV3)
	writer.WriteRequiredObject(w, "responses", o.Responses, (*Responses).WriteAsV3)
	writer.WriteMap(w, "callbacks", o.Callbacks, writer.WriteAny)
	writer.WriteBoolProperty(w, "deprecated", o.Deprecated, false)
	writeSecurity(w, o.Security, openapi.V3)
	writer.WriteList(w, "servers", o.Servers, func(w writer.Writer, s *Server) { s.WriteAsV3(w) })
	writeExtensions(w, o.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 derives consumes from the request body and produces from the
// responses, and turns the request body into parameters.
func (o *Operation) WriteAsV2(w writer.Writer) {
	w.WriteStartObject()
	o.writeTags(w)
	writer.WriteProperty(w, "summary", o.Summary)
	writer.WriteProperty(w, "description", o.Description)
	writer.WriteOptionalObject(w, "externalDocs", o.ExternalDocs, (*ExternalDocs).WriteAsV2)
	writer.WriteProperty(w, "operationId", o.OperationID)
	writer.WriteStringList(w, "consumes", o.Consumes())
	writer.WriteStringList(w, "produces", o.Produces())
	writeParametersV2(w, o.Parameters, o.RequestBody)
	writer.WriteRequiredObject(w, "responses", o.Responses, (*Responses).WriteAsV2)
	writer.WriteBoolProperty(w, "deprecated", o.Deprecated, false)
	writeSecurity(w, o.Security, openapi.V2)
	writeExtensions(w, o.Extensions, openapi.V2)
	w.WriteEndObject()
}

// Consumes lists the request body content types.
func (o *Operation) Consumes() []string {
	if o.RequestBody == nil {
		return nil
	}
	return o.RequestBody.Content.Keys()
}

// Produces lists the distinct response content types in response order.
func (o *Operation) Produces() []string {
	if o.Responses == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, r := range o.Responses.Items.All() {
		if r == nil {
			continue
		}
		for _, ct := range r.Content.Keys() {
			if !seen[ct] {
				seen[ct] = true
				out = append(out, ct)
			}
		}
	}
	return out
}
