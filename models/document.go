package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Version strings written at the document root.
const (
	VersionV3 = "3.0.1"
	VersionV2 = "2.0"
)

// Document is the root of the document graph.
type Document struct {
	Info         *Info
	Servers      []*Server
	Paths        *Paths
	Components   *Components
	Security     []*SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Extensions   *Extensions
}

func (d *Document) GetExtensions() *Extensions { return d.Extensions }

func (d *Document) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "openapi", VersionV3)
	writer.WriteRequiredObject(w, "info", d.Info, (*Info).WriteAsV3)
	writer.WriteList(w, "servers", d.Servers, func(w writer.Writer, s *Server) { s.WriteAsV3(w) })
	writer.WriteRequiredObject(w, "paths", d.Paths, (*Paths).WriteAsV3)
	writer.WriteOptionalObject(w, "components", d.Components, (*Components).WriteAsV3)
	if len(d.Security) > 0 {
		writeSecurity(w, d.Security, openapi.V3)
	}
	writer.WriteList(w, "tags", d.Tags, func(w writer.Writer, t *Tag) { t.WriteAsV3WithoutReference(w) })
	writer.WriteOptionalObject(w, "externalDocs", d.ExternalDocs, (*ExternalDocs).WriteAsV3)
	writeExtensions(w, d.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 writes a Swagger 2.0 document: servers become host, basePath
// and schemes, and components spread over the top-level sections.
func (d *Document) WriteAsV2(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "swagger", VersionV2)
	writer.WriteRequiredObject(w, "info", d.Info, (*Info).WriteAsV2)
	hi := hostInfoV2(d.Servers)
	writer.WriteProperty(w, "host", hi.Host)
	writer.WriteProperty(w, "basePath", hi.BasePath)
	writer.WriteStringList(w, "schemes", hi.Schemes)
	writer.WriteRequiredObject(w, "paths", d.Paths, (*Paths).WriteAsV2)
	d.Components.writeSectionsV2(w)
	if len(d.Security) > 0 {
		writeSecurity(w, d.Security, openapi.V2)
	}
	writer.WriteList(w, "tags", d.Tags, func(w writer.Writer, t *Tag) { t.WriteAsV2WithoutReference(w) })
	writer.WriteOptionalObject(w, "externalDocs", d.ExternalDocs, (*ExternalDocs).WriteAsV2)
	writeExtensions(w, d.Extensions, openapi.V2)
	w.WriteEndObject()
}

// Component returns the component registered under kind and id, or nil.
// Schemas are returned as *jsonschema.Schema.
func (d *Document) Component(kind ReferenceType, id string) any {
	c := d.Components
	if c == nil {
		return nil
	}
	var (
		v  any
		ok bool
	)
	switch kind {
	case ReferenceSchema:
		v, ok = c.Schemas.Get(id)
	case ReferenceResponse:
		v, ok = c.Responses.Get(id)
	case ReferenceParameter:
		v, ok = c.Parameters.Get(id)
	case ReferenceExample:
		v, ok = c.Examples.Get(id)
	case ReferenceRequestBody:
		v, ok = c.RequestBodies.Get(id)
	case ReferenceHeader:
		v, ok = c.Headers.Get(id)
	case ReferenceSecurityScheme:
		v, ok = c.SecuritySchemes.Get(id)
	}
	if !ok {
		return nil
	}
	return v
}
