package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Info is the API metadata object. Its shape is the same in both dialects.
type Info struct {
	Title          string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	Extensions     *Extensions
}

func (i *Info) GetExtensions() *Extensions { return i.Extensions }

func (i *Info) WriteAsV3(w writer.Writer) { i.write(w, openapi.V3) }
func (i *Info) WriteAsV2(w writer.Writer) { i.write(w, openapi.V2) }

func (i *Info) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "title", i.Title)
	writer.WriteProperty(w, "description", i.Description)
	writer.WriteProperty(w, "termsOfService", i.TermsOfService)
	writer.WriteOptionalObject(w, "contact", i.Contact, func(c *Contact, w writer.Writer) { c.write(w, v) })
	writer.WriteOptionalObject(w, "license", i.License, func(l *License, w writer.Writer) { l.write(w, v) })
	writer.WriteRequiredProperty(w, "version", i.Version)
	writeExtensions(w, i.Extensions, v)
	w.WriteEndObject()
}

// Contact is the contact information of the exposed API.
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions *Extensions
}

func (c *Contact) GetExtensions() *Extensions { return c.Extensions }

func (c *Contact) WriteAsV3(w writer.Writer) { c.write(w, openapi.V3) }
func (c *Contact) WriteAsV2(w writer.Writer) { c.write(w, openapi.V2) }

func (c *Contact) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	writer.WriteProperty(w, "name", c.Name)
	writer.WriteProperty(w, "url", c.URL)
	writer.WriteProperty(w, "email", c.Email)
	writeExtensions(w, c.Extensions, v)
	w.WriteEndObject()
}

// License is the license information of the exposed API.
type License struct {
	Name       string
	URL        string
	Extensions *Extensions
}

func (l *License) GetExtensions() *Extensions { return l.Extensions }

func (l *License) WriteAsV3(w writer.Writer) { l.write(w, openapi.V3) }
func (l *License) WriteAsV2(w writer.Writer) { l.write(w, openapi.V2) }

func (l *License) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "name", l.Name)
	writer.WriteProperty(w, "url", l.URL)
	writeExtensions(w, l.Extensions, v)
	w.WriteEndObject()
}

// ExternalDocs points at additional documentation.
type ExternalDocs struct {
	Description string
	URL         string
	Extensions  *Extensions
}

func (e *ExternalDocs) GetExtensions() *Extensions { return e.Extensions }

func (e *ExternalDocs) WriteAsV3(w writer.Writer) { e.write(w, openapi.V3) }
func (e *ExternalDocs) WriteAsV2(w writer.Writer) { e.write(w, openapi.V2) }

func (e *ExternalDocs) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	writer.WriteProperty(w, "description", e.Description)
	writer.WriteRequiredProperty(w, "url", e.URL)
	writeExtensions(w, e.Extensions, v)
	w.WriteEndObject()
}

// Tag adds metadata to a tag used by operations. Operations refer to tags by
// name; such tags carry a Reference to the document-level tag.
type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocs
	Extensions   *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (t *Tag) GetExtensions() *Extensions { return t.Extensions }
func (t *Tag) GetReference() *Reference   { return t.Reference }
func (t *Tag) IsUnresolved() bool         { return t.UnresolvedReference }

// WriteAsV3 writes the tag name when t is a reference, the full tag
// otherwise.
func (t *Tag) WriteAsV3(w writer.Writer) {
	if t.Reference != nil {
		w.WriteValue(t.Reference.ReferenceV3())
		return
	}
	t.WriteAsV3WithoutReference(w)
}

func (t *Tag) WriteAsV2(w writer.Writer) {
	if t.Reference != nil {
		w.WriteValue(t.Reference.ReferenceV2())
		return
	}
	t.WriteAsV2WithoutReference(w)
}

func (t *Tag) WriteAsV3WithoutReference(w writer.Writer) { t.write(w, openapi.V3) }
func (t *Tag) WriteAsV2WithoutReference(w writer.Writer) { t.write(w, openapi.V2) }

func (t *Tag) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "name", t.Name)
	writer.WriteProperty(w, "description", t.Description)
	writer.WriteOptionalObject(w, "externalDocs", t.ExternalDocs, func(e *ExternalDocs, w writer.Writer) { e.write(w, v) })
	writeExtensions(w, t.Extensions, v)
	w.WriteEndObject()
}

// Discriminator selects a schema variant by property value. Swagger 2.0
// only knows the property name.
type Discriminator struct {
	PropertyName string
	Mapping      *ordered.Map[string]
}

func (d *Discriminator) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "propertyName", d.PropertyName)
	writer.WriteMap(w, "mapping", d.Mapping, func(w writer.Writer, s string) { w.WriteValue(s) })
	w.WriteEndObject()
}

func (d *Discriminator) WriteAsV2(w writer.Writer) {
	w.WriteValue(d.PropertyName)
}
