package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// ParameterLocation is where a parameter travels in a request.
type ParameterLocation string

const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

// Valid reports whether l is one of the OpenAPI 3.0 locations.
func (l ParameterLocation) Valid() bool {
	switch l {
	case InQuery, InHeader, InPath, InCookie:
		return true
	}
	return false
}

// Parameter is a single operation parameter. Cookie parameters have no
// Swagger 2.0 form.
type Parameter struct {
	Name            string
	In              ParameterLocation
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           ParameterStyle
	Explode         *bool
	AllowReserved   bool
	Schema          *jsonschema.Schema
	Example         any
	Examples        *ordered.Map[*Example]
	Content         *ordered.Map[*MediaType]
	Extensions      *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (p *Parameter) GetExtensions() *Extensions { return p.Extensions }
func (p *Parameter) GetReference() *Reference   { return p.Reference }
func (p *Parameter) IsUnresolved() bool         { return p.UnresolvedReference }

// EffectiveStyle returns Style, or the default for the location.
func (p *Parameter) EffectiveStyle() ParameterStyle {
	if p.Style != "" {
		return p.Style
	}
	switch p.In {
	case InQuery, InCookie:
		return StyleForm
	default:
		return StyleSimple
	}
}

// EffectiveExplode returns Explode, or true for form style and false
// otherwise.
func (p *Parameter) EffectiveExplode() bool {
	if p.Explode != nil {
		return *p.Explode
	}
	return p.EffectiveStyle() == StyleForm
}

// CollectionFormat maps style and explode onto the Swagger 2.0
// collectionFormat.
func (p *Parameter) CollectionFormat() string {
	return collectionFormat(p.EffectiveStyle(), p.EffectiveExplode())
}

// writeExplode writes explode only when it differs from the default for
// style: true for form, false otherwise.
func writeExplode(w writer.Writer, explode *bool, style ParameterStyle) {
	if explode != nil {
		writer.WriteBoolProperty(w, "explode", *explode, style == StyleForm)
	}
}

func collectionFormat(style ParameterStyle, explode bool) string {
	switch style {
	case StyleForm:
		if explode {
			return "multi"
		}
		return "csv"
	case StyleSimple:
		return "csv"
	case StyleSpaceDelimited:
		return "ssv"
	case StylePipeDelimited:
		return "pipes"
	}
	return ""
}

// StyleFromCollectionFormat is the inverse of CollectionFormat for a
// parameter in the given location.
func StyleFromCollectionFormat(format string, in ParameterLocation) (ParameterStyle, bool) {
	switch format {
	case "multi":
		return StyleForm, true
	case "ssv":
		return StyleSpaceDelimited, false
	case "pipes":
		return StylePipeDelimited, false
	case "tsv":
		// no OpenAPI 3.0 equivalent; closest delimited form
		return StyleSpaceDelimited, false
	}
	if in == InQuery || in == InCookie {
		return StyleForm, false
	}
	return StyleSimple, false
}

func (p *Parameter) WriteAsV3(w writer.Writer) {
	if p.Reference != nil {
		writeReference(w, p.Reference.ReferenceV3())
		return
	}
	p.WriteAsV3WithoutReference(w)
}

func (p *Parameter) WriteAsV3WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "name", p.Name)
	writer.WriteRequiredProperty(w, "in", string(p.In))
	writer.WriteProperty(w, "description", p.Description)
	writer.WriteBoolProperty(w, "required", p.Required, false)
	writer.WriteBoolProperty(w, "deprecated", p.Deprecated, false)
	writer.WriteBoolProperty(w, "allowEmptyValue", p.AllowEmptyValue, false)
	writer.WriteProperty(w, "style", string(p.Style))
	writeExplode(w, p.Explode, p.EffectiveStyle())
	writer.WriteBoolProperty(w, "allowReserved", p.AllowReserved, false)
	if p.Schema != nil {
		w.WritePropertyName("schema")
		WriteSchemaV3(w, p.Schema)
	}
	if p.Example != nil {
		w.WritePropertyName("example")
		writer.WriteAny(w, p.Example)
	}
	writer.WriteMap(w, "examples", p.Examples, func(w writer.Writer, e *Example) { e.WriteAsV3(w) })
	writer.WriteMap(w, "content", p.Content, func(w writer.Writer, m *MediaType) { m.WriteAsV3(w) })
	writeExtensions(w, p.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (p *Parameter) WriteAsV2(w writer.Writer) {
	if p.In == InCookie {
		return
	}
	if p.Reference != nil {
		writeReference(w, p.Reference.ReferenceV2())
		return
	}
	p.WriteAsV2WithoutReference(w)
}

// WriteAsV2WithoutReference writes the parameter with its schema flattened
// into type, format and items. The example travels as x-example.
func (p *Parameter) WriteAsV2WithoutReference(w writer.Writer) {
	if p.In == InCookie {
		return
	}
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "name", p.Name)
	writer.WriteRequiredProperty(w, "in", string(p.In))
	writer.WriteProperty(w, "description", p.Description)
	writer.WriteBoolProperty(w, "required", p.Required, false)
	writer.WriteBoolProperty(w, "allowEmptyValue", p.AllowEmptyValue, false)
	if s := p.effectiveSchema(); s != nil {
		writeFlatSchemaV2(w, s, p.CollectionFormat())
	}
	if p.Example != nil {
		w.WritePropertyName(ExtensionPrefix + "example")
		writer.WriteAny(w, p.Example)
	}
	writeExtensions(w, p.Extensions, openapi.V2)
	w.WriteEndObject()
}

// effectiveSchema returns the schema, falling back to the schema of the
// first content entry.
func (p *Parameter) effectiveSchema() *jsonschema.Schema {
	if p.Schema != nil {
		return p.Schema
	}
	for _, m := range p.Content.All() {
		if m != nil && m.Schema != nil {
			return m.Schema
		}
	}
	return nil
}

// Header describes a response or encoding header. It is a parameter
// without name and location.
type Header struct {
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           ParameterStyle
	Explode         *bool
	AllowReserved   bool
	Schema          *jsonschema.Schema
	Example         any
	Examples        *ordered.Map[*Example]
	Content         *ordered.Map[*MediaType]
	Extensions      *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (h *Header) GetExtensions() *Extensions { return h.Extensions }
func (h *Header) GetReference() *Reference   { return h.Reference }
func (h *Header) IsUnresolved() bool         { return h.UnresolvedReference }

func (h *Header) WriteAsV3(w writer.Writer) {
	if h.Reference != nil {
		writeReference(w, h.Reference.ReferenceV3())
		return
	}
	h.WriteAsV3WithoutReference(w)
}

func (h *Header) WriteAsV3WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "description", h.Description)
	writer.WriteBoolProperty(w, "required", h.Required, false)
	writer.WriteBoolProperty(w, "deprecated", h.Deprecated, false)
	writer.WriteBoolProperty(w, "allowEmptyValue", h.AllowEmptyValue, false)
	writer.WriteProperty(w, "style", string(h.Style))
	writeExplode(w, h.Explode, StyleSimple)
	writer.WriteBoolProperty(w, "allowReserved", h.AllowReserved, false)
	if h.Schema != nil {
		w.WritePropertyName("schema")
		WriteSchemaV3(w, h.Schema)
	}
	if h.Example != nil {
		w.WritePropertyName("example")
		writer.WriteAny(w, h.Example)
	}
	writer.WriteMap(w, "examples", h.Examples, func(w writer.Writer, e *Example) { e.WriteAsV3(w) })
	writer.WriteMap(w, "content", h.Content, func(w writer.Writer, m *MediaType) { m.WriteAsV3(w) })
	writeExtensions(w, h.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 always writes the header inline; Swagger 2.0 has no header
// components to point at.
func (h *Header) WriteAsV2(w writer.Writer) { h.WriteAsV2WithoutReference(w) }

func (h *Header) WriteAsV2WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "description", h.Description)
	if h.Schema != nil {
		style := h.Style
		if style == "" {
			style = StyleSimple
		}
		explode := h.Explode != nil && *h.Explode
		writeFlatSchemaV2(w, h.Schema, collectionFormat(style, explode))
	}
	if h.Example != nil {
		w.WritePropertyName(ExtensionPrefix + "example")
		writer.WriteAny(w, h.Example)
	}
	writeExtensions(w, h.Extensions, openapi.V2)
	w.WriteEndObject()
}
