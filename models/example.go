package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Example is a named example value.
type Example struct {
	Summary       string
	Description   string
	Value         any
	ExternalValue string
	Extensions    *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (e *Example) GetExtensions() *Extensions { return e.Extensions }
func (e *Example) GetReference() *Reference   { return e.Reference }
func (e *Example) IsUnresolved() bool         { return e.UnresolvedReference }

func (e *Example) WriteAsV3(w writer.Writer) {
	if e.Reference != nil {
		writeReference(w, e.Reference.ReferenceV3())
		return
	}
	e.WriteAsV3WithoutReference(w)
}

func (e *Example) WriteAsV3WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "summary", e.Summary)
	writer.WriteProperty(w, "description", e.Description)
	if e.Value != nil {
		w.WritePropertyName("value")
		writer.WriteAny(w, e.Value)
	}
	writer.WriteProperty(w, "externalValue", e.ExternalValue)
	writeExtensions(w, e.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 writes the bare example value; Swagger 2.0 has no example
// objects or example components.
func (e *Example) WriteAsV2(w writer.Writer) { e.WriteAsV2WithoutReference(w) }

func (e *Example) WriteAsV2WithoutReference(w writer.Writer) {
	if e.Value != nil {
		writer.WriteAny(w, e.Value)
	}
}
