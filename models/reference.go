package models

import (
	"strings"

	"github.com/sahardevv/OpenAPI.NET/parsenode"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// ReferenceType names a component kind a reference can point at.
type ReferenceType int

const (
	ReferenceUnknown ReferenceType = iota
	ReferenceSchema
	ReferenceResponse
	ReferenceParameter
	ReferenceExample
	ReferenceRequestBody
	ReferenceHeader
	ReferenceSecurityScheme
	ReferenceLink
	ReferenceCallback
	ReferenceTag
)

var referenceTypeNames = [...]string{
	ReferenceUnknown:        "",
	ReferenceSchema:         "schemas",
	ReferenceResponse:       "responses",
	ReferenceParameter:      "parameters",
	ReferenceExample:        "examples",
	ReferenceRequestBody:    "requestBodies",
	ReferenceHeader:         "headers",
	ReferenceSecurityScheme: "securitySchemes",
	ReferenceLink:           "links",
	ReferenceCallback:       "callbacks",
	ReferenceTag:            "tags",
}

// String returns the components section name, e.g. "schemas".
func (t ReferenceType) String() string {
	if t < 0 || int(t) >= len(referenceTypeNames) {
		return ""
	}
	return referenceTypeNames[t]
}

// ParseReferenceType maps a components section name to its type.
func ParseReferenceType(s string) (ReferenceType, bool) {
	for i, n := range referenceTypeNames {
		if n != "" && n == s {
			return ReferenceType(i), true
		}
	}
	return ReferenceUnknown, false
}

// v2Sections maps the component kinds that exist in Swagger 2.0 to their
// top-level section. Request bodies live among the parameters.
var v2Sections = map[ReferenceType]string{
	ReferenceSchema:         "definitions",
	ReferenceParameter:      "parameters",
	ReferenceRequestBody:    "parameters",
	ReferenceResponse:       "responses",
	ReferenceSecurityScheme: "securityDefinitions",
}

// Reference points at a reusable component, possibly in another document.
type Reference struct {
	Type ReferenceType
	ID   string
	// ExternalResource is the document part of an external reference.
	ExternalResource string
	// Fragment holds the raw pointer of an external reference whose target
	// is not a component address. Empty otherwise.
	Fragment string
}

// IsExternal reports whether the reference targets another document.
func (r *Reference) IsExternal() bool { return r != nil && r.ExternalResource != "" }

// Key identifies the target within its document.
func (r *Reference) Key() string { return r.Type.String() + "/" + r.ID }

// ReferenceV3 renders the reference in OpenAPI 3.0 form.
func (r *Reference) ReferenceV3() string {
	if r == nil {
		return ""
	}
	if r.Type == ReferenceTag {
		return r.ID
	}
	return r.render("#/components/" + r.Type.String() + "/")
}

// ReferenceV2 renders the reference in Swagger 2.0 form. It returns "" for
// component kinds that have no Swagger 2.0 section.
func (r *Reference) ReferenceV2() string {
	if r == nil {
		return ""
	}
	if r.Type == ReferenceTag {
		return r.ID
	}
	section, ok := v2Sections[r.Type]
	if !ok {
		return ""
	}
	return r.render("#/" + section + "/")
}

func (r *Reference) render(prefix string) string {
	var b strings.Builder
	b.WriteString(r.ExternalResource)
	switch {
	case r.Fragment != "":
		b.WriteString("#")
		b.WriteString(r.Fragment)
	case r.ID != "":
		b.WriteString(prefix)
		b.WriteString(parsenode.EscapeToken(r.ID))
	}
	return b.String()
}

// Referenceable is implemented by elements that can stand in for a
// component: either a component body or a reference to one. IsUnresolved
// reports a placeholder whose reference could not be resolved.
type Referenceable interface {
	Element
	GetReference() *Reference
	IsUnresolved() bool
	WriteAsV3WithoutReference(w writer.Writer)
	WriteAsV2WithoutReference(w writer.Writer)
}
