package models

import (
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
)

// OpenAPI keywords layered on top of the JSON Schema vocabulary.
const (
	NameDiscriminator    = "discriminator"
	NameNullable         = "nullable"
	NameSummary          = "summary"
	NameExclusiveMinimum = "exclusiveMinimum"
	NameExclusiveMaximum = "exclusiveMaximum"
	NameExtensions       = "extensions"
	NameReference        = "$ref"
	NameExternalDocs     = "externalDocs"
	NameExample          = "example"
	NameXML              = "xml"
	// NameAdditionalPropertiesAllowed shares its wire name with the schema
	// form; a schema holds one or the other.
	NameAdditionalPropertiesAllowed = jsonschema.NameAdditionalProperties
)

type DiscriminatorKeyword struct{ Discriminator *Discriminator }

func (*DiscriminatorKeyword) Keyword() string { return NameDiscriminator }

type NullableKeyword struct{ Value bool }

func (*NullableKeyword) Keyword() string { return NameNullable }

type SummaryKeyword struct{ Value string }

func (*SummaryKeyword) Keyword() string { return NameSummary }

// AdditionalPropertiesAllowedKeyword is the boolean form of
// additionalProperties.
type AdditionalPropertiesAllowedKeyword struct{ Value bool }

func (*AdditionalPropertiesAllowedKeyword) Keyword() string { return NameAdditionalPropertiesAllowed }

// ExclusiveMinimumKeyword is the draft-4 boolean modifier of minimum.
type ExclusiveMinimumKeyword struct{ Value bool }

func (*ExclusiveMinimumKeyword) Keyword() string { return NameExclusiveMinimum }

// ExclusiveMaximumKeyword is the draft-4 boolean modifier of maximum.
type ExclusiveMaximumKeyword struct{ Value bool }

func (*ExclusiveMaximumKeyword) Keyword() string { return NameExclusiveMaximum }

// ExtensionsKeyword carries the vendor extensions of a schema. It is never
// written under its own name.
type ExtensionsKeyword struct{ Extensions *Extensions }

func (*ExtensionsKeyword) Keyword() string { return NameExtensions }

// ReferenceKeyword marks a schema as a reference placeholder, or stamps a
// component schema with its own address. Unresolved is set when resolution
// failed for an internal reference.
type ReferenceKeyword struct {
	Reference  *Reference
	Unresolved bool
}

func (*ReferenceKeyword) Keyword() string { return NameReference }

type ExternalDocsKeyword struct{ ExternalDocs *ExternalDocs }

func (*ExternalDocsKeyword) Keyword() string { return NameExternalDocs }

type ExampleKeyword struct{ Value any }

func (*ExampleKeyword) Keyword() string { return NameExample }

// XMLKeyword keeps the xml object as a raw tree.
type XMLKeyword struct{ Value any }

func (*XMLKeyword) Keyword() string { return NameXML }

// GetDiscriminator returns the discriminator of s, or nil.
func GetDiscriminator(s *jsonschema.Schema) *Discriminator {
	if k, ok := jsonschema.Get[*DiscriminatorKeyword](s, NameDiscriminator); ok {
		return k.Discriminator
	}
	return nil
}

// GetNullable returns the nullable flag of s, or nil.
func GetNullable(s *jsonschema.Schema) *bool {
	if k, ok := jsonschema.Get[*NullableKeyword](s, NameNullable); ok {
		v := k.Value
		return &v
	}
	return nil
}

// GetSummary returns the summary of s, or "".
func GetSummary(s *jsonschema.Schema) string {
	if k, ok := jsonschema.Get[*SummaryKeyword](s, NameSummary); ok {
		return k.Value
	}
	return ""
}

// GetAdditionalPropertiesAllowed returns the boolean additionalProperties
// of s, or nil when absent or given as a schema.
func GetAdditionalPropertiesAllowed(s *jsonschema.Schema) *bool {
	if k, ok := jsonschema.Get[*AdditionalPropertiesAllowedKeyword](s, NameAdditionalPropertiesAllowed); ok {
		v := k.Value
		return &v
	}
	return nil
}

// GetExclusiveMinimum returns the exclusiveMinimum flag of s, or nil.
func GetExclusiveMinimum(s *jsonschema.Schema) *bool {
	if k, ok := jsonschema.Get[*ExclusiveMinimumKeyword](s, NameExclusiveMinimum); ok {
		v := k.Value
		return &v
	}
	return nil
}

// GetExclusiveMaximum returns the exclusiveMaximum flag of s, or nil.
func GetExclusiveMaximum(s *jsonschema.Schema) *bool {
	if k, ok := jsonschema.Get[*ExclusiveMaximumKeyword](s, NameExclusiveMaximum); ok {
		v := k.Value
		return &v
	}
	return nil
}

// GetExtensions returns the extensions of s, or nil.
func GetExtensions(s *jsonschema.Schema) *Extensions {
	if k, ok := jsonschema.Get[*ExtensionsKeyword](s, NameExtensions); ok {
		return k.Extensions
	}
	return nil
}

// GetReference returns the reference of s, or nil.
func GetReference(s *jsonschema.Schema) *Reference {
	if k, ok := jsonschema.Get[*ReferenceKeyword](s, NameReference); ok {
		return k.Reference
	}
	return nil
}

// IsUnresolvedReference reports whether s is a placeholder whose internal
// reference could not be resolved.
func IsUnresolvedReference(s *jsonschema.Schema) bool {
	k, ok := jsonschema.Get[*ReferenceKeyword](s, NameReference)
	return ok && k.Unresolved
}

// GetExternalDocs returns the external documentation of s, or nil.
func GetExternalDocs(s *jsonschema.Schema) *ExternalDocs {
	if k, ok := jsonschema.Get[*ExternalDocsKeyword](s, NameExternalDocs); ok {
		return k.ExternalDocs
	}
	return nil
}

// SetExtension stores a vendor extension on s.
func SetExtension(s *jsonschema.Schema, name string, v any) {
	k, ok := jsonschema.Get[*ExtensionsKeyword](s, NameExtensions)
	if !ok {
		k = &ExtensionsKeyword{Extensions: &Extensions{}}
		s.SetKeyword(k)
	}
	if k.Extensions == nil {
		k.Extensions = &Extensions{}
	}
	k.Extensions.Set(name, v)
}

// NewSchemaReference returns a placeholder schema for ref.
func NewSchemaReference(ref *Reference) *jsonschema.Schema {
	return jsonschema.New(&ReferenceKeyword{Reference: ref})
}
