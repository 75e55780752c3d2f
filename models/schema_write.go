package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// KeywordWriter is implemented by caller-defined keywords that want to be
// written. Keywords that implement neither this nor a known type are kept
// in the model but not written.
type KeywordWriter interface {
	WriteKeyword(w writer.Writer, v openapi.SpecVersion)
}

// SchemaElement adapts a schema to Element.
type SchemaElement struct {
	Schema *jsonschema.Schema
}

func (e SchemaElement) WriteAsV3(w writer.Writer) { WriteSchemaV3(w, e.Schema) }
func (e SchemaElement) WriteAsV2(w writer.Writer) { WriteSchemaV2(w, e.Schema) }
func (e SchemaElement) WriteAsV3WithoutReference(w writer.Writer) {
	writeSchema(w, e.Schema, openapi.V3)
}
func (e SchemaElement) WriteAsV2WithoutReference(w writer.Writer) {
	writeSchema(w, e.Schema, openapi.V2)
}
func (e SchemaElement) GetReference() *Reference   { return GetReference(e.Schema) }
func (e SchemaElement) IsUnresolved() bool         { return IsUnresolvedReference(e.Schema) }
func (e SchemaElement) GetExtensions() *Extensions { return GetExtensions(e.Schema) }

// WriteSchemaV3 writes s, or a $ref object when s is a reference.
func WriteSchemaV3(w writer.Writer, s *jsonschema.Schema) {
	if ref := GetReference(s); ref != nil {
		writeReference(w, ref.ReferenceV3())
		return
	}
	writeSchema(w, s, openapi.V3)
}

// WriteSchemaV2 writes s in Swagger 2.0 form, or a $ref object when s is a
// reference.
func WriteSchemaV2(w writer.Writer, s *jsonschema.Schema) {
	if ref := GetReference(s); ref != nil {
		writeReference(w, ref.ReferenceV2())
		return
	}
	writeSchema(w, s, openapi.V2)
}

func writeSubschema(w writer.Writer, s *jsonschema.Schema, v openapi.SpecVersion) {
	if v == openapi.V2 {
		WriteSchemaV2(w, s)
		return
	}
	WriteSchemaV3(w, s)
}

func writeSubschemas(w writer.Writer, name string, ss []*jsonschema.Schema, v openapi.SpecVersion) {
	writer.WriteList(w, name, ss, func(w writer.Writer, s *jsonschema.Schema) { writeSubschema(w, s, v) })
}

func writeSchema(w writer.Writer, s *jsonschema.Schema, v openapi.SpecVersion) {
	w.WriteStartObject()
	for _, k := range s.Keywords() {
		writeKeyword(w, k, v)
	}
	writeExtensions(w, GetExtensions(s), v)
	w.WriteEndObject()
}

func writeKeyword(w writer.Writer, k jsonschema.Keyword, v openapi.SpecVersion) {
	v2 := v == openapi.V2
	switch kk := k.(type) {
	case *ReferenceKeyword, *ExtensionsKeyword:
		// $ref is handled by the caller; extensions go last.
	case *jsonschema.TypeKeyword:
		writer.WriteProperty(w, kk.Keyword(), kk.Type)
	case *jsonschema.FormatKeyword:
		writer.WriteProperty(w, kk.Keyword(), kk.Value)
	case *jsonschema.TitleKeyword:
		writer.WriteProperty(w, kk.Keyword(), kk.Value)
	case *jsonschema.DescriptionKeyword:
		writer.WriteProperty(w, kk.Keyword(), kk.Value)
	case *jsonschema.PatternKeyword:
		writer.WriteProperty(w, kk.Keyword(), kk.Value)
	case *jsonschema.DefaultKeyword:
		w.WritePropertyName(kk.Keyword())
		writer.WriteAny(w, kk.Value)
	case *jsonschema.EnumKeyword:
		w.WritePropertyName(kk.Keyword())
		writer.WriteAny(w, kk.Values)
	case *jsonschema.MultipleOfKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MaximumKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MinimumKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MaxLengthKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MinLengthKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MaxItemsKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MinItemsKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MaxPropertiesKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.MinPropertiesKeyword:
		writer.WriteOptionalNumber(w, kk.Keyword(), &kk.Value)
	case *jsonschema.UniqueItemsKeyword:
		writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
	case *jsonschema.ReadOnlyKeyword:
		writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
	case *jsonschema.RequiredKeyword:
		writer.WriteStringList(w, kk.Keyword(), kk.Properties)
	case *jsonschema.PropertiesKeyword:
		writer.WriteMap(w, kk.Keyword(), kk.Properties, func(w writer.Writer, s *jsonschema.Schema) { writeSubschema(w, s, v) })
	case *jsonschema.ItemsKeyword:
		w.WritePropertyName(kk.Keyword())
		writeSubschema(w, kk.Schema, v)
	case *jsonschema.AdditionalPropertiesKeyword:
		w.WritePropertyName(kk.Keyword())
		writeSubschema(w, kk.Schema, v)
	case *jsonschema.AllOfKeyword:
		writeSubschemas(w, kk.Keyword(), kk.Schemas, v)
	case *jsonschema.AnyOfKeyword:
		if !v2 {
			writeSubschemas(w, kk.Keyword(), kk.Schemas, v)
		}
	case *jsonschema.OneOfKeyword:
		if !v2 {
			writeSubschemas(w, kk.Keyword(), kk.Schemas, v)
		}
	case *jsonschema.NotKeyword:
		if !v2 {
			w.WritePropertyName(kk.Keyword())
			writeSubschema(w, kk.Schema, v)
		}
	case *jsonschema.WriteOnlyKeyword:
		if !v2 {
			writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
		}
	case *jsonschema.DeprecatedKeyword:
		if !v2 {
			writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
		}
	case *NullableKeyword:
		name := kk.Keyword()
		if v2 {
			name = ExtensionPrefix + name
		}
		writer.WriteOptionalBool(w, name, &kk.Value)
	case *SummaryKeyword:
		name := kk.Keyword()
		if v2 {
			name = ExtensionPrefix + name
		}
		writer.WriteProperty(w, name, kk.Value)
	case *DiscriminatorKeyword:
		if kk.Discriminator == nil {
			return
		}
		w.WritePropertyName(kk.Keyword())
		if v2 {
			kk.Discriminator.WriteAsV2(w)
		} else {
			kk.Discriminator.WriteAsV3(w)
		}
	case *AdditionalPropertiesAllowedKeyword:
		writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
	case *ExclusiveMinimumKeyword:
		writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
	case *ExclusiveMaximumKeyword:
		writer.WriteOptionalBool(w, kk.Keyword(), &kk.Value)
	case *ExternalDocsKeyword:
		if v2 {
			writer.WriteOptionalObject(w, kk.Keyword(), kk.ExternalDocs, (*ExternalDocs).WriteAsV2)
		} else {
			writer.WriteOptionalObject(w, kk.Keyword(), kk.ExternalDocs, (*ExternalDocs).WriteAsV3)
		}
	case *ExampleKeyword:
		w.WritePropertyName(kk.Keyword())
		writer.WriteAny(w, kk.Value)
	case *XMLKeyword:
		w.WritePropertyName(kk.Keyword())
		writer.WriteAny(w, kk.Value)
	case KeywordWriter:
		kk.WriteKeyword(w, v)
	}
}

// flatKeywords are the schema keywords Swagger 2.0 allows directly on
// non-body parameters, headers and items objects.
var flatKeywords = map[string]bool{
	jsonschema.NameType:        true,
	jsonschema.NameFormat:      true,
	jsonschema.NameDefault:     true,
	jsonschema.NameMaximum:     true,
	NameExclusiveMaximum:       true,
	jsonschema.NameMinimum:     true,
	NameExclusiveMinimum:       true,
	jsonschema.NameMaxLength:   true,
	jsonschema.NameMinLength:   true,
	jsonschema.NamePattern:     true,
	jsonschema.NameMaxItems:    true,
	jsonschema.NameMinItems:    true,
	jsonschema.NameUniqueItems: true,
	jsonschema.NameEnum:        true,
	jsonschema.NameMultipleOf:  true,
}

// writeFlatSchemaV2 writes the keywords of s that Swagger 2.0 inlines into
// parameters and headers, into the object currently open on w. Nested array
// items become items objects. collectionFormat is written for arrays when
// set.
func writeFlatSchemaV2(w writer.Writer, s *jsonschema.Schema, collectionFormat string) {
	writeFlatSchema(w, s, collectionFormat, map[*jsonschema.Schema]bool{})
}

// writeFlatSchema stops at an items schema already on the path (a
// recursive array component), leaving its items object empty.
func writeFlatSchema(w writer.Writer, s *jsonschema.Schema, collectionFormat string, path map[*jsonschema.Schema]bool) {
	path[s] = true
	defer delete(path, s)
	for _, k := range s.Keywords() {
		if items, ok := k.(*jsonschema.ItemsKeyword); ok {
			w.WritePropertyName(jsonschema.NameItems)
			w.WriteStartObject()
			if items.Schema != nil && !path[items.Schema] {
				writeFlatSchema(w, items.Schema, "", path)
			}
			w.WriteEndObject()
			continue
		}
		if flatKeywords[k.Keyword()] {
			writeKeyword(w, k, openapi.V2)
		}
	}
	if s.GetType() == "array" {
		writer.WriteProperty(w, "collectionFormat", collectionFormat)
	}
}
