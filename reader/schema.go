package reader

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

type schemaAction = FieldAction[*jsonschema.Schema]

var (
	schemaFieldsV3      *FieldMap[*jsonschema.Schema]
	schemaFieldsV2      *FieldMap[*jsonschema.Schema]
	discriminatorFields *FieldMap[*models.Discriminator]
)

func init() {
	schemaFieldsV3 = schemaFieldMap(openapi.V3)
	schemaFieldsV2 = schemaFieldMap(openapi.V2)

	discriminatorFields = NewFieldMap[*models.Discriminator]("discriminator", UnknownWarn).
		Field("propertyName", setString(func(o *models.Discriminator, v string) { o.PropertyName = v })).
		Field("mapping", func(o *models.Discriminator, n parsenode.Node, c *ParsingContext) {
			o.Mapping = c.stringMap(n, "mapping")
		})
}

// schemaFieldMap builds the schema table of a dialect. Both dialects share
// the draft keywords; OpenAPI 3.0 adds composition and nullable, Swagger
// 2.0 carries its extras as x- fields.
func schemaFieldMap(v openapi.SpecVersion) *FieldMap[*jsonschema.Schema] {
	m := NewFieldMap[*jsonschema.Schema]("schema", UnknownExtensionsElseWarn).
		Field("title", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.TitleKeyword{Value: v} })).
		Field("description", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.DescriptionKeyword{Value: v} })).
		Field("type", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.TypeKeyword{Type: v} })).
		Field("format", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.FormatKeyword{Value: v} })).
		Field("pattern", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.PatternKeyword{Value: v} })).
		Field("multipleOf", schemaNumber(func(v float64) jsonschema.Keyword { return &jsonschema.MultipleOfKeyword{Value: v} })).
		Field("maximum", schemaNumber(func(v float64) jsonschema.Keyword { return &jsonschema.MaximumKeyword{Value: v} })).
		Field("minimum", schemaNumber(func(v float64) jsonschema.Keyword { return &jsonschema.MinimumKeyword{Value: v} })).
		Field("exclusiveMaximum", schemaBool(func(v bool) jsonschema.Keyword { return &models.ExclusiveMaximumKeyword{Value: v} })).
		Field("exclusiveMinimum", schemaBool(func(v bool) jsonschema.Keyword { return &models.ExclusiveMinimumKeyword{Value: v} })).
		Field("maxLength", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MaxLengthKeyword{Value: v} })).
		Field("minLength", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MinLengthKeyword{Value: v} })).
		Field("maxItems", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MaxItemsKeyword{Value: v} })).
		Field("minItems", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MinItemsKeyword{Value: v} })).
		Field("maxProperties", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MaxPropertiesKeyword{Value: v} })).
		Field("minProperties", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MinPropertiesKeyword{Value: v} })).
		Field("uniqueItems", schemaBool(func(v bool) jsonschema.Keyword { return &jsonschema.UniqueItemsKeyword{Value: v} })).
		Field("readOnly", schemaBool(func(v bool) jsonschema.Keyword { return &jsonschema.ReadOnlyKeyword{Value: v} })).
		Field("required", setStrings("required", func(s *jsonschema.Schema, v []string) {
			s.SetKeyword(&jsonschema.RequiredKeyword{Properties: v})
		})).
		Field("enum", schemaEnum).
		Field("default", schemaAny(func(v any) jsonschema.Keyword { return &jsonschema.DefaultKeyword{Value: v} })).
		Field("example", schemaAny(func(v any) jsonschema.Keyword { return &models.ExampleKeyword{Value: v} })).
		Field("xml", schemaAny(func(v any) jsonschema.Keyword { return &models.XMLKeyword{Value: v} })).
		Field("externalDocs", func(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
			s.SetKeyword(&models.ExternalDocsKeyword{ExternalDocs: loadExternalDocs(n, c)})
		}).
		Field("items", func(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
			loadRef(n, c, schemaRef, loadSchema, func(sub *jsonschema.Schema) {
				s.SetKeyword(&jsonschema.ItemsKeyword{Schema: sub})
			})
		}).
		Field("properties", schemaProperties).
		Field("additionalProperties", schemaAdditionalProperties).
		Field("allOf", schemaList("allOf", func(ss []*jsonschema.Schema) jsonschema.Keyword { return &jsonschema.AllOfKeyword{Schemas: ss} }))

	if v == openapi.V2 {
		m.name = "schema (2.0)"
		m.Field("discriminator", schemaString(func(v string) jsonschema.Keyword {
			return &models.DiscriminatorKeyword{Discriminator: &models.Discriminator{PropertyName: v}}
		})).
			Field("x-nullable", schemaBool(func(v bool) jsonschema.Keyword { return &models.NullableKeyword{Value: v} })).
			Field("x-summary", schemaString(func(v string) jsonschema.Keyword { return &models.SummaryKeyword{Value: v} }))
	} else {
		m.Field("anyOf", schemaList("anyOf", func(ss []*jsonschema.Schema) jsonschema.Keyword { return &jsonschema.AnyOfKeyword{Schemas: ss} })).
			Field("oneOf", schemaList("oneOf", func(ss []*jsonschema.Schema) jsonschema.Keyword { return &jsonschema.OneOfKeyword{Schemas: ss} })).
			Field("not", func(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
				loadRef(n, c, schemaRef, loadSchema, func(sub *jsonschema.Schema) {
					s.SetKeyword(&jsonschema.NotKeyword{Schema: sub})
				})
			}).
			Field("nullable", schemaBool(func(v bool) jsonschema.Keyword { return &models.NullableKeyword{Value: v} })).
			Field("writeOnly", schemaBool(func(v bool) jsonschema.Keyword { return &jsonschema.WriteOnlyKeyword{Value: v} })).
			Field("deprecated", schemaBool(func(v bool) jsonschema.Keyword { return &jsonschema.DeprecatedKeyword{Value: v} })).
			Field("summary", schemaString(func(v string) jsonschema.Keyword { return &models.SummaryKeyword{Value: v} })).
			Field("discriminator", func(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
				d := loadObject(n, c, &models.Discriminator{}, discriminatorFields)
				s.SetKeyword(&models.DiscriminatorKeyword{Discriminator: d})
			})
	}
	return m.Pattern(models.IsExtension, func(s *jsonschema.Schema, key string, n parsenode.Node, c *ParsingContext) {
		models.SetExtension(s, key, c.loadExtension(key, n))
	})
}

// loadSchema reads a schema object of the current dialect. References are
// handled by the caller through loadRef.
func loadSchema(n parsenode.Node, c *ParsingContext) *jsonschema.Schema {
	fields := schemaFieldsV3
	if c.version == openapi.V2 {
		fields = schemaFieldsV2
	}
	return loadObject(n, c, jsonschema.New(), fields)
}

// loadSchemaRef reads a schema slot that may hold a $ref.
func loadSchemaRef(n parsenode.Node, c *ParsingContext, assign func(*jsonschema.Schema)) *jsonschema.Schema {
	return loadRef(n, c, schemaRef, loadSchema, assign)
}

func schemaString(mk func(string) jsonschema.Keyword) schemaAction {
	return setString(func(s *jsonschema.Schema, v string) { s.SetKeyword(mk(v)) })
}

func schemaBool(mk func(bool) jsonschema.Keyword) schemaAction {
	return setBool(func(s *jsonschema.Schema, v bool) { s.SetKeyword(mk(v)) })
}

func schemaInt(mk func(int64) jsonschema.Keyword) schemaAction {
	return setInt(func(s *jsonschema.Schema, v int64) { s.SetKeyword(mk(v)) })
}

func schemaNumber(mk func(float64) jsonschema.Keyword) schemaAction {
	return setNumber(func(s *jsonschema.Schema, v float64) { s.SetKeyword(mk(v)) })
}

func schemaAny(mk func(any) jsonschema.Keyword) schemaAction {
	return setAny(func(s *jsonschema.Schema, v any) { s.SetKeyword(mk(v)) })
}

func schemaEnum(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
	l, ok := c.asList(n, "enum")
	if !ok {
		return
	}
	items := l.Items()
	values := make([]any, len(items))
	for i, it := range items {
		values[i] = loadAny(it)
	}
	s.SetKeyword(&jsonschema.EnumKeyword{Values: values})
}

func schemaProperties(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
	m, ok := c.asMap(n, "properties")
	if !ok {
		return
	}
	props := ordered.New[*jsonschema.Schema](m.Len())
	for _, p := range m.Properties() {
		name := p.Key
		loadSchemaRef(p.Value, c, func(sub *jsonschema.Schema) { props.Set(name, sub) })
	}
	s.SetKeyword(&jsonschema.PropertiesKeyword{Properties: props})
}

// schemaAdditionalProperties accepts both the boolean and the schema form.
func schemaAdditionalProperties(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
	if v, ok := n.(*parsenode.ValueNode); ok {
		if b, ok := c.boolean(v); ok {
			s.SetKeyword(&models.AdditionalPropertiesAllowedKeyword{Value: b})
		}
		return
	}
	loadSchemaRef(n, c, func(sub *jsonschema.Schema) {
		s.SetKeyword(&jsonschema.AdditionalPropertiesKeyword{Schema: sub})
	})
}

func schemaList(what string, mk func([]*jsonschema.Schema) jsonschema.Keyword) schemaAction {
	return func(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
		l, ok := c.asList(n, what)
		if !ok {
			return
		}
		items := l.Items()
		subs := make([]*jsonschema.Schema, len(items))
		for i, it := range items {
			loadSchemaRef(it, c, func(sub *jsonschema.Schema) { subs[i] = sub })
		}
		s.SetKeyword(mk(subs))
	}
}
