package reader

import (
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// Swagger 2.0 parameter locations without an OpenAPI 3.0 counterpart.
const (
	inBody     = "body"
	inFormData = "formData"
)

const defaultMediaType = "application/json"

var (
	v2ItemsFields     *FieldMap[*jsonschema.Schema]
	v2ParameterFields *FieldMap[*v2Parameter]
	v2HeaderFields    *FieldMap[*v2Header]
)

func init() {
	v2ItemsFields = NewFieldMap[*jsonschema.Schema]("items", UnknownExtensionsElseWarn).
		Field("type", flatType).
		Field("format", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.FormatKeyword{Value: v} })).
		Field("items", func(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
			s.SetKeyword(&jsonschema.ItemsKeyword{Schema: loadFlatSchema(n, c)})
		}).
		Field("collectionFormat", ignore[*jsonschema.Schema]).
		Field("default", schemaAny(func(v any) jsonschema.Keyword { return &jsonschema.DefaultKeyword{Value: v} })).
		Field("maximum", schemaNumber(func(v float64) jsonschema.Keyword { return &jsonschema.MaximumKeyword{Value: v} })).
		Field("exclusiveMaximum", schemaBool(func(v bool) jsonschema.Keyword { return &models.ExclusiveMaximumKeyword{Value: v} })).
		Field("minimum", schemaNumber(func(v float64) jsonschema.Keyword { return &jsonschema.MinimumKeyword{Value: v} })).
		Field("exclusiveMinimum", schemaBool(func(v bool) jsonschema.Keyword { return &models.ExclusiveMinimumKeyword{Value: v} })).
		Field("maxLength", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MaxLengthKeyword{Value: v} })).
		Field("minLength", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MinLengthKeyword{Value: v} })).
		Field("pattern", schemaString(func(v string) jsonschema.Keyword { return &jsonschema.PatternKeyword{Value: v} })).
		Field("maxItems", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MaxItemsKeyword{Value: v} })).
		Field("minItems", schemaInt(func(v int64) jsonschema.Keyword { return &jsonschema.MinItemsKeyword{Value: v} })).
		Field("uniqueItems", schemaBool(func(v bool) jsonschema.Keyword { return &jsonschema.UniqueItemsKeyword{Value: v} })).
		Field("enum", schemaEnum).
		Field("multipleOf", schemaNumber(func(v float64) jsonschema.Keyword { return &jsonschema.MultipleOfKeyword{Value: v} })).
		Pattern(models.IsExtension, func(s *jsonschema.Schema, key string, n parsenode.Node, c *ParsingContext) {
			models.SetExtension(s, key, c.loadExtension(key, n))
		})

	v2ParameterFields = NewFieldMap[*v2Parameter]("parameter (2.0)", UnknownWarn).
		Field("name", setString(func(o *v2Parameter, v string) { o.p.Name = v })).
		Field("in", setLocation(func(o *v2Parameter, v models.ParameterLocation) { o.p.In = v })).
		Field("description", setString(func(o *v2Parameter, v string) { o.p.Description = v })).
		Field("required", setBool(func(o *v2Parameter, v bool) { o.p.Required = v })).
		Field("allowEmptyValue", setBool(func(o *v2Parameter, v bool) { o.p.AllowEmptyValue = v })).
		Field("schema", func(o *v2Parameter, n parsenode.Node, c *ParsingContext) {
			loadSchemaRef(n, c, o.body.set)
		}).
		Field("collectionFormat", setString(func(o *v2Parameter, v string) { o.collectionFormat = v })).
		Field("x-example", setAny(func(o *v2Parameter, v any) { o.p.Example = v })).
		Pattern(flatKeyword, func(o *v2Parameter, key string, n parsenode.Node, c *ParsingContext) {
			if o.flat == nil {
				o.flat = jsonschema.New()
			}
			v2ItemsFields.dispatch(o.flat, parsenode.Property{Key: key, Value: n}, c)
		}).
		Extensions(func(o *v2Parameter) **models.Extensions { return &o.p.Extensions })

	v2HeaderFields = NewFieldMap[*v2Header]("header (2.0)", UnknownWarn).
		Field("description", setString(func(o *v2Header, v string) { o.h.Description = v })).
		Field("collectionFormat", ignore[*v2Header]).
		Field("x-example", setAny(func(o *v2Header, v any) { o.h.Example = v })).
		Pattern(flatKeyword, func(o *v2Header, key string, n parsenode.Node, c *ParsingContext) {
			if o.h.Schema == nil {
				o.h.Schema = jsonschema.New()
			}
			v2ItemsFields.dispatch(o.h.Schema, parsenode.Property{Key: key, Value: n}, c)
		}).
		Extensions(func(o *v2Header) **models.Extensions { return &o.h.Extensions })
}

// flatKeyword matches the schema keywords Swagger 2.0 inlines into
// parameters, headers and items.
func flatKeyword(key string) bool {
	return key != "collectionFormat" && !models.IsExtension(key) && v2ItemsFields.Has(key)
}

// flatType maps the file type onto a binary string.
func flatType(s *jsonschema.Schema, n parsenode.Node, c *ParsingContext) {
	t, ok := c.str(n)
	if !ok {
		return
	}
	if t == "file" {
		s.SetKeyword(&jsonschema.TypeKeyword{Type: "string"})
		s.SetKeyword(&jsonschema.FormatKeyword{Value: "binary"})
		return
	}
	s.SetKeyword(&jsonschema.TypeKeyword{Type: t})
}

func loadFlatSchema(n parsenode.Node, c *ParsingContext) *jsonschema.Schema {
	return loadObject(n, c, jsonschema.New(), v2ItemsFields)
}

// schemaSlot fans one schema field out to every media type built from it.
// Sinks bound before a $ref resolves receive the shared instance later.
type schemaSlot struct {
	schema *jsonschema.Schema
	sinks  []func(*jsonschema.Schema)
}

func (s *schemaSlot) set(v *jsonschema.Schema) {
	s.schema = v
	for _, f := range s.sinks {
		f(v)
	}
}

func (s *schemaSlot) bind(f func(*jsonschema.Schema)) {
	s.sinks = append(s.sinks, f)
	if s.schema != nil {
		f(s.schema)
	}
}

type v2Parameter struct {
	p                *models.Parameter
	flat             *jsonschema.Schema
	collectionFormat string
	body             schemaSlot
}

type v2Header struct {
	h *models.Header
}

func loadHeaderV2(n parsenode.Node, c *ParsingContext) *models.Header {
	return loadObject(n, c, &v2Header{h: &models.Header{}}, v2HeaderFields).h
}

// loadParameterV2 reads a Swagger 2.0 parameter. Body parameters come back
// as request bodies; everything else, formData included, as parameters.
func loadParameterV2(n parsenode.Node, c *ParsingContext) (*models.Parameter, *models.RequestBody) {
	o := loadObject(n, c, &v2Parameter{p: &models.Parameter{}}, v2ParameterFields)
	if o.p.In == inBody {
		return nil, o.requestBody(c)
	}
	p := o.p
	if o.flat != nil {
		p.Schema = o.flat
		if o.flat.GetType() == "array" {
			style, explode := models.StyleFromCollectionFormat(o.collectionFormat, p.In)
			p.Style, p.Explode = style, &explode
		}
	}
	return p, nil
}

// requestBody converts a body parameter. The parameter name survives as
// the x-bodyName extension.
func (o *v2Parameter) requestBody(c *ParsingContext) *models.RequestBody {
	rb := &models.RequestBody{
		Description: o.p.Description,
		Required:    o.p.Required,
		Content:     ordered.New[*models.MediaType](0),
		Extensions:  o.p.Extensions,
	}
	types := c.v2.mediaTypesIn()
	if len(types) == 0 {
		types = []string{defaultMediaType}
	}
	for _, ct := range types {
		mt := &models.MediaType{}
		rb.Content.Set(ct, mt)
		o.body.bind(func(s *jsonschema.Schema) { mt.Schema = s })
	}
	if o.p.Name != "" {
		if rb.Extensions == nil {
			rb.Extensions = &models.Extensions{}
		}
		rb.Extensions.Set(models.BodyNameExtension, o.p.Name)
	}
	return rb
}

// v2ParamSet collects the parameters of a Swagger 2.0 operation or path
// item until references are resolved. Slots emptied by a body reference
// hold nil.
type v2ParamSet struct {
	params []*models.Parameter
	body   *models.RequestBody
	form   []*models.Parameter
}

func (s *v2ParamSet) add(p *models.Parameter, rb *models.RequestBody) {
	switch {
	case rb != nil:
		s.body = rb
	case p != nil && string(p.In) == inFormData:
		s.form = append(s.form, p)
	default:
		s.params = append(s.params, p)
	}
}

// load reads a parameter list. A $ref may turn out to be a body, a
// formData or a regular parameter; the slot setter files it accordingly.
func (s *v2ParamSet) load(n parsenode.Node, c *ParsingContext) {
	l, ok := c.asList(n, "parameters")
	if !ok {
		return
	}
	for _, it := range l.Items() {
		raw, isRef := refString(it)
		if !isRef {
			s.add(loadParameterV2(it, c))
			continue
		}
		i := len(s.params)
		ph := addReference(c, it, raw, parameterRef, func(v any) bool {
			switch x := v.(type) {
			case *models.Parameter:
				if string(x.In) == inFormData {
					s.params[i] = nil
					s.form = append(s.form, x)
				} else {
					s.params[i] = x
				}
			case *models.RequestBody:
				s.params[i] = nil
				s.body = x
			default:
				return false
			}
			return true
		})
		s.params = append(s.params, ph)
	}
}

// finish compacts the parameter list and folds formData parameters into a
// form request body.
func (s *v2ParamSet) finish(c *ParsingContext, consumes []string) ([]*models.Parameter, *models.RequestBody) {
	params := make([]*models.Parameter, 0, len(s.params))
	for _, p := range s.params {
		if p != nil {
			params = append(params, p)
		}
	}
	if s.body != nil || len(s.form) == 0 {
		return params, s.body
	}
	return params, formBody(s.form, consumes)
}

func formBody(form []*models.Parameter, consumes []string) *models.RequestBody {
	props := ordered.New[*jsonschema.Schema](len(form))
	var required []string
	for _, p := range form {
		ps := p.Schema
		if ps == nil {
			ps = jsonschema.New()
		}
		if p.Description != "" && ps.GetDescription() == "" {
			ps = cloneSchema(ps)
			ps.SetKeyword(&jsonschema.DescriptionKeyword{Value: p.Description})
		}
		props.Set(p.Name, ps)
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := jsonschema.New(&jsonschema.TypeKeyword{Type: "object"}, &jsonschema.PropertiesKeyword{Properties: props})
	if len(required) > 0 {
		schema.SetKeyword(&jsonschema.RequiredKeyword{Properties: required})
	}
	var types []string
	for _, ct := range consumes {
		if ct == models.ContentTypeFormURLEncoded || ct == models.ContentTypeMultipartForm {
			types = append(types, ct)
		}
	}
	if len(types) == 0 {
		types = []string{models.ContentTypeFormURLEncoded}
	}
	rb := &models.RequestBody{Content: ordered.New[*models.MediaType](len(types))}
	for _, ct := range types {
		rb.Content.Set(ct, &models.MediaType{Schema: schema})
	}
	return rb
}

// cloneSchema copies the keyword list so a shared component schema is not
// modified.
func cloneSchema(s *jsonschema.Schema) *jsonschema.Schema {
	return jsonschema.New(s.Keywords()...)
}
