package reader

import (
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

var (
	parameterFields   *FieldMap[*models.Parameter]
	headerFields      *FieldMap[*models.Header]
	exampleFields     *FieldMap[*models.Example]
	mediaTypeFields   *FieldMap[*models.MediaType]
	encodingFields    *FieldMap[*models.Encoding]
	requestBodyFields *FieldMap[*models.RequestBody]
	responsesFields   *FieldMap[*models.Responses]
	responseFields    *FieldMap[*models.Response]
	pathsFields       *FieldMap[*models.Paths]
	pathItemFields    *FieldMap[*models.PathItem]
	operationFields   *FieldMap[*models.Operation]
)

func init() {
	parameterFields = NewFieldMap[*models.Parameter]("parameter", UnknownWarn).
		Field("name", setString(func(o *models.Parameter, v string) { o.Name = v })).
		Field("in", setLocation(func(o *models.Parameter, v models.ParameterLocation) { o.In = v })).
		Field("description", setString(func(o *models.Parameter, v string) { o.Description = v })).
		Field("required", setBool(func(o *models.Parameter, v bool) { o.Required = v })).
		Field("deprecated", setBool(func(o *models.Parameter, v bool) { o.Deprecated = v })).
		Field("allowEmptyValue", setBool(func(o *models.Parameter, v bool) { o.AllowEmptyValue = v })).
		Field("style", setStyle(func(o *models.Parameter, v models.ParameterStyle) { o.Style = v })).
		Field("explode", setBool(func(o *models.Parameter, v bool) { o.Explode = &v })).
		Field("allowReserved", setBool(func(o *models.Parameter, v bool) { o.AllowReserved = v })).
		Field("schema", func(o *models.Parameter, n parsenode.Node, c *ParsingContext) {
			loadSchemaRef(n, c, func(s *jsonschema.Schema) { o.Schema = s })
		}).
		Field("example", setAny(func(o *models.Parameter, v any) { o.Example = v })).
		Field("examples", func(o *models.Parameter, n parsenode.Node, c *ParsingContext) { o.Examples = loadExamples(n, c) }).
		Field("content", func(o *models.Parameter, n parsenode.Node, c *ParsingContext) { o.Content = loadContent(n, c) }).
		Extensions(func(o *models.Parameter) **models.Extensions { return &o.Extensions })

	headerFields = NewFieldMap[*models.Header]("header", UnknownWarn).
		Field("description", setString(func(o *models.Header, v string) { o.Description = v })).
		Field("required", setBool(func(o *models.Header, v bool) { o.Required = v })).
		Field("deprecated", setBool(func(o *models.Header, v bool) { o.Deprecated = v })).
		Field("allowEmptyValue", setBool(func(o *models.Header, v bool) { o.AllowEmptyValue = v })).
		Field("style", setStyle(func(o *models.Header, v models.ParameterStyle) { o.Style = v })).
		Field("explode", setBool(func(o *models.Header, v bool) { o.Explode = &v })).
		Field("allowReserved", setBool(func(o *models.Header, v bool) { o.AllowReserved = v })).
		Field("schema", func(o *models.Header, n parsenode.Node, c *ParsingContext) {
			loadSchemaRef(n, c, func(s *jsonschema.Schema) { o.Schema = s })
		}).
		Field("example", setAny(func(o *models.Header, v any) { o.Example = v })).
		Field("examples", func(o *models.Header, n parsenode.Node, c *ParsingContext) { o.Examples = loadExamples(n, c) }).
		Field("content", func(o *models.Header, n parsenode.Node, c *ParsingContext) { o.Content = loadContent(n, c) }).
		Extensions(func(o *models.Header) **models.Extensions { return &o.Extensions })

	exampleFields = NewFieldMap[*models.Example]("example", UnknownWarn).
		Field("summary", setString(func(o *models.Example, v string) { o.Summary = v })).
		Field("description", setString(func(o *models.Example, v string) { o.Description = v })).
		Field("value", setAny(func(o *models.Example, v any) { o.Value = v })).
		Field("externalValue", setString(func(o *models.Example, v string) { o.ExternalValue = v })).
		Extensions(func(o *models.Example) **models.Extensions { return &o.Extensions })

	mediaTypeFields = NewFieldMap[*models.MediaType]("mediaType", UnknownWarn).
		Field("schema", func(o *models.MediaType, n parsenode.Node, c *ParsingContext) {
			loadSchemaRef(n, c, func(s *jsonschema.Schema) { o.Schema = s })
		}).
		Field("example", setAny(func(o *models.MediaType, v any) { o.Example = v })).
		Field("examples", func(o *models.MediaType, n parsenode.Node, c *ParsingContext) { o.Examples = loadExamples(n, c) }).
		Field("encoding", func(o *models.MediaType, n parsenode.Node, c *ParsingContext) {
			o.Encoding = loadMap(n, c, "encoding", loadEncoding)
		}).
		Extensions(func(o *models.MediaType) **models.Extensions { return &o.Extensions })

	encodingFields = NewFieldMap[*models.Encoding]("encoding", UnknownWarn).
		Field("contentType", setString(func(o *models.Encoding, v string) { o.ContentType = v })).
		Field("headers", func(o *models.Encoding, n parsenode.Node, c *ParsingContext) { o.Headers = loadHeaders(n, c) }).
		Field("style", setStyle(func(o *models.Encoding, v models.ParameterStyle) { o.Style = v })).
		Field("explode", setBool(func(o *models.Encoding, v bool) { o.Explode = &v })).
		Field("allowReserved", setBool(func(o *models.Encoding, v bool) { o.AllowReserved = v })).
		Extensions(func(o *models.Encoding) **models.Extensions { return &o.Extensions })

	requestBodyFields = NewFieldMap[*models.RequestBody]("requestBody", UnknownWarn).
		Field("description", setString(func(o *models.RequestBody, v string) { o.Description = v })).
		Field("content", func(o *models.RequestBody, n parsenode.Node, c *ParsingContext) { o.Content = loadContent(n, c) }).
		Field("required", setBool(func(o *models.RequestBody, v bool) { o.Required = v })).
		Extensions(func(o *models.RequestBody) **models.Extensions { return &o.Extensions })

	responsesFields = NewFieldMap[*models.Responses]("responses", UnknownWarn).
		Pattern(isResponseKey, func(o *models.Responses, key string, n parsenode.Node, c *ParsingContext) {
			if o.Items == nil {
				o.Items = ordered.New[*models.Response](0)
			}
			loadRef(n, c, responseRef, loadResponse, func(r *models.Response) { o.Items.Set(key, r) })
		}).
		Extensions(func(o *models.Responses) **models.Extensions { return &o.Extensions })

	responseFields = NewFieldMap[*models.Response]("response", UnknownWarn).
		Field("description", setString(func(o *models.Response, v string) { o.Description = v })).
		Field("headers", func(o *models.Response, n parsenode.Node, c *ParsingContext) { o.Headers = loadHeaders(n, c) }).
		Field("content", func(o *models.Response, n parsenode.Node, c *ParsingContext) { o.Content = loadContent(n, c) }).
		Field("links", func(o *models.Response, n parsenode.Node, c *ParsingContext) { o.Links = rawMap(n, c, "links") }).
		Extensions(func(o *models.Response) **models.Extensions { return &o.Extensions })

	pathsFields = NewFieldMap[*models.Paths]("paths", UnknownWarn).
		Pattern(func(k string) bool { return strings.HasPrefix(k, "/") }, func(o *models.Paths, key string, n parsenode.Node, c *ParsingContext) {
			if o.Items == nil {
				o.Items = ordered.New[*models.PathItem](0)
			}
			o.Items.Set(key, loadPathItem(n, c))
		}).
		Extensions(func(o *models.Paths) **models.Extensions { return &o.Extensions })

	pathItemFields = NewFieldMap[*models.PathItem]("pathItem", UnknownWarn).
		Field("summary", setString(func(o *models.PathItem, v string) { o.Summary = v })).
		Field("description", setString(func(o *models.PathItem, v string) { o.Description = v })).
		Field("servers", func(o *models.PathItem, n parsenode.Node, c *ParsingContext) { o.Servers = loadServers(n, c) }).
		Field("parameters", func(o *models.PathItem, n parsenode.Node, c *ParsingContext) { o.Parameters = loadParameters(n, c) })
	for _, t := range models.OperationTypes {
		pathItemFields.Field(string(t), func(o *models.PathItem, n parsenode.Node, c *ParsingContext) {
			o.AddOperation(t, loadOperation(n, c))
		})
	}
	pathItemFields.Extensions(func(o *models.PathItem) **models.Extensions { return &o.Extensions })

	operationFields = NewFieldMap[*models.Operation]("operation", UnknownWarn).
		Field("tags", func(o *models.Operation, n parsenode.Node, c *ParsingContext) { o.Tags = tagNames(n, c) }).
		Field("summary", setString(func(o *models.Operation, v string) { o.Summary = v })).
		Field("description", setString(func(o *models.Operation, v string) { o.Description = v })).
		Field("externalDocs", func(o *models.Operation, n parsenode.Node, c *ParsingContext) {
			o.ExternalDocs = loadExternalDocs(n, c)
		}).
		Field("operationId", setString(func(o *models.Operation, v string) { o.OperationID = v })).
		Field("parameters", func(o *models.Operation, n parsenode.Node, c *ParsingContext) { o.Parameters = loadParameters(n, c) }).
		Field("requestBody", func(o *models.Operation, n parsenode.Node, c *ParsingContext) {
			loadRef(n, c, requestBodyRef, loadRequestBody, func(b *models.RequestBody) { o.RequestBody = b })
		}).
		Field("responses", func(o *models.Operation, n parsenode.Node, c *ParsingContext) { o.Responses = loadResponses(n, c) }).
		Field("callbacks", func(o *models.Operation, n parsenode.Node, c *ParsingContext) {
			o.Callbacks = rawMap(n, c, "callbacks")
		}).
		Field("deprecated", setBool(func(o *models.Operation, v bool) { o.Deprecated = v })).
		Field("security", func(o *models.Operation, n parsenode.Node, c *ParsingContext) { o.Security = loadSecurity(n, c) }).
		Field("servers", func(o *models.Operation, n parsenode.Node, c *ParsingContext) { o.Servers = loadServers(n, c) }).
		Extensions(func(o *models.Operation) **models.Extensions { return &o.Extensions })
}

// isResponseKey matches "default" and status codes such as 200 or 4XX.
func isResponseKey(k string) bool {
	if k == "default" {
		return true
	}
	if len(k) != 3 || k[0] < '1' || k[0] > '5' {
		return false
	}
	for i := 1; i < 3; i++ {
		if !(k[i] >= '0' && k[i] <= '9' || k[i] == 'X') {
			return false
		}
	}
	return true
}

func loadParameter(n parsenode.Node, c *ParsingContext) *models.Parameter {
	return loadObject(n, c, &models.Parameter{}, parameterFields)
}

func loadHeader(n parsenode.Node, c *ParsingContext) *models.Header {
	return loadObject(n, c, &models.Header{}, headerFields)
}

func loadExample(n parsenode.Node, c *ParsingContext) *models.Example {
	return loadObject(n, c, &models.Example{}, exampleFields)
}

func loadMediaType(n parsenode.Node, c *ParsingContext) *models.MediaType {
	return loadObject(n, c, &models.MediaType{}, mediaTypeFields)
}

func loadEncoding(n parsenode.Node, c *ParsingContext) *models.Encoding {
	return loadObject(n, c, &models.Encoding{}, encodingFields)
}

func loadRequestBody(n parsenode.Node, c *ParsingContext) *models.RequestBody {
	return loadObject(n, c, &models.RequestBody{}, requestBodyFields)
}

func loadResponses(n parsenode.Node, c *ParsingContext) *models.Responses {
	return loadObject(n, c, &models.Responses{}, responsesFields)
}

func loadResponse(n parsenode.Node, c *ParsingContext) *models.Response {
	if c.version == openapi.V2 {
		return loadResponseV2(n, c)
	}
	return loadObject(n, c, &models.Response{}, responseFields)
}

func loadPaths(n parsenode.Node, c *ParsingContext) *models.Paths {
	return loadObject(n, c, &models.Paths{}, pathsFields)
}

func loadPathItem(n parsenode.Node, c *ParsingContext) *models.PathItem {
	if c.version == openapi.V2 {
		return loadPathItemV2(n, c)
	}
	return loadObject(n, c, &models.PathItem{}, pathItemFields)
}

func loadOperation(n parsenode.Node, c *ParsingContext) *models.Operation {
	return loadObject(n, c, &models.Operation{}, operationFields)
}

func loadContent(n parsenode.Node, c *ParsingContext) *ordered.Map[*models.MediaType] {
	return loadMap(n, c, "content", loadMediaType)
}

// loadRefMap reads a map whose values may be $ref objects.
func loadRefMap[T comparable](n parsenode.Node, c *ParsingContext, what string, rk refKind[T], load func(parsenode.Node, *ParsingContext) T) *ordered.Map[T] {
	m, ok := c.asMap(n, what)
	if !ok {
		return nil
	}
	out := ordered.New[T](m.Len())
	for _, p := range m.Properties() {
		key := p.Key
		loadRef(p.Value, c, rk, load, func(v T) { out.Set(key, v) })
	}
	return out
}

func loadExamples(n parsenode.Node, c *ParsingContext) *ordered.Map[*models.Example] {
	return loadRefMap(n, c, "examples", exampleRef, loadExample)
}

func loadHeaders(n parsenode.Node, c *ParsingContext) *ordered.Map[*models.Header] {
	return loadRefMap(n, c, "headers", headerRef, loadHeader)
}

func loadParameters(n parsenode.Node, c *ParsingContext) []*models.Parameter {
	l, ok := c.asList(n, "parameters")
	if !ok {
		return nil
	}
	items := l.Items()
	out := make([]*models.Parameter, len(items))
	for i, it := range items {
		loadRef(it, c, parameterRef, loadParameter, func(p *models.Parameter) { out[i] = p })
	}
	return out
}
