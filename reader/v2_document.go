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
	v2DocumentFields       *FieldMap[*models.Document]
	v2PathItemFields       *FieldMap[*v2PathItem]
	v2OperationFields      *FieldMap[*v2Operation]
	v2ResponseFields       *FieldMap[*v2Response]
	v2SecuritySchemeFields *FieldMap[*v2SecurityScheme]
)

// v2Methods are the operations a Swagger 2.0 path item can hold.
var v2Methods = []models.OperationType{
	models.OperationGet, models.OperationPut, models.OperationPost, models.OperationDelete,
	models.OperationOptions, models.OperationHead, models.OperationPatch,
}

func init() {
	v2DocumentFields = NewFieldMap[*models.Document]("swagger", UnknownWarn).
		Field("swagger", ignore[*models.Document]).
		Field("host", ignore[*models.Document]).
		Field("basePath", ignore[*models.Document]).
		Field("schemes", ignore[*models.Document]).
		Field("consumes", ignore[*models.Document]).
		Field("produces", ignore[*models.Document]).
		Field("info", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Info = loadInfo(n, c) }).
		Field("paths", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Paths = loadPaths(n, c) }).
		Field("definitions", func(o *models.Document, n parsenode.Node, c *ParsingContext) {
			components(o).Schemas = loadComponents(n, c, "definitions", schemaRef, loadSchema)
		}).
		Field("parameters", func(o *models.Document, n parsenode.Node, c *ParsingContext) {
			loadParameterComponents(n, c, components(o))
		}).
		Field("responses", func(o *models.Document, n parsenode.Node, c *ParsingContext) {
			components(o).Responses = loadComponents(n, c, "responses", responseRef, loadResponse)
		}).
		Field("securityDefinitions", func(o *models.Document, n parsenode.Node, c *ParsingContext) {
			components(o).SecuritySchemes = loadComponents(n, c, "securityDefinitions", securitySchemeRef, loadSecuritySchemeV2)
		}).
		Field("security", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Security = loadSecurity(n, c) }).
		Field("tags", func(o *models.Document, n parsenode.Node, c *ParsingContext) {
			o.Tags = loadList(n, c, "tags", loadTag)
		}).
		Field("externalDocs", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.ExternalDocs = loadExternalDocs(n, c) }).
		Extensions(func(o *models.Document) **models.Extensions { return &o.Extensions })

	v2PathItemFields = NewFieldMap[*v2PathItem]("pathItem (2.0)", UnknownWarn).
		Field("x-summary", setString(func(o *v2PathItem, v string) { o.item.Summary = v })).
		Field("x-description", setString(func(o *v2PathItem, v string) { o.item.Description = v })).
		Field("parameters", func(o *v2PathItem, n parsenode.Node, c *ParsingContext) { o.params.load(n, c) })
	for _, t := range v2Methods {
		v2PathItemFields.Field(string(t), func(o *v2PathItem, n parsenode.Node, c *ParsingContext) {
			o.item.AddOperation(t, loadOperationV2(n, c))
		})
	}
	v2PathItemFields.Extensions(func(o *v2PathItem) **models.Extensions { return &o.item.Extensions })

	v2OperationFields = NewFieldMap[*v2Operation]("operation (2.0)", UnknownWarn).
		Field("tags", func(o *v2Operation, n parsenode.Node, c *ParsingContext) { o.op.Tags = tagNames(n, c) }).
		Field("summary", setString(func(o *v2Operation, v string) { o.op.Summary = v })).
		Field("description", setString(func(o *v2Operation, v string) { o.op.Description = v })).
		Field("externalDocs", func(o *v2Operation, n parsenode.Node, c *ParsingContext) { o.op.ExternalDocs = loadExternalDocs(n, c) }).
		Field("operationId", setString(func(o *v2Operation, v string) { o.op.OperationID = v })).
		Field("consumes", ignore[*v2Operation]).
		Field("produces", ignore[*v2Operation]).
		Field("schemes", ignore[*v2Operation]).
		Field("parameters", func(o *v2Operation, n parsenode.Node, c *ParsingContext) { o.params.load(n, c) }).
		Field("responses", func(o *v2Operation, n parsenode.Node, c *ParsingContext) { o.op.Responses = loadResponses(n, c) }).
		Field("deprecated", setBool(func(o *v2Operation, v bool) { o.op.Deprecated = v })).
		Field("security", func(o *v2Operation, n parsenode.Node, c *ParsingContext) { o.op.Security = loadSecurity(n, c) }).
		Extensions(func(o *v2Operation) **models.Extensions { return &o.op.Extensions })

	v2ResponseFields = NewFieldMap[*v2Response]("response (2.0)", UnknownWarn).
		Field("description", setString(func(o *v2Response, v string) { o.r.Description = v })).
		Field("schema", func(o *v2Response, n parsenode.Node, c *ParsingContext) {
			o.hasSchema = true
			loadSchemaRef(n, c, o.schema.set)
		}).
		Field("headers", func(o *v2Response, n parsenode.Node, c *ParsingContext) {
			o.r.Headers = loadMap(n, c, "headers", loadHeaderV2)
		}).
		Field("examples", func(o *v2Response, n parsenode.Node, c *ParsingContext) { o.examples = rawMap(n, c, "examples") }).
		Extensions(func(o *v2Response) **models.Extensions { return &o.r.Extensions })

	v2SecuritySchemeFields = NewFieldMap[*v2SecurityScheme]("securityScheme (2.0)", UnknownWarn).
		Field("type", setString(func(o *v2SecurityScheme, v string) { o.kind = v })).
		Field("description", setString(func(o *v2SecurityScheme, v string) { o.s.Description = v })).
		Field("name", setString(func(o *v2SecurityScheme, v string) { o.s.Name = v })).
		Field("in", setLocation(func(o *v2SecurityScheme, v models.ParameterLocation) { o.s.In = v })).
		Field("flow", setString(func(o *v2SecurityScheme, v string) { o.flow = v })).
		Field("authorizationUrl", setString(func(o *v2SecurityScheme, v string) { o.f.AuthorizationURL = v })).
		Field("tokenUrl", setString(func(o *v2SecurityScheme, v string) { o.f.TokenURL = v })).
		Field("scopes", func(o *v2SecurityScheme, n parsenode.Node, c *ParsingContext) { o.f.Scopes = c.stringMap(n, "scopes") }).
		Extensions(func(o *v2SecurityScheme) **models.Extensions { return &o.s.Extensions })
}

func components(d *models.Document) *models.Components {
	if d.Components == nil {
		d.Components = &models.Components{}
	}
	return d.Components
}

// loadDocumentV2 reads a Swagger 2.0 root. Document-wide media types and
// the host triple are read first since nested loaders depend on them.
func loadDocumentV2(m *parsenode.MapNode, c *ParsingContext) (*models.Document, error) {
	doc := &models.Document{}
	if n := m.Get("consumes"); n != nil {
		c.v2.consumes = c.strings(n, "consumes")
	}
	if n := m.Get("produces"); n != nil {
		c.v2.produces = c.strings(n, "produces")
	}
	var (
		host, basePath string
		schemes        []string
	)
	if n := m.Get("host"); n != nil {
		host, _ = c.str(n)
	}
	if n := m.Get("basePath"); n != nil {
		basePath, _ = c.str(n)
	}
	if n := m.Get("schemes"); n != nil {
		schemes = c.strings(n, "schemes")
	}
	doc.Servers = v2Servers(host, basePath, schemes)

	for _, p := range m.Properties() {
		if err := c.canceled(); err != nil {
			return nil, err
		}
		v2DocumentFields.dispatch(doc, p, c)
	}
	return doc, nil
}

// v2Servers builds one server per scheme from host and basePath. Without a
// scheme the URL is protocol-relative; without a host it is the base path.
func v2Servers(host, basePath string, schemes []string) []*models.Server {
	if host == "" && basePath == "" {
		return nil
	}
	if host == "" {
		return []*models.Server{{URL: basePath}}
	}
	host = strings.TrimSuffix(host, "/")
	if len(schemes) == 0 {
		return []*models.Server{{URL: "//" + host + basePath}}
	}
	out := make([]*models.Server, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, &models.Server{URL: s + "://" + host + basePath})
	}
	return out
}

// loadParameterComponents splits the Swagger 2.0 parameters section: body
// parameters become request bodies, the rest parameters. Both stay
// addressable as #/parameters/{id}.
func loadParameterComponents(n parsenode.Node, c *ParsingContext, comps *models.Components) {
	m, ok := c.asMap(n, "parameters")
	if !ok {
		return
	}
	for _, p := range m.Properties() {
		id := p.Key
		if raw, isRef := refString(p.Value); isRef {
			ph := addReference(c, p.Value, raw, parameterRef, func(v any) bool {
				switch x := v.(type) {
				case *models.Parameter:
					comps.Parameters.Set(id, x)
				case *models.RequestBody:
					comps.Parameters.Delete(id)
					if comps.RequestBodies == nil {
						comps.RequestBodies = ordered.New[*models.RequestBody](0)
					}
					comps.RequestBodies.Set(id, x)
				default:
					return false
				}
				return true
			})
			if comps.Parameters == nil {
				comps.Parameters = ordered.New[*models.Parameter](0)
			}
			comps.Parameters.Set(id, ph)
			registerComponent(c, parameterRef, id, ph)
			continue
		}
		prm, body := loadParameterV2(p.Value, c)
		if body != nil {
			if comps.RequestBodies == nil {
				comps.RequestBodies = ordered.New[*models.RequestBody](0)
			}
			comps.RequestBodies.Set(id, body)
			registerComponent(c, requestBodyRef, id, body)
			continue
		}
		if comps.Parameters == nil {
			comps.Parameters = ordered.New[*models.Parameter](0)
		}
		comps.Parameters.Set(id, prm)
		registerComponent(c, parameterRef, id, prm)
	}
}

type v2PathItem struct {
	item   *models.PathItem
	params v2ParamSet
}

// loadPathItemV2 reads a path item. Path-level parameters apply to every
// operation; a path-level body goes to operations without one.
func loadPathItemV2(n parsenode.Node, c *ParsingContext) *models.PathItem {
	o := loadObject(n, c, &v2PathItem{item: &models.PathItem{}}, v2PathItemFields)
	c.afterResolve = append(c.afterResolve, func() {
		params, body := o.params.finish(c, c.v2.consumes)
		if len(params) > 0 {
			o.item.Parameters = params
		}
		if body == nil {
			return
		}
		for _, op := range o.item.Operations {
			if op.RequestBody == nil {
				op.RequestBody = body
			}
		}
	})
	return o.item
}

type v2Operation struct {
	op     *models.Operation
	params v2ParamSet
}

// loadOperationV2 reads an operation with its own consumes and produces in
// effect for nested parameters and responses.
func loadOperationV2(n parsenode.Node, c *ParsingContext) *models.Operation {
	o := &v2Operation{op: &models.Operation{}}
	m, ok := c.asMap(n, "operation (2.0)")
	if !ok {
		return o.op
	}
	saved := c.v2
	defer func() { c.v2 = saved }()
	if cn := m.Get("consumes"); cn != nil {
		c.v2.opConsumes = c.strings(cn, "consumes")
	}
	if pn := m.Get("produces"); pn != nil {
		c.v2.opProduces = c.strings(pn, "produces")
	}
	consumes := c.v2.mediaTypesIn()
	loadObject(n, c, o, v2OperationFields)
	c.afterResolve = append(c.afterResolve, func() {
		params, body := o.params.finish(c, consumes)
		if len(params) > 0 {
			o.op.Parameters = params
		}
		if body != nil {
			o.op.RequestBody = body
		}
	})
	return o.op
}

type v2Response struct {
	r         *models.Response
	schema    schemaSlot
	hasSchema bool
	examples  *ordered.Map[any]
}

// loadResponseV2 reads a response and builds one media type per produced
// content type, plus one per example type not listed there.
func loadResponseV2(n parsenode.Node, c *ParsingContext) *models.Response {
	o := loadObject(n, c, &v2Response{r: &models.Response{}}, v2ResponseFields)
	if !o.hasSchema && o.examples.Len() == 0 {
		return o.r
	}
	types := append([]string(nil), c.v2.mediaTypesOut()...)
	if len(types) == 0 {
		types = []string{defaultMediaType}
	}
	for ct := range o.examples.All() {
		if !contains(types, ct) {
			types = append(types, ct)
		}
	}
	content := ordered.New[*models.MediaType](len(types))
	for _, ct := range types {
		mt := &models.MediaType{Example: o.examples.Value(ct)}
		if o.hasSchema {
			o.schema.bind(func(s *jsonschema.Schema) { mt.Schema = s })
		}
		content.Set(ct, mt)
	}
	o.r.Content = content
	return o.r
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type v2SecurityScheme struct {
	s    *models.SecurityScheme
	kind string
	flow string
	f    *models.OAuthFlow
}

// loadSecuritySchemeV2 maps basic, apiKey and oauth2 definitions onto
// their OpenAPI 3.0 forms.
func loadSecuritySchemeV2(n parsenode.Node, c *ParsingContext) *models.SecurityScheme {
	o := loadObject(n, c, &v2SecurityScheme{s: &models.SecurityScheme{}, f: &models.OAuthFlow{}}, v2SecuritySchemeFields)
	switch o.kind {
	case "basic":
		o.s.Type, o.s.Scheme = models.SecurityTypeHTTP, "basic"
	case "apiKey":
		o.s.Type = models.SecurityTypeAPIKey
	case "oauth2":
		o.s.Type = models.SecurityTypeOAuth2
		flows := &models.OAuthFlows{}
		switch o.flow {
		case "implicit":
			flows.Implicit = o.f
		case "password":
			flows.Password = o.f
		case "application":
			flows.ClientCredentials = o.f
		case "accessCode":
			flows.AuthorizationCode = o.f
		default:
			c.warnf(positionOf(n), openapi.CodeInvalidValue, "unknown oauth2 flow %q", o.flow)
		}
		o.s.Flows = flows
	case "":
	default:
		c.warnf(positionOf(n), openapi.CodeInvalidValue, "unknown security scheme type %q", o.kind)
		o.s.Type = models.SecuritySchemeType(o.kind)
	}
	return o.s
}
