package reader

import (
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

var (
	documentFields   *FieldMap[*models.Document]
	componentsFields *FieldMap[*models.Components]
)

func init() {
	documentFields = NewFieldMap[*models.Document]("document", UnknownWarn).
		Field("openapi", ignore[*models.Document]).
		Field("info", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Info = loadInfo(n, c) }).
		Field("servers", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Servers = loadServers(n, c) }).
		Field("paths", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Paths = loadPaths(n, c) }).
		Field("components", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Components = loadComponentsV3(n, c) }).
		Field("security", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.Security = loadSecurity(n, c) }).
		Field("tags", func(o *models.Document, n parsenode.Node, c *ParsingContext) {
			o.Tags = loadList(n, c, "tags", loadTag)
		}).
		Field("externalDocs", func(o *models.Document, n parsenode.Node, c *ParsingContext) { o.ExternalDocs = loadExternalDocs(n, c) }).
		Extensions(func(o *models.Document) **models.Extensions { return &o.Extensions })

	componentsFields = NewFieldMap[*models.Components]("components", UnknownWarn).
		Field("schemas", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.Schemas = loadComponents(n, c, "schemas", schemaRef, loadSchema)
		}).
		Field("responses", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.Responses = loadComponents(n, c, "responses", responseRef, loadResponse)
		}).
		Field("parameters", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.Parameters = loadComponents(n, c, "parameters", parameterRef, loadParameter)
		}).
		Field("examples", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.Examples = loadComponents(n, c, "examples", exampleRef, loadExample)
		}).
		Field("requestBodies", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.RequestBodies = loadComponents(n, c, "requestBodies", requestBodyRef, loadRequestBody)
		}).
		Field("headers", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.Headers = loadComponents(n, c, "headers", headerRef, loadHeader)
		}).
		Field("securitySchemes", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.SecuritySchemes = loadComponents(n, c, "securitySchemes", securitySchemeRef, loadSecurityScheme)
		}).
		Field("links", func(o *models.Components, n parsenode.Node, c *ParsingContext) { o.Links = rawMap(n, c, "links") }).
		Field("callbacks", func(o *models.Components, n parsenode.Node, c *ParsingContext) {
			o.Callbacks = rawMap(n, c, "callbacks")
		}).
		Extensions(func(o *models.Components) **models.Extensions { return &o.Extensions })
}

func loadComponentsV3(n parsenode.Node, c *ParsingContext) *models.Components {
	return loadObject(n, c, &models.Components{}, componentsFields)
}

// loadDocumentV3 reads the root map one top-level field at a time, checking
// for cancellation between fields.
func loadDocumentV3(m *parsenode.MapNode, c *ParsingContext) (*models.Document, error) {
	doc := &models.Document{}
	for _, p := range m.Properties() {
		if err := c.canceled(); err != nil {
			return nil, err
		}
		documentFields.dispatch(doc, p, c)
	}
	return doc, nil
}
