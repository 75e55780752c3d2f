package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/reader"
)

const swaggerPets = `{
  "swagger": "2.0",
  "info": {"title": "Pets", "version": "1.0"},
  "host": "api.example.com",
  "basePath": "/v1",
  "schemes": ["https", "http"],
  "consumes": ["application/json"],
  "paths": {
    "/pets": {
      "x-summary": "Pets",
      "post": {
        "tags": ["pets"],
        "parameters": [
          {"name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Pet"}},
          {"name": "tags", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
          {"$ref": "#/parameters/Limit"}
        ],
        "responses": {
          "200": {"description": "ok", "schema": {"$ref": "#/definitions/Pet"}, "headers": {"X-Rate": {"type": "integer", "description": "left"}}},
          "default": {"$ref": "#/responses/Error"}
        },
        "security": [{"oauth": ["read"]}]
      }
    },
    "/pets/{id}/photo": {
      "put": {
        "consumes": ["multipart/form-data"],
        "parameters": [
          {"name": "id", "in": "path", "required": true, "type": "integer"},
          {"name": "file", "in": "formData", "type": "file", "required": true},
          {"name": "note", "in": "formData", "type": "string", "description": "caption"}
        ],
        "responses": {"204": {"description": "stored"}}
      }
    }
  },
  "definitions": {
    "Pet": {"type": "object", "discriminator": "kind", "x-nullable": true, "properties": {"kind": {"type": "string"}}}
  },
  "parameters": {
    "Limit": {"name": "limit", "in": "query", "type": "integer", "maximum": 100},
    "Body": {"name": "payload", "in": "body", "schema": {"type": "string"}}
  },
  "responses": {
    "Error": {"description": "error", "schema": {"type": "string"}}
  },
  "securityDefinitions": {
    "oauth": {"type": "oauth2", "flow": "accessCode", "authorizationUrl": "https://a", "tokenUrl": "https://t", "scopes": {"read": "read pets"}},
    "basic": {"type": "basic"}
  }
}`

func TestReadV2_Document(t *testing.T) {
	res := read(t, swaggerPets, reader.Settings{})
	require.Empty(t, res.Diagnostics)
	assert.Equal(t, openapi.V2, res.Version)
	doc := res.Document

	require.Len(t, doc.Servers, 2)
	assert.Equal(t, "https://api.example.com/v1", doc.Servers[0].URL)
	assert.Equal(t, "http://api.example.com/v1", doc.Servers[1].URL)
	assert.Equal(t, "Pets", doc.Paths.Items.Value("/pets").Summary)

	comps := doc.Components
	pet := comps.Schemas.Value("Pet")
	assert.Equal(t, "kind", models.GetDiscriminator(pet).PropertyName)
	assert.Equal(t, true, *models.GetNullable(pet))

	post := getOp(doc, "/pets", models.OperationPost)
	require.NotNil(t, post.RequestBody)
	assert.True(t, post.RequestBody.Required)
	assert.Equal(t, "pet", post.RequestBody.BodyName())
	assert.Same(t, pet, post.RequestBody.Content.Value("application/json").Schema)

	require.Len(t, post.Parameters, 2)
	tags := post.Parameters[0]
	assert.Equal(t, models.InQuery, tags.In)
	assert.Equal(t, models.StyleForm, tags.Style)
	assert.True(t, tags.EffectiveExplode())
	assert.Equal(t, "array", tags.Schema.GetType())
	assert.Equal(t, "string", tags.Schema.GetItems().GetType())
	assert.Same(t, comps.Parameters.Value("Limit"), post.Parameters[1])

	ok := post.Responses.Items.Value("200")
	assert.Same(t, pet, ok.Content.Value("application/json").Schema)
	assert.Equal(t, "integer", ok.Headers.Value("X-Rate").Schema.GetType())
	assert.Same(t, comps.Responses.Value("Error"), post.Responses.Items.Value("default"))

	oauth := comps.SecuritySchemes.Value("oauth")
	assert.Equal(t, models.SecurityTypeOAuth2, oauth.Type)
	require.NotNil(t, oauth.Flows.AuthorizationCode)
	assert.Equal(t, "read pets", oauth.Flows.AuthorizationCode.Scopes.Value("read"))
	assert.Same(t, oauth, post.Security[0].Entries[0].Scheme)
	basic := comps.SecuritySchemes.Value("basic")
	assert.Equal(t, models.SecurityTypeHTTP, basic.Type)
	assert.Equal(t, "basic", basic.Scheme)

	// Body parameters in the parameters section become request bodies.
	assert.False(t, comps.Parameters.Has("Body"))
	assert.Equal(t, "payload", comps.RequestBodies.Value("Body").BodyName())
}

func TestReadV2_FormParameters(t *testing.T) {
	doc := read(t, swaggerPets, reader.Settings{}).Document
	put := getOp(doc, "/pets/{id}/photo", models.OperationPut)

	require.Len(t, put.Parameters, 1)
	assert.Equal(t, "id", put.Parameters[0].Name)

	require.NotNil(t, put.RequestBody)
	assert.True(t, put.RequestBody.IsForm())
	form := put.RequestBody.Content.Value(models.ContentTypeMultipartForm).Schema
	require.NotNil(t, form)
	assert.Equal(t, "binary", form.GetProperty("file").GetFormat())
	assert.Equal(t, "caption", form.GetProperty("note").GetDescription())
	assert.Equal(t, []string{"file"}, form.GetRequired())
}

func TestReadV2_WritesBackAsV2(t *testing.T) {
	out := render(t, read(t, swaggerPets, reader.Settings{}).Document, openapi.V2)
	assert.Contains(t, out, `"host":"api.example.com"`)
	assert.Contains(t, out, `"schemes":["https","http"]`)
	assert.Contains(t, out, `{"name":"pet","in":"body","required":true,"schema":{"$ref":"#/definitions/Pet"}}`)
	assert.Contains(t, out, `"collectionFormat":"multi"`)
	assert.Contains(t, out, `{"$ref":"#/parameters/Limit"}`)
	assert.Contains(t, out, `"in":"formData"`)
	assert.Contains(t, out, `"type":"file"`)
	assert.Contains(t, out, `"discriminator":"kind"`)
	assert.Contains(t, out, `"x-nullable":true`)
	assert.Contains(t, out, `"flow":"accessCode"`)
}

func TestReadV2_ConvertsToV3(t *testing.T) {
	out := render(t, read(t, swaggerPets, reader.Settings{}).Document, openapi.V3)
	assert.Contains(t, out, `"servers":[{"url":"https://api.example.com/v1"},{"url":"http://api.example.com/v1"}]`)
	assert.Contains(t, out, `"requestBody":{"content":{"application/json":{"schema":{"$ref":"#/components/schemas/Pet"}}},"required":true,"x-bodyName":"pet"}`)
	assert.Contains(t, out, `"discriminator":{"propertyName":"kind"}`)
	assert.Contains(t, out, `"nullable":true`)
	assert.Contains(t, out, `"authorizationCode":{"authorizationUrl":"https://a","tokenUrl":"https://t","scopes":{"read":"read pets"}}`)
}

func TestReadV2_SchemaRejectsV3Keywords(t *testing.T) {
	res := read(t, `{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{},
		"definitions":{"A":{"oneOf":[{"type":"string"}],"nullable":true}}}`, reader.Settings{})
	assert.Len(t, res.Diagnostics.WithCode(openapi.CodeUnknownField), 2)
}

func TestReadV2_ServersWithoutHost(t *testing.T) {
	doc := read(t, `{"swagger":"2.0","info":{"title":"t","version":"1"},"basePath":"/api","paths":{}}`, reader.Settings{}).Document
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "/api", doc.Servers[0].URL)

	doc = read(t, `{"swagger":"2.0","info":{"title":"t","version":"1"},"host":"h.io","paths":{}}`, reader.Settings{}).Document
	assert.Equal(t, "//h.io", doc.Servers[0].URL)
}
