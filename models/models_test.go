package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

func render(t *testing.T, e models.Element, v openapi.SpecVersion) string {
	t.Helper()
	b, err := models.SerializeJSON(e, v, writer.Settings{})
	require.NoError(t, err)
	return string(b)
}

func ptr[T any](v T) *T { return &v }

func TestEncoding_WritesOnlyInV3(t *testing.T) {
	headers := ordered.New[*models.Header](1)
	headers.Set("X-Rate", &models.Header{Description: "rate", Schema: jsonschema.New(&jsonschema.TypeKeyword{Type: "integer"})})
	ext := ordered.New[any](1)
	ext.Set("x-trace", true)
	enc := &models.Encoding{
		ContentType:   "image/png",
		Headers:       headers,
		Style:         models.StyleForm,
		Explode:       ptr(false),
		AllowReserved: true,
		Extensions:    ext,
	}
	assert.Equal(t,
		`{"contentType":"image/png","headers":{"X-Rate":{"description":"rate","schema":{"type":"integer"}}},"style":"form","explode":false,"allowReserved":true,"x-trace":true}`,
		render(t, enc, openapi.V3))
	assert.Empty(t, render(t, enc, openapi.V2))
}

func TestExplode_OmittedWhenDefaultForStyle(t *testing.T) {
	cases := []struct {
		name string
		e    models.Element
		want string
	}{
		{"encoding form default true", &models.Encoding{Explode: ptr(true)}, `{}`},
		{"encoding space delimited false", &models.Encoding{Style: models.StyleSpaceDelimited, Explode: ptr(false)}, `{"style":"spaceDelimited"}`},
		{"encoding form false", &models.Encoding{Style: models.StyleForm, Explode: ptr(false)}, `{"style":"form","explode":false}`},
		{"path parameter false", &models.Parameter{Name: "id", In: models.InPath, Explode: ptr(false)}, `{"name":"id","in":"path"}`},
		{"query parameter true", &models.Parameter{Name: "q", In: models.InQuery, Explode: ptr(true)}, `{"name":"q","in":"query"}`},
		{"header true", &models.Header{Explode: ptr(true)}, `{"explode":true}`},
		{"header false", &models.Header{Explode: ptr(false)}, `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, tc.e, openapi.V3))
		})
	}
}

func TestParameter_CollectionFormat(t *testing.T) {
	cases := []struct {
		name    string
		in      models.ParameterLocation
		style   models.ParameterStyle
		explode *bool
		want    string
	}{
		{"query default explodes", models.InQuery, "", nil, "multi"},
		{"form without explode", models.InQuery, models.StyleForm, ptr(false), "csv"},
		{"path simple", models.InPath, "", nil, "csv"},
		{"space delimited", models.InQuery, models.StyleSpaceDelimited, nil, "ssv"},
		{"pipe delimited", models.InQuery, models.StylePipeDelimited, nil, "pipes"},
		{"deep object", models.InQuery, models.StyleDeepObject, nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &models.Parameter{In: tc.in, Style: tc.style, Explode: tc.explode}
			assert.Equal(t, tc.want, p.CollectionFormat())
		})
	}
}

func TestParameter_V2FlattensSchema(t *testing.T) {
	p := &models.Parameter{
		Name:     "ids",
		In:       models.InQuery,
		Required: true,
		Style:    models.StyleForm,
		Explode:  ptr(false),
		Schema: jsonschema.New(
			&jsonschema.TypeKeyword{Type: "array"},
			&jsonschema.ItemsKeyword{Schema: jsonschema.New(&jsonschema.TypeKeyword{Type: "integer"}, &jsonschema.FormatKeyword{Value: "int64"})},
			&jsonschema.DescriptionKeyword{Value: "dropped in flat form"},
		),
		Example: "1,2",
	}
	assert.Equal(t,
		`{"name":"ids","in":"query","required":true,"type":"array","items":{"type":"integer","format":"int64"},"collectionFormat":"csv","x-example":"1,2"}`,
		render(t, p, openapi.V2))
	assert.Equal(t,
		`{"name":"ids","in":"query","required":true,"style":"form","explode":false,"schema":{"type":"array","items":{"type":"integer","format":"int64"},"description":"dropped in flat form"},"example":"1,2"}`,
		render(t, p, openapi.V3))
}

func TestParameter_CookieHasNoV2Form(t *testing.T) {
	p := &models.Parameter{Name: "session", In: models.InCookie}
	assert.Empty(t, render(t, p, openapi.V2))

	op := &models.Operation{Parameters: []*models.Parameter{p}}
	assert.Equal(t, `{"responses":{}}`, render(t, op, openapi.V2))
}

func TestSchema_DialectDivergence(t *testing.T) {
	mapping := ordered.New[string](1)
	mapping.Set("dog", "#/components/schemas/Dog")
	s := jsonschema.New(
		&jsonschema.TypeKeyword{Type: "object"},
		&models.NullableKeyword{Value: true},
		&models.DiscriminatorKeyword{Discriminator: &models.Discriminator{PropertyName: "kind", Mapping: mapping}},
		&jsonschema.OneOfKeyword{Schemas: []*jsonschema.Schema{models.NewSchemaReference(&models.Reference{Type: models.ReferenceSchema, ID: "Dog"})}},
		&jsonschema.WriteOnlyKeyword{Value: true},
		&models.SummaryKeyword{Value: "pet"},
	)
	models.SetExtension(s, "x-order", int64(1))

	assert.Equal(t,
		`{"type":"object","nullable":true,"discriminator":{"propertyName":"kind","mapping":{"dog":"#/components/schemas/Dog"}},"oneOf":[{"$ref":"#/components/schemas/Dog"}],"writeOnly":true,"summary":"pet","x-order":1}`,
		render(t, models.SchemaElement{Schema: s}, openapi.V3))
	assert.Equal(t,
		`{"type":"object","x-nullable":true,"discriminator":"kind","x-summary":"pet","x-order":1}`,
		render(t, models.SchemaElement{Schema: s}, openapi.V2))
}

func TestSchema_KeywordGetters(t *testing.T) {
	s := jsonschema.New()
	assert.Nil(t, models.GetDiscriminator(s))
	assert.Nil(t, models.GetNullable(s))
	assert.Empty(t, models.GetSummary(s))
	assert.Nil(t, models.GetAdditionalPropertiesAllowed(s))
	assert.Nil(t, models.GetExclusiveMinimum(s))
	assert.Nil(t, models.GetExclusiveMaximum(s))
	assert.Nil(t, models.GetExtensions(s))
	assert.Nil(t, models.GetReference(s))
	assert.Nil(t, models.ExtensionsOf(s))

	s.SetKeyword(&models.AdditionalPropertiesAllowedKeyword{Value: false})
	s.SetKeyword(&models.ExclusiveMaximumKeyword{Value: true})
	require.NotNil(t, models.GetAdditionalPropertiesAllowed(s))
	assert.False(t, *models.GetAdditionalPropertiesAllowed(s))
	assert.True(t, *models.GetExclusiveMaximum(s))

	// The schema form of additionalProperties replaces the boolean form.
	s.SetKeyword(&jsonschema.AdditionalPropertiesKeyword{Schema: jsonschema.New()})
	assert.Nil(t, models.GetAdditionalPropertiesAllowed(s))
}

func TestReference_Rendering(t *testing.T) {
	r := &models.Reference{Type: models.ReferenceSchema, ID: "a/b"}
	assert.Equal(t, "#/components/schemas/a~1b", r.ReferenceV3())
	assert.Equal(t, "#/definitions/a~1b", r.ReferenceV2())

	body := &models.Reference{Type: models.ReferenceRequestBody, ID: "Pet"}
	assert.Equal(t, "#/components/requestBodies/Pet", body.ReferenceV3())
	assert.Equal(t, "#/parameters/Pet", body.ReferenceV2())

	hdr := &models.Reference{Type: models.ReferenceHeader, ID: "Rate"}
	assert.Empty(t, hdr.ReferenceV2())

	ext := &models.Reference{Type: models.ReferenceSchema, ID: "Pet", ExternalResource: "common.yaml"}
	assert.True(t, ext.IsExternal())
	assert.Equal(t, "common.yaml#/components/schemas/Pet", ext.ReferenceV3())

	raw := &models.Reference{ExternalResource: "defs.json", Fragment: "/Pet"}
	assert.Equal(t, "defs.json#/Pet", raw.ReferenceV3())

	kind, ok := models.ParseReferenceType("securitySchemes")
	assert.True(t, ok)
	assert.Equal(t, models.ReferenceSecurityScheme, kind)
}

type customExt struct{ n int }

func (c customExt) WriteExtension(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	w.WritePropertyName("n")
	w.WriteValue(c.n)
	w.WritePropertyName("dialect")
	w.WriteValue(v.String())
	w.WriteEndObject()
}

func TestExtensions_WrittenInBothDialects(t *testing.T) {
	tree := ordered.New[any](1)
	tree.Set("nested", []any{"a", int64(1)})
	ext := ordered.New[any](2)
	ext.Set("x-tree", tree)
	ext.Set("x-typed", customExt{n: 7})
	c := &models.Contact{Name: "Ada", Extensions: ext}

	assert.Equal(t, `{"name":"Ada","x-tree":{"nested":["a",1]},"x-typed":{"n":7,"dialect":"3.0"}}`, render(t, c, openapi.V3))
	assert.Equal(t, `{"name":"Ada","x-tree":{"nested":["a",1]},"x-typed":{"n":7,"dialect":"2.0"}}`, render(t, c, openapi.V2))
	assert.Equal(t, tree, models.Extension(c, "x-tree"))
	assert.Nil(t, models.Extension(c, "x-missing"))
}

func TestSecurityScheme_V2(t *testing.T) {
	bearer := &models.SecurityScheme{Type: models.SecurityTypeHTTP, Scheme: "bearer"}
	assert.Empty(t, render(t, bearer, openapi.V2))

	basic := &models.SecurityScheme{Type: models.SecurityTypeHTTP, Scheme: "basic"}
	assert.Equal(t, `{"type":"basic"}`, render(t, basic, openapi.V2))

	scopes := ordered.New[string](1)
	scopes.Set("read", "read things")
	oauth := &models.SecurityScheme{
		Type: models.SecurityTypeOAuth2,
		Flows: &models.OAuthFlows{
			AuthorizationCode: &models.OAuthFlow{AuthorizationURL: "https://a", TokenURL: "https://t", Scopes: scopes},
		},
	}
	assert.Equal(t,
		`{"type":"oauth2","flow":"accessCode","authorizationUrl":"https://a","tokenUrl":"https://t","scopes":{"read":"read things"}}`,
		render(t, oauth, openapi.V2))
	assert.Equal(t,
		`{"type":"oauth2","flows":{"authorizationCode":{"authorizationUrl":"https://a","tokenUrl":"https://t","scopes":{"read":"read things"}}}}`,
		render(t, oauth, openapi.V3))
}

func TestDocument_V2Conversion(t *testing.T) {
	pet := jsonschema.New(&jsonschema.TypeKeyword{Type: "object"})
	pet.SetKeyword(&models.ReferenceKeyword{Reference: &models.Reference{Type: models.ReferenceSchema, ID: "Pet"}})

	schemas := ordered.New[*jsonschema.Schema](1)
	schemas.Set("Pet", pet)

	bearer := &models.SecurityScheme{Type: models.SecurityTypeHTTP, Scheme: "bearer", Reference: &models.Reference{Type: models.ReferenceSecurityScheme, ID: "jwt"}}
	schemes := ordered.New[*models.SecurityScheme](1)
	schemes.Set("jwt", bearer)

	jsonBody := ordered.New[*models.MediaType](1)
	jsonBody.Set("application/json", &models.MediaType{Schema: pet})
	body := &models.RequestBody{Content: jsonBody, Required: true, Extensions: ordered.New[any](1)}
	body.Extensions.Set(models.BodyNameExtension, "pet")

	respContent := ordered.New[*models.MediaType](1)
	respContent.Set("application/xml", &models.MediaType{Schema: pet, Example: "<pet/>"})
	responses := ordered.New[*models.Response](1)
	responses.Set("200", &models.Response{Description: "ok", Content: respContent})

	item := &models.PathItem{Summary: "pets"}
	item.AddOperation(models.OperationPost, &models.Operation{
		OperationID: "addPet",
		RequestBody: body,
		Responses:   &models.Responses{Items: responses},
		Security:    []*models.SecurityRequirement{{Entries: []*models.SecurityRequirementEntry{{Scheme: bearer}}}},
	})
	item.AddOperation(models.OperationTrace, &models.Operation{Responses: &models.Responses{}})
	paths := ordered.New[*models.PathItem](1)
	paths.Set("/pets", item)

	doc := &models.Document{
		Info:       &models.Info{Title: "Pets", Version: "1"},
		Servers:    []*models.Server{{URL: "https://api.example.com/v1"}, {URL: "http://api.example.com/v1"}},
		Paths:      &models.Paths{Items: paths},
		Components: &models.Components{Schemas: schemas, SecuritySchemes: schemes},
	}

	want := `{"swagger":"2.0","info":{"title":"Pets","version":"1"},"host":"api.example.com","basePath":"/v1","schemes":["https","http"],` +
		`"paths":{"/pets":{"post":{"operationId":"addPet","consumes":["application/json"],"produces":["application/xml"],` +
		`"parameters":[{"name":"pet","in":"body","required":true,"schema":{"$ref":"#/definitions/Pet"}}],` +
		`"responses":{"200":{"description":"ok","schema":{"$ref":"#/definitions/Pet"},"examples":{"application/xml":"<pet/>"}}},"security":[{}]},"x-summary":"pets"}},` +
		`"definitions":{"Pet":{"type":"object"}}}`
	assert.Equal(t, want, render(t, doc, openapi.V2))

	v3 := render(t, doc, openapi.V3)
	assert.Contains(t, v3, `"trace":{"responses":{}}`)
	assert.Contains(t, v3, `"components":{"schemas":{"Pet":{"type":"object"}},"securitySchemes":{"jwt":{"type":"http","scheme":"bearer"}}}`)
	assert.Contains(t, v3, `"security":[{"jwt":[]}]`)
}

func TestComponents_AliasWritesReference(t *testing.T) {
	target := &models.Response{Description: "ok", Reference: &models.Reference{Type: models.ReferenceResponse, ID: "Ok"}}
	alias := &models.Response{Reference: &models.Reference{Type: models.ReferenceResponse, ID: "Ok"}}
	rs := ordered.New[*models.Response](2)
	rs.Set("Ok", target)
	rs.Set("Fine", alias)
	c := &models.Components{Responses: rs}
	assert.Equal(t,
		`{"responses":{"Ok":{"description":"ok"},"Fine":{"$ref":"#/components/responses/Ok"}}}`,
		render(t, c, openapi.V3))
}

func TestRequestBody_FormParametersV2(t *testing.T) {
	props := ordered.New[*jsonschema.Schema](2)
	props.Set("name", jsonschema.New(&jsonschema.TypeKeyword{Type: "string"}, &jsonschema.DescriptionKeyword{Value: "pet name"}))
	props.Set("photo", jsonschema.New(&jsonschema.TypeKeyword{Type: "string"}, &jsonschema.FormatKeyword{Value: "binary"}))
	form := jsonschema.New(
		&jsonschema.TypeKeyword{Type: "object"},
		&jsonschema.PropertiesKeyword{Properties: props},
		&jsonschema.RequiredKeyword{Properties: []string{"name"}},
	)
	content := ordered.New[*models.MediaType](1)
	content.Set(models.ContentTypeMultipartForm, &models.MediaType{Schema: form})
	op := &models.Operation{RequestBody: &models.RequestBody{Content: content}}

	assert.Equal(t,
		`{"consumes":["multipart/form-data"],"parameters":[`+
			`{"name":"name","in":"formData","description":"pet name","required":true,"type":"string"},`+
			`{"name":"photo","in":"formData","type":"file"}],"responses":{}}`,
		render(t, op, openapi.V2))
}

func TestSerializeYAML(t *testing.T) {
	b, err := models.SerializeYAML(&models.License{Name: "MIT", URL: "https://mit"}, openapi.V3)
	require.NoError(t, err)
	assert.Equal(t, "name: MIT\nurl: https://mit\n", string(b))
}
