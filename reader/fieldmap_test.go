package reader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

type widget struct {
	name   string
	hits   []string
	ext    *models.Extensions
	counts int64
}

func widgetFields(policy UnknownFieldPolicy) *FieldMap[*widget] {
	return NewFieldMap[*widget]("widget", policy).
		Field("name", setString(func(o *widget, v string) { o.name = v })).
		Field("count", setInt(func(o *widget, v int64) { o.counts = v })).
		Pattern(func(k string) bool { return len(k) > 0 && k[0] == '/' }, func(o *widget, key string, _ parsenode.Node, _ *ParsingContext) {
			o.hits = append(o.hits, "slash:"+key)
		}).
		Pattern(func(k string) bool { return len(k) > 1 && k[1] == 'a' }, func(o *widget, key string, _ parsenode.Node, _ *ParsingContext) {
			o.hits = append(o.hits, "second-a:"+key)
		})
}

func parseWidget(t *testing.T, fields *FieldMap[*widget], text string) (*widget, openapi.Diagnostics) {
	t.Helper()
	n, err := parsenode.FromJSON([]byte(text), parsenode.Options{})
	require.NoError(t, err)
	c := newParsingContext(context.Background(), Settings{}, openapi.V3)
	p := loadObject(n, c, &widget{}, fields)
	return p, c.diags.All()
}

func TestFieldMap_DispatchOrder(t *testing.T) {
	p, diags := parseWidget(t, widgetFields(UnknownWarn), `{"name":"n","/a":1,"ca":2,"count":3}`)
	assert.Empty(t, diags)
	assert.Equal(t, "n", p.name)
	assert.Equal(t, int64(3), p.counts)
	// "/a" matches both patterns; the first registered wins.
	assert.Equal(t, []string{"slash:/a", "second-a:ca"}, p.hits)
}

func TestFieldMap_UnknownPolicies(t *testing.T) {
	const text = `{"name":"n","zzz":true,"x-ext":1}`

	_, diags := parseWidget(t, widgetFields(UnknownWarn), text)
	require.Len(t, diags, 2)
	assert.Equal(t, openapi.CodeUnknownField, diags[0].Code)
	assert.Equal(t, "/zzz", diags[0].Position.Pointer)
	assert.Equal(t, "/x-ext", diags[1].Position.Pointer)

	_, diags = parseWidget(t, widgetFields(UnknownIgnore), text)
	assert.Empty(t, diags)

	withExt := widgetFields(UnknownWarn).Extensions(func(o *widget) **models.Extensions { return &o.ext })
	assert.Equal(t, UnknownExtensionsElseWarn, withExt.Policy())
	p, diags := parseWidget(t, withExt, text)
	require.Len(t, diags, 1)
	assert.Equal(t, "/zzz", diags[0].Position.Pointer)
	assert.Equal(t, int64(1), p.ext.Value("x-ext"))
}

func TestFieldMap_TypeMismatchLeavesZero(t *testing.T) {
	p, diags := parseWidget(t, widgetFields(UnknownWarn), `{"name":["x"],"count":"many"}`)
	assert.Empty(t, p.name)
	assert.Zero(t, p.counts)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, openapi.CodeTypeMismatch, d.Code)
		assert.Equal(t, openapi.SeverityWarning, d.Severity)
	}
}

func TestFieldMap_StructuralRoot(t *testing.T) {
	p, diags := parseWidget(t, widgetFields(UnknownWarn), `["not","a","map"]`)
	assert.Equal(t, &widget{}, p)
	require.Len(t, diags, 1)
	assert.Equal(t, openapi.CodeStructural, diags[0].Code)
	assert.Equal(t, openapi.SeverityError, diags[0].Severity)
}

func TestModelTables_Policies(t *testing.T) {
	assert.Equal(t, UnknownExtensionsElseWarn, infoFields.Policy())
	assert.Equal(t, UnknownExtensionsElseWarn, schemaFieldsV3.Policy())
	assert.Equal(t, UnknownWarn, discriminatorFields.Policy())
	assert.True(t, schemaFieldsV3.Has("nullable"))
	assert.False(t, schemaFieldsV2.Has("nullable"))
	assert.True(t, schemaFieldsV2.Has("x-nullable"))
	assert.True(t, pathItemFields.Has("trace"))
	assert.False(t, v2PathItemFields.Has("trace"))
}

func TestParseReference(t *testing.T) {
	cases := []struct {
		raw  string
		v    openapi.SpecVersion
		want models.Reference
	}{
		{"#/components/schemas/Pet", openapi.V3, models.Reference{Type: models.ReferenceSchema, ID: "Pet"}},
		{"#/components/requestBodies/a~1b", openapi.V3, models.Reference{Type: models.ReferenceRequestBody, ID: "a/b"}},
		{"#/definitions/Pet", openapi.V2, models.Reference{Type: models.ReferenceSchema, ID: "Pet"}},
		{"#/parameters/limit", openapi.V2, models.Reference{Type: models.ReferenceParameter, ID: "limit"}},
		{"#/securityDefinitions/key", openapi.V2, models.Reference{Type: models.ReferenceSecurityScheme, ID: "key"}},
		{"Pet", openapi.V2, models.Reference{Type: models.ReferenceSchema, ID: "Pet"}},
		{"common.yaml", openapi.V3, models.Reference{Type: models.ReferenceSchema, ExternalResource: "common.yaml"}},
		{"common.yaml#/components/headers/H", openapi.V3, models.Reference{Type: models.ReferenceHeader, ID: "H", ExternalResource: "common.yaml"}},
		{"common.yaml#/some/where", openapi.V3, models.Reference{Type: models.ReferenceSchema, ExternalResource: "common.yaml", Fragment: "/some/where"}},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseReference(tc.raw, tc.v, models.ReferenceSchema)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}

	for _, bad := range []string{"", "#/paths/~1a", "#/components/schemas", "#/components/widgets/A", "#/components/tags/T"} {
		_, err := ParseReference(bad, openapi.V3, models.ReferenceSchema)
		assert.Error(t, err, bad)
	}
}

func TestResolve_VisitsEachSlotOnce(t *testing.T) {
	n, err := parsenode.FromJSON([]byte(`{"A":{"type":"string"},"B":{"$ref":"#/components/schemas/A"},"C":{"$ref":"#/components/schemas/B"}}`), parsenode.Options{})
	require.NoError(t, err)
	c := newParsingContext(context.Background(), Settings{}, openapi.V3)
	schemas := loadComponents(n, c, "schemas", schemaRef, loadSchema)
	require.Len(t, c.pending, 2)
	assert.Equal(t, 3, c.registry.Len())

	c.resolve()
	assert.Empty(t, c.diags.All())
	assert.Same(t, schemas.Value("A"), schemas.Value("B"))
	assert.Same(t, schemas.Value("A"), schemas.Value("C"))
}

func TestStyleDefaultsForV2Arrays(t *testing.T) {
	n, err := parsenode.FromJSON([]byte(`{"name":"ids","in":"path","type":"array","items":{"type":"integer"}}`), parsenode.Options{})
	require.NoError(t, err)
	c := newParsingContext(context.Background(), Settings{}, openapi.V2)
	p, body := loadParameterV2(n, c)
	require.Nil(t, body)
	assert.Equal(t, models.StyleSimple, p.Style)
	assert.False(t, p.EffectiveExplode())
	assert.Equal(t, "csv", p.CollectionFormat())
}
