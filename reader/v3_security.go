package reader

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

var (
	securitySchemeFields *FieldMap[*models.SecurityScheme]
	oauthFlowsFields     *FieldMap[*models.OAuthFlows]
	oauthFlowFields      *FieldMap[*models.OAuthFlow]
)

func init() {
	securitySchemeFields = NewFieldMap[*models.SecurityScheme]("securityScheme", UnknownWarn).
		Field("type", func(o *models.SecurityScheme, n parsenode.Node, c *ParsingContext) {
			s, ok := c.str(n)
			if !ok {
				return
			}
			o.Type = models.SecuritySchemeType(s)
			switch o.Type {
			case models.SecurityTypeAPIKey, models.SecurityTypeHTTP, models.SecurityTypeOAuth2, models.SecurityTypeOpenIDConnect:
			default:
				c.warnf(n.Position(), openapi.CodeInvalidValue, "unknown security scheme type %q", s)
			}
		}).
		Field("description", setString(func(o *models.SecurityScheme, v string) { o.Description = v })).
		Field("name", setString(func(o *models.SecurityScheme, v string) { o.Name = v })).
		Field("in", setLocation(func(o *models.SecurityScheme, v models.ParameterLocation) { o.In = v })).
		Field("scheme", setString(func(o *models.SecurityScheme, v string) { o.Scheme = v })).
		Field("bearerFormat", setString(func(o *models.SecurityScheme, v string) { o.BearerFormat = v })).
		Field("flows", func(o *models.SecurityScheme, n parsenode.Node, c *ParsingContext) {
			o.Flows = loadObject(n, c, &models.OAuthFlows{}, oauthFlowsFields)
		}).
		Field("openIdConnectUrl", setString(func(o *models.SecurityScheme, v string) { o.OpenIDConnectURL = v })).
		Extensions(func(o *models.SecurityScheme) **models.Extensions { return &o.Extensions })

	oauthFlowsFields = NewFieldMap[*models.OAuthFlows]("oauthFlows", UnknownWarn).
		Field("implicit", func(o *models.OAuthFlows, n parsenode.Node, c *ParsingContext) { o.Implicit = loadOAuthFlow(n, c) }).
		Field("password", func(o *models.OAuthFlows, n parsenode.Node, c *ParsingContext) { o.Password = loadOAuthFlow(n, c) }).
		Field("clientCredentials", func(o *models.OAuthFlows, n parsenode.Node, c *ParsingContext) {
			o.ClientCredentials = loadOAuthFlow(n, c)
		}).
		Field("authorizationCode", func(o *models.OAuthFlows, n parsenode.Node, c *ParsingContext) {
			o.AuthorizationCode = loadOAuthFlow(n, c)
		}).
		Extensions(func(o *models.OAuthFlows) **models.Extensions { return &o.Extensions })

	oauthFlowFields = NewFieldMap[*models.OAuthFlow]("oauthFlow", UnknownWarn).
		Field("authorizationUrl", setString(func(o *models.OAuthFlow, v string) { o.AuthorizationURL = v })).
		Field("tokenUrl", setString(func(o *models.OAuthFlow, v string) { o.TokenURL = v })).
		Field("refreshUrl", setString(func(o *models.OAuthFlow, v string) { o.RefreshURL = v })).
		Field("scopes", func(o *models.OAuthFlow, n parsenode.Node, c *ParsingContext) { o.Scopes = c.stringMap(n, "scopes") }).
		Extensions(func(o *models.OAuthFlow) **models.Extensions { return &o.Extensions })
}

func loadSecurityScheme(n parsenode.Node, c *ParsingContext) *models.SecurityScheme {
	return loadObject(n, c, &models.SecurityScheme{}, securitySchemeFields)
}

func loadOAuthFlow(n parsenode.Node, c *ParsingContext) *models.OAuthFlow {
	return loadObject(n, c, &models.OAuthFlow{}, oauthFlowFields)
}

// loadSecurityRequirement reads one requirement object. Keys name security
// schemes; each entry holds a placeholder until the scheme is resolved.
func loadSecurityRequirement(n parsenode.Node, c *ParsingContext) *models.SecurityRequirement {
	req := &models.SecurityRequirement{}
	m, ok := c.asMap(n, "securityRequirement")
	if !ok {
		return req
	}
	for _, p := range m.Properties() {
		entry := &models.SecurityRequirementEntry{Scopes: []string{}}
		if l := c.strings(p.Value, "scopes"); l != nil {
			entry.Scopes = l
		}
		ph := &models.SecurityScheme{Reference: &models.Reference{Type: models.ReferenceSecurityScheme, ID: p.Key}}
		entry.Scheme = ph
		req.Entries = append(req.Entries, entry)
		c.addNamedReference(models.ReferenceSecurityScheme, p.Key, p.KeyPosition, false, ph,
			func(v any) bool {
				s, ok := v.(*models.SecurityScheme)
				if ok {
					entry.Scheme = s
				}
				return ok
			},
			func() { ph.UnresolvedReference = true })
	}
	return req
}

// loadSecurity reads a list of requirements. An empty list is kept as a
// non-nil slice.
func loadSecurity(n parsenode.Node, c *ParsingContext) []*models.SecurityRequirement {
	return loadList(n, c, "security", loadSecurityRequirement)
}

func setLocation[T any](set func(o T, v models.ParameterLocation)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		s, ok := c.str(n)
		if !ok {
			return
		}
		l := models.ParameterLocation(s)
		if !l.Valid() && !(c.version == openapi.V2 && (s == inBody || s == inFormData)) {
			c.warnf(n.Position(), openapi.CodeInvalidValue, "unknown location %q", s)
		}
		set(o, l)
	}
}

func setStyle[T any](set func(o T, v models.ParameterStyle)) FieldAction[T] {
	return func(o T, n parsenode.Node, c *ParsingContext) {
		s, ok := c.str(n)
		if !ok {
			return
		}
		st := models.ParameterStyle(s)
		if !st.Valid() {
			c.warnf(n.Position(), openapi.CodeInvalidValue, "unknown style %q", s)
		}
		set(o, st)
	}
}
