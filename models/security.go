package models

import (
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// SecuritySchemeType is the kind of a security scheme.
type SecuritySchemeType string

const (
	SecurityTypeAPIKey        SecuritySchemeType = "apiKey"
	SecurityTypeHTTP          SecuritySchemeType = "http"
	SecurityTypeOAuth2        SecuritySchemeType = "oauth2"
	SecurityTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// SecurityScheme defines a security scheme operations can require. HTTP
// schemes other than basic and OpenID Connect have no Swagger 2.0 form.
type SecurityScheme struct {
	Type             SecuritySchemeType
	Description      string
	Name             string
	In               ParameterLocation
	Scheme           string
	BearerFormat     string
	Flows            *OAuthFlows
	OpenIDConnectURL string
	Extensions       *Extensions

	Reference           *Reference
	UnresolvedReference bool
}

func (s *SecurityScheme) GetExtensions() *Extensions { return s.Extensions }
func (s *SecurityScheme) GetReference() *Reference   { return s.Reference }
func (s *SecurityScheme) IsUnresolved() bool         { return s.UnresolvedReference }

func (s *SecurityScheme) WriteAsV3(w writer.Writer) {
	if s.Reference != nil {
		writeReference(w, s.Reference.ReferenceV3())
		return
	}
	s.WriteAsV3WithoutReference(w)
}

func (s *SecurityScheme) WriteAsV3WithoutReference(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "type", string(s.Type))
	writer.WriteProperty(w, "description", s.Description)
	switch s.Type {
	case SecurityTypeAPIKey:
		writer.WriteRequiredProperty(w, "name", s.Name)
		writer.WriteRequiredProperty(w, "in", string(s.In))
	case SecurityTypeHTTP:
		writer.WriteRequiredProperty(w, "scheme", s.Scheme)
		writer.WriteProperty(w, "bearerFormat", s.BearerFormat)
	case SecurityTypeOAuth2:
		writer.WriteRequiredObject(w, "flows", s.Flows, (*OAuthFlows).WriteAsV3)
	case SecurityTypeOpenIDConnect:
		writer.WriteRequiredProperty(w, "openIdConnectUrl", s.OpenIDConnectURL)
	}
	writeExtensions(w, s.Extensions, openapi.V3)
	w.WriteEndObject()
}

// HasV2Form reports whether Swagger 2.0 can express s. Placeholders whose
// type is unknown are assumed expressible.
func (s *SecurityScheme) HasV2Form() bool {
	switch s.Type {
	case SecurityTypeHTTP:
		return strings.EqualFold(s.Scheme, "basic")
	case SecurityTypeOpenIDConnect:
		return false
	}
	return true
}

func (s *SecurityScheme) WriteAsV2(w writer.Writer) {
	if s.Reference != nil {
		writeReference(w, s.Reference.ReferenceV2())
		return
	}
	s.WriteAsV2WithoutReference(w)
}

func (s *SecurityScheme) WriteAsV2WithoutReference(w writer.Writer) {
	if !s.HasV2Form() {
		return
	}
	w.WriteStartObject()
	switch s.Type {
	case SecurityTypeHTTP:
		writer.WriteRequiredProperty(w, "type", "basic")
		writer.WriteProperty(w, "description", s.Description)
	case SecurityTypeAPIKey:
		writer.WriteRequiredProperty(w, "type", string(s.Type))
		writer.WriteProperty(w, "description", s.Description)
		writer.WriteRequiredProperty(w, "name", s.Name)
		writer.WriteRequiredProperty(w, "in", string(s.In))
	case SecurityTypeOAuth2:
		writer.WriteRequiredProperty(w, "type", string(s.Type))
		writer.WriteProperty(w, "description", s.Description)
		s.Flows.writeV2(w)
	default:
		writer.WriteProperty(w, "type", string(s.Type))
		writer.WriteProperty(w, "description", s.Description)
	}
	writeExtensions(w, s.Extensions, openapi.V2)
	w.WriteEndObject()
}

// OAuthFlows groups the supported OAuth 2.0 flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extensions        *Extensions
}

func (f *OAuthFlows) GetExtensions() *Extensions { return f.Extensions }

func (f *OAuthFlows) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteOptionalObject(w, "implicit", f.Implicit, (*OAuthFlow).WriteAsV3)
	writer.WriteOptionalObject(w, "password", f.Password, (*OAuthFlow).WriteAsV3)
	writer.WriteOptionalObject(w, "clientCredentials", f.ClientCredentials, (*OAuthFlow).WriteAsV3)
	writer.WriteOptionalObject(w, "authorizationCode", f.AuthorizationCode, (*OAuthFlow).WriteAsV3)
	writeExtensions(w, f.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 writes nothing; the security scheme writes the single flow
// Swagger 2.0 allows.
func (f *OAuthFlows) WriteAsV2(writer.Writer) {}

// writeV2 writes the first configured flow as flow, authorizationUrl,
// tokenUrl and scopes into the open security scheme object.
func (f *OAuthFlows) writeV2(w writer.Writer) {
	if f == nil {
		return
	}
	var (
		name string
		flow *OAuthFlow
	)
	switch {
	case f.Implicit != nil:
		name, flow = "implicit", f.Implicit
	case f.Password != nil:
		name, flow = "password", f.Password
	case f.ClientCredentials != nil:
		name, flow = "application", f.ClientCredentials
	case f.AuthorizationCode != nil:
		name, flow = "accessCode", f.AuthorizationCode
	default:
		return
	}
	writer.WriteRequiredProperty(w, "flow", name)
	if name == "implicit" || name == "accessCode" {
		writer.WriteRequiredProperty(w, "authorizationUrl", flow.AuthorizationURL)
	}
	if name != "implicit" {
		writer.WriteRequiredProperty(w, "tokenUrl", flow.TokenURL)
	}
	writer.WriteRequiredMap(w, "scopes", flow.Scopes, func(w writer.Writer, s string) { w.WriteValue(s) })
}

// OAuthFlow is the configuration of a single OAuth 2.0 flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           *ordered.Map[string]
	Extensions       *Extensions
}

func (f *OAuthFlow) GetExtensions() *Extensions { return f.Extensions }

func (f *OAuthFlow) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "authorizationUrl", f.AuthorizationURL)
	writer.WriteProperty(w, "tokenUrl", f.TokenURL)
	writer.WriteProperty(w, "refreshUrl", f.RefreshURL)
	writer.WriteRequiredMap(w, "scopes", f.Scopes, func(w writer.Writer, s string) { w.WriteValue(s) })
	writeExtensions(w, f.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (f *OAuthFlow) WriteAsV2(writer.Writer) {}

// SecurityRequirement lists the schemes, with scopes, that together satisfy
// a requirement. Each scheme is a reference to a component scheme.
type SecurityRequirement struct {
	Entries []*SecurityRequirementEntry
}

// SecurityRequirementEntry pairs a scheme with the scopes it must grant.
type SecurityRequirementEntry struct {
	Scheme *SecurityScheme
	Scopes []string
}

// SchemeName returns the component name the entry is keyed by.
func (e *SecurityRequirementEntry) SchemeName() string {
	if e.Scheme == nil {
		return ""
	}
	if e.Scheme.Reference != nil {
		return e.Scheme.Reference.ID
	}
	return e.Scheme.Name
}

func (r *SecurityRequirement) WriteAsV3(w writer.Writer) { r.write(w, openapi.V3) }

// WriteAsV2 skips schemes that Swagger 2.0 cannot express.
func (r *SecurityRequirement) WriteAsV2(w writer.Writer) { r.write(w, openapi.V2) }

func (r *SecurityRequirement) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	for _, e := range r.Entries {
		if e == nil || e.Scheme == nil {
			continue
		}
		if v == openapi.V2 && !e.Scheme.HasV2Form() {
			continue
		}
		w.WritePropertyName(e.SchemeName())
		w.WriteStartArray()
		for _, s := range e.Scopes {
			w.WriteValue(s)
		}
		w.WriteEndArray()
	}
	w.WriteEndObject()
}
