package models

import (
	"net/url"
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// Server is a target host. Swagger 2.0 has no server objects; the document
// writes host, basePath and schemes instead.
type Server struct {
	URL         string
	Description string
	Variables   *ordered.Map[*ServerVariable]
	Extensions  *Extensions
}

func (s *Server) GetExtensions() *Extensions { return s.Extensions }

func (s *Server) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteRequiredProperty(w, "url", s.URL)
	writer.WriteProperty(w, "description", s.Description)
	writer.WriteMap(w, "variables", s.Variables, func(w writer.Writer, v *ServerVariable) { v.WriteAsV3(w) })
	writeExtensions(w, s.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (s *Server) WriteAsV2(writer.Writer) {}

// ExpandedURL returns the URL with every {variable} replaced by its default.
func (s *Server) ExpandedURL() string {
	u := s.URL
	for name, v := range s.Variables.All() {
		if v == nil {
			continue
		}
		u = strings.ReplaceAll(u, "{"+name+"}", v.Default)
	}
	return u
}

// ServerVariable substitutes a {name} placeholder in a server URL.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Extensions  *Extensions
}

func (v *ServerVariable) GetExtensions() *Extensions { return v.Extensions }

func (v *ServerVariable) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteStringList(w, "enum", v.Enum)
	writer.WriteRequiredProperty(w, "default", v.Default)
	writer.WriteProperty(w, "description", v.Description)
	writeExtensions(w, v.Extensions, openapi.V3)
	w.WriteEndObject()
}

func (v *ServerVariable) WriteAsV2(writer.Writer) {}

// hostInfo is the Swagger 2.0 view of a server list.
type hostInfo struct {
	Host     string
	BasePath string
	Schemes  []string
}

// hostInfoV2 derives host, basePath and schemes from the first server.
// Schemes are collected from every server that shares its host and path.
func hostInfoV2(servers []*Server) hostInfo {
	var hi hostInfo
	if len(servers) == 0 || servers[0] == nil {
		return hi
	}
	first, err := url.Parse(servers[0].ExpandedURL())
	if err != nil {
		return hi
	}
	hi.Host = first.Host
	if first.Path != "/" {
		hi.BasePath = first.Path
	}
	if first.Host == "" {
		return hi
	}
	seen := map[string]bool{}
	for _, s := range servers {
		if s == nil {
			continue
		}
		u, err := url.Parse(s.ExpandedURL())
		if err != nil || u.Scheme == "" || u.Host != first.Host || u.Path != first.Path {
			continue
		}
		if !seen[u.Scheme] {
			seen[u.Scheme] = true
			hi.Schemes = append(hi.Schemes, u.Scheme)
		}
	}
	return hi
}
