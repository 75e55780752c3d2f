package reader

import (
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

var (
	infoFields         *FieldMap[*models.Info]
	contactFields      *FieldMap[*models.Contact]
	licenseFields      *FieldMap[*models.License]
	externalDocsFields *FieldMap[*models.ExternalDocs]
	tagFields          *FieldMap[*models.Tag]
	serverFields       *FieldMap[*models.Server]
	serverVarFields    *FieldMap[*models.ServerVariable]
)

func init() {
	infoFields = NewFieldMap[*models.Info]("info", UnknownWarn).
		Field("title", setString(func(o *models.Info, v string) { o.Title = v })).
		Field("description", setString(func(o *models.Info, v string) { o.Description = v })).
		Field("termsOfService", setString(func(o *models.Info, v string) { o.TermsOfService = v })).
		Field("contact", func(o *models.Info, n parsenode.Node, c *ParsingContext) { o.Contact = loadContact(n, c) }).
		Field("license", func(o *models.Info, n parsenode.Node, c *ParsingContext) { o.License = loadLicense(n, c) }).
		Field("version", setString(func(o *models.Info, v string) { o.Version = v })).
		Extensions(func(o *models.Info) **models.Extensions { return &o.Extensions })

	contactFields = NewFieldMap[*models.Contact]("contact", UnknownWarn).
		Field("name", setString(func(o *models.Contact, v string) { o.Name = v })).
		Field("url", setString(func(o *models.Contact, v string) { o.URL = v })).
		Field("email", setString(func(o *models.Contact, v string) { o.Email = v })).
		Extensions(func(o *models.Contact) **models.Extensions { return &o.Extensions })

	licenseFields = NewFieldMap[*models.License]("license", UnknownWarn).
		Field("name", setString(func(o *models.License, v string) { o.Name = v })).
		Field("url", setString(func(o *models.License, v string) { o.URL = v })).
		Extensions(func(o *models.License) **models.Extensions { return &o.Extensions })

	externalDocsFields = NewFieldMap[*models.ExternalDocs]("externalDocs", UnknownWarn).
		Field("description", setString(func(o *models.ExternalDocs, v string) { o.Description = v })).
		Field("url", setString(func(o *models.ExternalDocs, v string) { o.URL = v })).
		Extensions(func(o *models.ExternalDocs) **models.Extensions { return &o.Extensions })

	tagFields = NewFieldMap[*models.Tag]("tag", UnknownWarn).
		Field("name", setString(func(o *models.Tag, v string) { o.Name = v })).
		Field("description", setString(func(o *models.Tag, v string) { o.Description = v })).
		Field("externalDocs", func(o *models.Tag, n parsenode.Node, c *ParsingContext) { o.ExternalDocs = loadExternalDocs(n, c) }).
		Extensions(func(o *models.Tag) **models.Extensions { return &o.Extensions })

	serverFields = NewFieldMap[*models.Server]("server", UnknownWarn).
		Field("url", setString(func(o *models.Server, v string) { o.URL = v })).
		Field("description", setString(func(o *models.Server, v string) { o.Description = v })).
		Field("variables", func(o *models.Server, n parsenode.Node, c *ParsingContext) {
			o.Variables = loadMap(n, c, "variables", loadServerVariable)
		}).
		Extensions(func(o *models.Server) **models.Extensions { return &o.Extensions })

	serverVarFields = NewFieldMap[*models.ServerVariable]("serverVariable", UnknownWarn).
		Field("enum", setStrings("enum", func(o *models.ServerVariable, v []string) { o.Enum = v })).
		Field("default", setString(func(o *models.ServerVariable, v string) { o.Default = v })).
		Field("description", setString(func(o *models.ServerVariable, v string) { o.Description = v })).
		Extensions(func(o *models.ServerVariable) **models.Extensions { return &o.Extensions })
}

func loadInfo(n parsenode.Node, c *ParsingContext) *models.Info {
	return loadObject(n, c, &models.Info{}, infoFields)
}

func loadContact(n parsenode.Node, c *ParsingContext) *models.Contact {
	return loadObject(n, c, &models.Contact{}, contactFields)
}

func loadLicense(n parsenode.Node, c *ParsingContext) *models.License {
	return loadObject(n, c, &models.License{}, licenseFields)
}

func loadExternalDocs(n parsenode.Node, c *ParsingContext) *models.ExternalDocs {
	return loadObject(n, c, &models.ExternalDocs{}, externalDocsFields)
}

func loadServer(n parsenode.Node, c *ParsingContext) *models.Server {
	return loadObject(n, c, &models.Server{}, serverFields)
}

func loadServerVariable(n parsenode.Node, c *ParsingContext) *models.ServerVariable {
	return loadObject(n, c, &models.ServerVariable{}, serverVarFields)
}

func loadServers(n parsenode.Node, c *ParsingContext) []*models.Server {
	return loadList(n, c, "servers", loadServer)
}

// loadTag reads a document-level tag and registers it by name so that
// operations can share it.
func loadTag(n parsenode.Node, c *ParsingContext) *models.Tag {
	t := loadObject(n, c, &models.Tag{}, tagFields)
	if t.Name != "" {
		t.Reference = &models.Reference{Type: models.ReferenceTag, ID: t.Name}
		c.registry.register(models.ReferenceTag, t.Name, t)
	}
	return t
}

// tagNames reads an operation's tag list. Each name becomes a placeholder
// swapped for the document tag of that name when there is one.
func tagNames(n parsenode.Node, c *ParsingContext) []*models.Tag {
	l, ok := c.asList(n, "tags")
	if !ok {
		return nil
	}
	items := l.Items()
	out := make([]*models.Tag, 0, len(items))
	for _, it := range items {
		name, ok := c.str(it)
		if !ok {
			continue
		}
		ph := &models.Tag{Name: name, Reference: &models.Reference{Type: models.ReferenceTag, ID: name}}
		i := len(out)
		out = append(out, ph)
		c.addNamedReference(models.ReferenceTag, name, it.Position(), true, ph,
			func(v any) bool {
				t, ok := v.(*models.Tag)
				if ok {
					out[i] = t
				}
				return ok
			},
			func() { ph.UnresolvedReference = true })
	}
	return out
}

// rawMap reads a map whose values are kept as opaque trees.
func rawMap(n parsenode.Node, c *ParsingContext, what string) *ordered.Map[any] {
	return loadMap(n, c, what, func(n parsenode.Node, _ *ParsingContext) any { return loadAny(n) })
}
