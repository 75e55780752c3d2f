package reader

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

type componentKey struct {
	kind models.ReferenceType
	id   string
}

// registry indexes the addressable components of one document.
type registry struct {
	items map[componentKey]any
}

func newRegistry() *registry { return &registry{items: make(map[componentKey]any)} }

func (r *registry) register(kind models.ReferenceType, id string, v any) {
	r.items[componentKey{kind, id}] = v
}

func (r *registry) lookup(kind models.ReferenceType, id string) (any, bool) {
	v, ok := r.items[componentKey{kind, id}]
	return v, ok
}

// Len reports the number of registered components.
func (r *registry) Len() int { return len(r.items) }

// pendingRef is a reference slot waiting for phase two: the placeholder
// currently in the slot, the kinds it may resolve to, and the setter that
// swaps in the shared instance.
type pendingRef struct {
	ref         *models.Reference
	kinds       []models.ReferenceType
	pos         openapi.Position
	set         func(v any) bool
	unresolved  func()
	optional    bool
	placeholder any
}

// refKind describes how to build and mark placeholders of one model type.
type refKind[T comparable] struct {
	kind        models.ReferenceType
	placeholder func(*models.Reference) T
	unresolved  func(T)
	stamp       func(T, *models.Reference)
}

var (
	schemaRef = refKind[*jsonschema.Schema]{
		kind:        models.ReferenceSchema,
		placeholder: models.NewSchemaReference,
		unresolved: func(s *jsonschema.Schema) {
			if k, ok := jsonschema.Get[*models.ReferenceKeyword](s, models.NameReference); ok {
				k.Unresolved = true
			}
		},
		stamp: func(s *jsonschema.Schema, r *models.Reference) {
			s.SetKeyword(&models.ReferenceKeyword{Reference: r})
		},
	}
	parameterRef = refKind[*models.Parameter]{
		kind:        models.ReferenceParameter,
		placeholder: func(r *models.Reference) *models.Parameter { return &models.Parameter{Reference: r} },
		unresolved:  func(p *models.Parameter) { p.UnresolvedReference = true },
		stamp:       func(p *models.Parameter, r *models.Reference) { p.Reference = r },
	}
	responseRef = refKind[*models.Response]{
		kind:        models.ReferenceResponse,
		placeholder: func(r *models.Reference) *models.Response { return &models.Response{Reference: r} },
		unresolved:  func(p *models.Response) { p.UnresolvedReference = true },
		stamp:       func(p *models.Response, r *models.Reference) { p.Reference = r },
	}
	exampleRef = refKind[*models.Example]{
		kind:        models.ReferenceExample,
		placeholder: func(r *models.Reference) *models.Example { return &models.Example{Reference: r} },
		unresolved:  func(p *models.Example) { p.UnresolvedReference = true },
		stamp:       func(p *models.Example, r *models.Reference) { p.Reference = r },
	}
	requestBodyRef = refKind[*models.RequestBody]{
		kind:        models.ReferenceRequestBody,
		placeholder: func(r *models.Reference) *models.RequestBody { return &models.RequestBody{Reference: r} },
		unresolved:  func(p *models.RequestBody) { p.UnresolvedReference = true },
		stamp:       func(p *models.RequestBody, r *models.Reference) { p.Reference = r },
	}
	headerRef = refKind[*models.Header]{
		kind:        models.ReferenceHeader,
		placeholder: func(r *models.Reference) *models.Header { return &models.Header{Reference: r} },
		unresolved:  func(p *models.Header) { p.UnresolvedReference = true },
		stamp:       func(p *models.Header, r *models.Reference) { p.Reference = r },
	}
	securitySchemeRef = refKind[*models.SecurityScheme]{
		kind:        models.ReferenceSecurityScheme,
		placeholder: func(r *models.Reference) *models.SecurityScheme { return &models.SecurityScheme{Reference: r} },
		unresolved:  func(p *models.SecurityScheme) { p.UnresolvedReference = true },
		stamp:       func(p *models.SecurityScheme, r *models.Reference) { p.Reference = r },
	}
)

// refString returns the $ref value when n is a reference object.
func refString(n parsenode.Node) (string, bool) {
	m, ok := n.(*parsenode.MapNode)
	if !ok {
		return "", false
	}
	v := m.Get("$ref")
	if v == nil {
		return "", false
	}
	s, err := parsenode.AsString(v)
	return s, err == nil
}

// loadRef loads n with load, or, when n is a $ref object, puts a
// placeholder in the slot and queues it for resolution. assign receives the
// loaded value or placeholder now, and the shared instance in phase two.
func loadRef[T comparable](n parsenode.Node, c *ParsingContext, rk refKind[T], load func(parsenode.Node, *ParsingContext) T, assign func(T)) T {
	raw, ok := refString(n)
	if !ok {
		v := load(n, c)
		assign(v)
		return v
	}
	ph := addReference(c, n, raw, rk, func(v any) bool {
		t, ok := v.(T)
		if ok {
			assign(t)
		}
		return ok
	})
	assign(ph)
	return ph
}

// addReference parses raw, builds a placeholder and queues a pending slot.
func addReference[T comparable](c *ParsingContext, n parsenode.Node, raw string, rk refKind[T], set func(any) bool) T {
	ref, err := ParseReference(raw, c.version, rk.kind)
	if err != nil {
		ref = &models.Reference{Type: rk.kind, Fragment: fragmentOf(raw)}
		ph := rk.placeholder(ref)
		rk.unresolved(ph)
		c.placeholders[ph] = true
		c.errorf(n.Position(), openapi.CodeUnresolvedReference, "invalid reference %q: %v", raw, err)
		return ph
	}
	ph := rk.placeholder(ref)
	c.placeholders[ph] = true
	c.pending = append(c.pending, &pendingRef{
		ref:         ref,
		kinds:       c.candidateKinds(ref),
		pos:         n.Position(),
		set:         set,
		unresolved:  func() { rk.unresolved(ph) },
		placeholder: ph,
	})
	return ph
}

func fragmentOf(raw string) string {
	if i := len(raw); i > 0 && raw[0] == '#' {
		return raw[1:]
	}
	return raw
}

// candidateKinds lists the registry kinds a reference may resolve to.
// Swagger 2.0 body parameters live among the parameters but load as
// request bodies.
func (c *ParsingContext) candidateKinds(ref *models.Reference) []models.ReferenceType {
	if c.version == openapi.V2 && ref.Type == models.ReferenceParameter {
		return []models.ReferenceType{models.ReferenceParameter, models.ReferenceRequestBody}
	}
	return []models.ReferenceType{ref.Type}
}

// registerComponent records a component under (kind, id) and stamps it with
// its own address unless it is itself a reference placeholder.
func registerComponent[T comparable](c *ParsingContext, rk refKind[T], id string, v T) {
	c.registry.register(rk.kind, id, v)
	if !c.placeholders[v] {
		rk.stamp(v, &models.Reference{Type: rk.kind, ID: id})
	}
}

// loadComponents reads a components section of one kind, registering each
// entry.
func loadComponents[T comparable](n parsenode.Node, c *ParsingContext, what string, rk refKind[T], load func(parsenode.Node, *ParsingContext) T) *ordered.Map[T] {
	m, ok := c.asMap(n, what)
	if !ok {
		return nil
	}
	out := ordered.New[T](m.Len())
	for _, p := range m.Properties() {
		id := p.Key
		v := loadRef(p.Value, c, rk, load, func(v T) { out.Set(id, v) })
		registerComponent(c, rk, id, v)
	}
	c.log.Debug().Str("section", what).Int("count", out.Len()).Msg("components registered")
	return out
}

// referenceOf returns the reference carried by a model value.
func referenceOf(v any) *models.Reference {
	switch x := v.(type) {
	case *jsonschema.Schema:
		return models.GetReference(x)
	case interface{ GetReference() *models.Reference }:
		return x.GetReference()
	}
	return nil
}

// resolve runs phase two over the pending slots. Each slot is visited once;
// alias chains are followed iteratively with a visited set.
func (c *ParsingContext) resolve() {
	resolved, unresolved := 0, 0
	for _, p := range c.pending {
		if c.resolveOne(p) {
			resolved++
		} else {
			unresolved++
		}
	}
	c.runAfterResolve()
	c.log.Debug().Int("resolved", resolved).Int("unresolved", unresolved).Msg("references resolved")
}

// runAfterResolve runs the hooks that need final slot contents, in
// registration order.
func (c *ParsingContext) runAfterResolve() {
	for _, fn := range c.afterResolve {
		fn()
	}
	c.afterResolve = nil
}

func (c *ParsingContext) resolveOne(p *pendingRef) bool {
	ref := p.ref
	kinds := p.kinds
	visited := make(map[componentKey]bool)
	for {
		if ref.IsExternal() {
			return c.resolveExternal(p, ref, kinds)
		}
		v, key, found := c.lookup(ref, kinds)
		if !found {
			if !p.optional {
				p.unresolved()
				c.errorf(p.pos, openapi.CodeUnresolvedReference, "reference %q not found", ref.ReferenceV3())
			}
			return false
		}
		if visited[key] {
			p.unresolved()
			c.errorf(p.pos, openapi.CodeCircularReference, "reference %q is part of a cycle", ref.ReferenceV3())
			return false
		}
		visited[key] = true
		if c.placeholders[v] {
			// alias component: follow the chain
			ref = referenceOf(v)
			kinds = c.candidateKinds(ref)
			continue
		}
		if !p.set(v) {
			p.unresolved()
			c.errorf(p.pos, openapi.CodeUnresolvedReference, "reference %q points at a %s component, which cannot be used here", ref.ReferenceV3(), key.kind)
			return false
		}
		return true
	}
}

func (c *ParsingContext) lookup(ref *models.Reference, kinds []models.ReferenceType) (any, componentKey, bool) {
	for _, k := range kinds {
		if v, ok := c.registry.lookup(k, ref.ID); ok {
			return v, componentKey{k, ref.ID}, true
		}
	}
	return nil, componentKey{}, false
}

// resolveExternal asks the caller's resolver for the target document. No
// resolver means the stub stays silently; a declining resolver is worth a
// warning.
func (c *ParsingContext) resolveExternal(p *pendingRef, ref *models.Reference, kinds []models.ReferenceType) bool {
	resolver := c.settings.ExternalResolver
	if resolver == nil {
		return false
	}
	doc, err := resolver(ref.ExternalResource)
	if err != nil || doc == nil {
		c.warnf(p.pos, openapi.CodeExternalReference, "external document %q not resolved: %v", ref.ExternalResource, errOrDeclined(err))
		return false
	}
	if ref.ID == "" {
		c.warnf(p.pos, openapi.CodeExternalReference, "external reference %q does not address a component", ref.ReferenceV3())
		return false
	}
	for _, k := range kinds {
		if v := doc.Component(k, ref.ID); v != nil && p.set(v) {
			return true
		}
	}
	c.warnf(p.pos, openapi.CodeExternalReference, "component %q not found in %q", ref.Key(), ref.ExternalResource)
	return false
}

type declinedError struct{}

func (declinedError) Error() string { return "declined" }

func errOrDeclined(err error) error {
	if err != nil {
		return err
	}
	return declinedError{}
}

// addNamedReference queues a slot addressed by name rather than by $ref:
// operation tags and security requirement keys. Optional slots stay silent
// on a miss.
func (c *ParsingContext) addNamedReference(kind models.ReferenceType, id string, pos openapi.Position, optional bool, placeholder any, set func(any) bool, unresolved func()) {
	c.placeholders[placeholder] = true
	ref := &models.Reference{Type: kind, ID: id}
	c.pending = append(c.pending, &pendingRef{
		ref:         ref,
		kinds:       []models.ReferenceType{kind},
		pos:         pos,
		set:         set,
		unresolved:  unresolved,
		optional:    optional,
		placeholder: placeholder,
	})
}
