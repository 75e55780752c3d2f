package reader

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// ParsingContext carries the per-read state through the loaders: the
// diagnostics collector, the component registry, the pending references
// and the nesting depth. A ParsingContext belongs to a single read.
type ParsingContext struct {
	ctx      context.Context
	settings Settings
	version  openapi.SpecVersion
	log      zerolog.Logger
	diags    *openapi.Collector
	depth    int

	registry     *registry
	pending      []*pendingRef
	placeholders map[any]bool
	afterResolve []func()

	v2 v2State
}

// v2State holds document-wide Swagger 2.0 defaults that loaders of nested
// objects need.
type v2State struct {
	consumes []string
	produces []string
	// operation-level overrides while an operation is being read
	opConsumes []string
	opProduces []string
}

func (s *v2State) mediaTypesIn() []string {
	if s.opConsumes != nil {
		return s.opConsumes
	}
	return s.consumes
}

func (s *v2State) mediaTypesOut() []string {
	if s.opProduces != nil {
		return s.opProduces
	}
	return s.produces
}

func newParsingContext(ctx context.Context, s Settings, v openapi.SpecVersion) *ParsingContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ParsingContext{
		ctx:          ctx,
		settings:     s,
		version:      v,
		log:          s.logger(),
		diags:        openapi.NewCollector(),
		registry:     newRegistry(),
		placeholders: make(map[any]bool),
	}
}

// Version returns the dialect being read.
func (c *ParsingContext) Version() openapi.SpecVersion { return c.version }

// Diagnostics returns the collector of this read.
func (c *ParsingContext) Diagnostics() *openapi.Collector { return c.diags }

func (c *ParsingContext) warnf(pos openapi.Position, code, format string, a ...any) {
	c.diags.Add(openapi.Warningf(pos, code, format, a...))
}

func (c *ParsingContext) errorf(pos openapi.Position, code, format string, a ...any) {
	c.diags.Add(openapi.Errorf(pos, code, format, a...))
}

// mismatch records a type_mismatch warning for a scalar that could not be
// coerced.
func (c *ParsingContext) mismatch(n parsenode.Node, err error) {
	c.warnf(n.Position(), openapi.CodeTypeMismatch, "%v", err)
}

// asMap returns n as a map, or records a structural error naming what the
// caller expected.
func (c *ParsingContext) asMap(n parsenode.Node, what string) (*parsenode.MapNode, bool) {
	m, err := parsenode.AsMap(n)
	if err != nil {
		c.errorf(positionOf(n), openapi.CodeStructural, "%s: %v", what, err)
		return nil, false
	}
	return m, true
}

// asList returns n as a list, or records a structural error.
func (c *ParsingContext) asList(n parsenode.Node, what string) (*parsenode.ListNode, bool) {
	l, err := parsenode.AsList(n)
	if err != nil {
		c.errorf(positionOf(n), openapi.CodeStructural, "%s: %v", what, err)
		return nil, false
	}
	return l, true
}

// enter bumps the nesting depth. It records depth_exceeded and reports false
// when the limit is reached; the caller must not descend and must not call
// leave.
func (c *ParsingContext) enter(n parsenode.Node) bool {
	if c.depth >= c.settings.maxDepth() {
		c.errorf(n.Position(), openapi.CodeDepthExceeded, "nesting exceeds %d objects", c.settings.maxDepth())
		return false
	}
	c.depth++
	return true
}

func (c *ParsingContext) leave() { c.depth-- }

// canceled reports whether the read was canceled.
func (c *ParsingContext) canceled() error {
	if err := c.ctx.Err(); err != nil {
		return fmt.Errorf("reader: %w", err)
	}
	return nil
}

func positionOf(n parsenode.Node) openapi.Position {
	if n == nil {
		return openapi.Position{}
	}
	return n.Position()
}
