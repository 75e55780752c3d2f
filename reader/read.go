// Package reader turns OpenAPI 3.0 and Swagger 2.0 documents into the
// models object graph. Reading never stops at the first problem: the result
// carries a usable document together with every diagnostic found on the
// way. Only input that has no document shape at all is an error.
package reader

import (
	"context"
	"fmt"
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/jsonschema"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// Result is the outcome of a read.
type Result struct {
	Document    *models.Document
	Diagnostics openapi.Diagnostics
	Version     openapi.SpecVersion
}

// Read parses JSON or YAML text and loads it as a document.
func Read(ctx context.Context, data []byte, s Settings) (*Result, error) {
	root, err := parsenode.Parse(data, s.Tokenizer)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	return ReadNode(ctx, root, s)
}

// ReadNode loads a document from an already built parse tree.
func ReadNode(ctx context.Context, root parsenode.Node, s Settings) (*Result, error) {
	m, ok := root.(*parsenode.MapNode)
	if !ok {
		return nil, ErrRootNotMap
	}
	v, err := detectVersion(m)
	if err != nil {
		return nil, err
	}
	c := newParsingContext(ctx, s, v)
	if err := c.canceled(); err != nil {
		return nil, err
	}
	c.log.Debug().Stringer("dialect", v).Msg("reading document")

	var doc *models.Document
	if v == openapi.V2 {
		doc, err = loadDocumentV2(m, c)
	} else {
		doc, err = loadDocumentV3(m, c)
	}
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("components", c.registry.Len()).Int("references", len(c.pending)).Msg("document loaded")
	c.resolve()

	diags := c.diags.All()
	c.log.Debug().Int("errors", len(diags.Errors())).Int("warnings", len(diags.Warnings())).Msg("read finished")
	return &Result{Document: doc, Diagnostics: diags, Version: v}, nil
}

// detectVersion accepts "openapi: 3.0.x" and "swagger: 2.0".
func detectVersion(m *parsenode.MapNode) (openapi.SpecVersion, error) {
	if n := m.Get("openapi"); n != nil {
		s, err := parsenode.AsString(n)
		if err == nil && strings.HasPrefix(s, "3.0") {
			return openapi.V3, nil
		}
		return 0, fmt.Errorf("%w: openapi %s", ErrUnsupportedVersion, rawText(n))
	}
	if n := m.Get("swagger"); n != nil {
		s, err := parsenode.AsString(n)
		if err == nil && s == "2.0" {
			return openapi.V2, nil
		}
		return 0, fmt.Errorf("%w: swagger %s", ErrUnsupportedVersion, rawText(n))
	}
	return 0, ErrUnsupportedVersion
}

func rawText(n parsenode.Node) string {
	if v, ok := n.(*parsenode.ValueNode); ok {
		return fmt.Sprintf("%q", v.Raw())
	}
	return n.Kind().String()
}

// ReadFragment loads a single element of type T from JSON or YAML text.
// References inside a fragment are not resolved; they stay as stubs.
func ReadFragment[T any](data []byte, v openapi.SpecVersion, s Settings) (T, openapi.Diagnostics, error) {
	var zero T
	root, err := parsenode.Parse(data, s.Tokenizer)
	if err != nil {
		return zero, nil, fmt.Errorf("reader: %w", err)
	}
	return ReadFragmentNode[T](root, v, s)
}

// ReadFragmentNode is ReadFragment for an already built parse tree.
func ReadFragmentNode[T any](n parsenode.Node, v openapi.SpecVersion, s Settings) (T, openapi.Diagnostics, error) {
	var zero T
	c := newParsingContext(context.Background(), s, v)
	var out any
	switch any(zero).(type) {
	case *models.Info:
		out = loadInfo(n, c)
	case *models.Contact:
		out = loadContact(n, c)
	case *models.License:
		out = loadLicense(n, c)
	case *models.ExternalDocs:
		out = loadExternalDocs(n, c)
	case *models.Tag:
		out = loadTag(n, c)
	case *models.Server:
		out = loadServer(n, c)
	case *jsonschema.Schema:
		out = loadFragmentRef(n, c, schemaRef, loadSchema)
	case *models.Parameter:
		if v == openapi.V2 {
			p, body := loadParameterV2(n, c)
			if body != nil {
				return zero, nil, fmt.Errorf("reader: body parameter cannot be read as %T", zero)
			}
			out = p
		} else {
			out = loadFragmentRef(n, c, parameterRef, loadParameter)
		}
	case *models.Header:
		if v == openapi.V2 {
			out = loadHeaderV2(n, c)
		} else {
			out = loadFragmentRef(n, c, headerRef, loadHeader)
		}
	case *models.Example:
		out = loadFragmentRef(n, c, exampleRef, loadExample)
	case *models.RequestBody:
		out = loadFragmentRef(n, c, requestBodyRef, loadRequestBody)
	case *models.MediaType:
		out = loadMediaType(n, c)
	case *models.Response:
		out = loadFragmentRef(n, c, responseRef, loadResponse)
	case *models.SecurityScheme:
		if v == openapi.V2 {
			out = loadSecuritySchemeV2(n, c)
		} else {
			out = loadFragmentRef(n, c, securitySchemeRef, loadSecurityScheme)
		}
	case *models.Operation:
		if v == openapi.V2 {
			out = loadOperationV2(n, c)
		} else {
			out = loadOperation(n, c)
		}
	case *models.PathItem:
		out = loadPathItem(n, c)
	default:
		return zero, nil, fmt.Errorf("reader: %T cannot be read as a fragment", zero)
	}
	c.runAfterResolve()
	return out.(T), c.diags.All(), nil
}

func loadFragmentRef[T comparable](n parsenode.Node, c *ParsingContext, rk refKind[T], load func(parsenode.Node, *ParsingContext) T) T {
	return loadRef(n, c, rk, load, func(T) {})
}
