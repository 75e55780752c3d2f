package reader

import (
	"github.com/rs/zerolog"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// DefaultMaxDepth bounds object nesting when Settings.MaxDepth is zero.
const DefaultMaxDepth = 128

// ExternalResolver returns a previously loaded document for the document
// part of an external reference. Returning an error or nil declines.
type ExternalResolver func(resource string) (*models.Document, error)

// ExtensionParser turns the raw tree of a named extension into a typed
// value. A failing parser leaves the raw tree in place.
type ExtensionParser func(n parsenode.Node, v openapi.SpecVersion) (models.ExtensionValue, error)

// Settings configures a read. The zero value is ready to use.
type Settings struct {
	// MaxDepth bounds the nesting of model objects. Zero selects
	// DefaultMaxDepth.
	MaxDepth int
	// Tokenizer is passed to the parse tree builder for text input.
	Tokenizer parsenode.Options
	// ExternalResolver resolves references into other documents. Without
	// it, external references stay as stubs.
	ExternalResolver ExternalResolver
	// ExtensionParsers maps extension names (with the x- prefix) to
	// parsers.
	ExtensionParsers map[string]ExtensionParser
	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger
}

func (s Settings) maxDepth() int {
	if s.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return s.MaxDepth
}

func (s Settings) logger() zerolog.Logger {
	if s.Logger == nil {
		return zerolog.Nop()
	}
	return *s.Logger
}
