package parsenode

import (
	"bytes"
	"errors"
	"fmt"
)

// DefaultMaxDepth bounds container nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// DefaultMaxAliasNodes bounds YAML alias expansion when
// Options.MaxAliasNodes is zero.
const DefaultMaxAliasNodes = 1 << 18

// Options controls tree construction.
type Options struct {
	// MaxDepth bounds map/list nesting. Zero selects DefaultMaxDepth.
	MaxDepth int
	// MaxAliasNodes bounds the number of nodes built by expanding YAML
	// aliases and merge keys. Zero selects DefaultMaxAliasNodes.
	MaxAliasNodes int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) maxAliasNodes() int {
	if o.MaxAliasNodes <= 0 {
		return DefaultMaxAliasNodes
	}
	return o.MaxAliasNodes
}

// ErrEmptyDocument is returned when the input holds no value at all.
var ErrEmptyDocument = errors.New("parsenode: empty document")

// DepthError reports input nested deeper than Options.MaxDepth.
type DepthError struct {
	Pointer  string
	MaxDepth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("parsenode: max depth %d exceeded at %s", e.MaxDepth, e.Pointer)
}

// AliasLimitError reports YAML input whose aliases expand to more than
// Options.MaxAliasNodes nodes.
type AliasLimitError struct {
	Pointer       string
	MaxAliasNodes int
}

func (e *AliasLimitError) Error() string {
	return fmt.Sprintf("parsenode: excessive aliasing, more than %d expanded nodes at %s", e.MaxAliasNodes, e.Pointer)
}

// DuplicateKeyError reports a duplicate key found in a mapping with both
// the first occurrence position and the duplicate occurrence position.
// JSON input carries no line information, so only Pointer is set there.
type DuplicateKeyError struct {
	Key       string
	Pointer   string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
	}
	return fmt.Sprintf("duplicate key %q at %s", e.Key, e.Pointer)
}

// Parse builds a tree from JSON or YAML text. Input whose first significant
// byte opens a JSON object or array goes through the JSON tokenizer; anything
// else is treated as YAML.
func Parse(data []byte, opts Options) (Node, error) {
	if looksLikeJSON(data) {
		return FromJSON(data, opts)
	}
	return FromYAML(data, opts)
}

func looksLikeJSON(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && (data[0] == '{' || data[0] == '[')
}
