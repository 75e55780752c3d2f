// Package writer provides the output side of the document model: a small
// structural Writer capability and two implementations, a streaming JSON
// writer and a YAML node-tree writer.
//
// Property names are emitted lazily together with the value that follows
// them. A name followed directly by another name or by WriteEndObject is
// dropped, so an element with no representation in the target dialect can
// be written under a name without leaving a dangling key.
package writer

import (
	"errors"
	"fmt"
)

// Writer receives the structure of a document.
type Writer interface {
	WriteStartObject()
	WriteEndObject()
	WriteStartArray()
	WriteEndArray()
	WritePropertyName(name string)
	// WriteValue writes a scalar: string, bool, any integer or float kind,
	// or nil.
	WriteValue(v any)
	WriteNull()
	// Flush completes the output and returns the first error encountered.
	Flush() error
}

// Settings configures a writer. The zero value writes compact JSON.
type Settings struct {
	// Indent is the number of spaces per nesting level for JSON output.
	// Zero writes compact output. YAML output always uses two spaces.
	Indent int
}

var (
	// ErrUnbalanced reports an end without a matching start, or a Flush
	// with open containers.
	ErrUnbalanced = errors.New("writer: unbalanced structure")
	// ErrMissingName reports a value written inside an object without a
	// preceding property name.
	ErrMissingName = errors.New("writer: value without property name")
	// ErrMultipleRoots reports a second top-level value.
	ErrMultipleRoots = errors.New("writer: multiple root values")
)

// UnsupportedValueError reports a WriteValue argument that is not a scalar.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("writer: unsupported value of type %T", e.Value)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

// state is the bookkeeping shared by both writers.
type state struct {
	stack       []containerKind
	pendingName string
	hasPending  bool
	rootDone    bool
	err         error
}

func (s *state) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *state) top() (containerKind, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	return s.stack[len(s.stack)-1], true
}

func (s *state) setName(name string) {
	if k, ok := s.top(); !ok || k != kindObject {
		s.fail(fmt.Errorf("writer: property name %q outside an object", name))
		return
	}
	s.pendingName, s.hasPending = name, true
}

// claimName consumes the pending name for a value about to be written in an
// object. It reports the name and whether the value may be written.
func (s *state) claimName() (string, bool) {
	if !s.hasPending {
		s.fail(ErrMissingName)
		return "", false
	}
	name := s.pendingName
	s.pendingName, s.hasPending = "", false
	return name, true
}

func (s *state) claimRoot() bool {
	if s.rootDone {
		s.fail(ErrMultipleRoots)
		return false
	}
	s.rootDone = true
	return true
}

func (s *state) pop(want containerKind) bool {
	k, ok := s.top()
	if !ok || k != want {
		s.fail(ErrUnbalanced)
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.pendingName, s.hasPending = "", false
	return true
}
