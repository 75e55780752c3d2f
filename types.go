package openapi

import (
	"fmt"
	"strings"
)

// Severity expresses the severity level for diagnostics.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// SpecVersion selects one of the two wire dialects.
type SpecVersion int

const (
	V3 SpecVersion = iota // OpenAPI 3.0.x
	V2                    // Swagger 2.0
)

func (v SpecVersion) String() string {
	switch v {
	case V2:
		return "2.0"
	case V3:
		return "3.0"
	default:
		return fmt.Sprintf("version(%d)", int(v))
	}
}

// ParseSpecVersion accepts "2", "2.0", "v2", "3", "3.0", "3.0.3", "v3" and the like.
func ParseSpecVersion(s string) (SpecVersion, error) {
	t := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v")
	switch {
	case t == "2" || strings.HasPrefix(t, "2."):
		return V2, nil
	case t == "3" || strings.HasPrefix(t, "3."):
		return V3, nil
	}
	return V3, fmt.Errorf("openapi: unknown spec version %q", s)
}

// Position locates a node in the source document. Pointer is always set
// (RFC 6901 JSON Pointer, "" for the root); Line and Column are 1-based and
// zero when the tokenizer does not track them.
type Position struct {
	Pointer string
	Line    int
	Column  int
}

func (p Position) String() string {
	ptr := p.Pointer
	if ptr == "" {
		ptr = "/"
	}
	if p.Line > 0 {
		return fmt.Sprintf("%s (%d:%d)", ptr, p.Line, p.Column)
	}
	return ptr
}
