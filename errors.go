package openapi

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Diagnostic codes (exported consts for IDE completion and type safety by convention)
const (
	CodeStructural          = "structural"
	CodeUnknownField        = "unknown_field"
	CodeTypeMismatch        = "type_mismatch"
	CodeInvalidValue        = "invalid_value"
	CodeUnresolvedReference = "unresolved_reference"
	CodeExternalReference   = "external_reference"
	CodeCircularReference   = "circular_reference"
	CodeDepthExceeded       = "depth_exceeded"
	CodeDuplicateKey        = "duplicate_key"
	CodeUnsupportedVersion  = "unsupported_version"
)

// Diagnostic represents a single problem found while reading a document.
type Diagnostic struct {
	Position Position
	Severity Severity
	Code     string // One of the codes listed above.
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s at %s: %s", d.Severity, d.Code, d.Position, d.Message)
}

// Diagnostics is a collection of diagnostics that implements error.
type Diagnostics []Diagnostic

// Error summarizes the first few diagnostics.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ds)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. unknown_field at /info/contact
		fmt.Fprintf(b, "%s at %s", ds[i].Code, ds[i].Position)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasErrors reports whether at least one diagnostic has SeverityError.
func (ds Diagnostics) HasErrors() bool {
	for i := range ds {
		if ds[i].Severity >= SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the diagnostics with SeverityError.
func (ds Diagnostics) Errors() Diagnostics { return ds.filter(SeverityError) }

// Warnings returns the diagnostics with SeverityWarning.
func (ds Diagnostics) Warnings() Diagnostics { return ds.filter(SeverityWarning) }

func (ds Diagnostics) filter(sev Severity) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// WithCode returns the diagnostics carrying the given code.
func (ds Diagnostics) WithCode(code string) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// AsDiagnostics extracts Diagnostics from an error using errors.As internally.
func AsDiagnostics(err error) (Diagnostics, bool) {
	if err == nil {
		return nil, false
	}
	var ds Diagnostics
	if errors.As(err, &ds) {
		return ds, true
	}
	return nil, false
}

// Collector accumulates diagnostics for a single read. A Collector must not
// be shared between reads; the mutex only guards against misuse by callers
// that hand it to their own goroutines.
type Collector struct {
	mu    sync.Mutex
	items Diagnostics
}

// NewCollector returns an empty collector.
func NewCollector() *Collector { return &Collector{} }

// Record appends a diagnostic.
func (c *Collector) Record(pos Position, sev Severity, code, msg string) {
	c.mu.Lock()
	c.items = append(c.items, Diagnostic{Position: pos, Severity: sev, Code: code, Message: msg})
	c.mu.Unlock()
}

// Recordf appends a diagnostic with a formatted message.
func (c *Collector) Recordf(pos Position, sev Severity, code, format string, a ...any) {
	c.Record(pos, sev, code, fmt.Sprintf(format, a...))
}

// All returns a copy of the diagnostics in recording order.
func (c *Collector) All() Diagnostics {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil
	}
	return append(Diagnostics(nil), c.items...)
}

// Len reports the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ByPointer groups diagnostics by the JSON Pointer of their position.
func (c *Collector) ByPointer() map[string]Diagnostics {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]Diagnostics, len(c.items))
	for _, d := range c.items {
		out[d.Position.Pointer] = append(out[d.Position.Pointer], d)
	}
	return out
}
