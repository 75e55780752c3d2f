package openapi

import "fmt"

// Warningf creates a warning Diagnostic at the given position.
// This is a convenience helper to improve readability at call sites.
func Warningf(pos Position, code, format string, a ...any) Diagnostic {
	return Diagnostic{Position: pos, Severity: SeverityWarning, Code: code, Message: fmt.Sprintf(format, a...)}
}

// Errorf creates an error Diagnostic at the given position.
func Errorf(pos Position, code, format string, a ...any) Diagnostic {
	return Diagnostic{Position: pos, Severity: SeverityError, Code: code, Message: fmt.Sprintf(format, a...)}
}

// Add appends an already constructed diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}
