package parsenode

import "strings"

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// EscapeToken escapes a single reference token per RFC 6901
// ('~' -> '~0', '/' -> '~1').
func EscapeToken(s string) string { return pointerEscaper.Replace(s) }

// UnescapeToken reverses EscapeToken.
func UnescapeToken(s string) string { return pointerUnescaper.Replace(s) }

// JoinPointer appends an (unescaped) token to a JSON Pointer.
func JoinPointer(base, token string) string {
	return base + "/" + EscapeToken(token)
}

// SplitPointer returns the unescaped tokens of a JSON Pointer. The empty
// pointer and "/" both address the root and yield no tokens.
func SplitPointer(ptr string) []string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return nil
	}
	parts := strings.Split(ptr, "/")
	for i, p := range parts {
		parts[i] = UnescapeToken(p)
	}
	return parts
}
