// Package assoc provides the core value types and contracts for file
// association guarding.
package assoc

import (
	"regexp"
	"strings"
)

// Extension is a normalized file extension token such as ".txt".
// Extensions are compared case-insensitively by normalizing to lower
// case at the boundary.
type Extension string

// extPattern matches a normalized extension: a dot followed by an
// alphanumeric character and any run of extension-safe characters.
var extPattern = regexp.MustCompile(`^\.[a-z0-9][a-z0-9._+\-]*$`)

// NormalizeExt trims whitespace, prefixes a missing dot, and lowers
// the extension. An empty input normalizes to the empty Extension.
func NormalizeExt(raw string) Extension {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	return Extension(strings.ToLower(s))
}

// Valid reports whether the extension is a well-formed normalized token.
func (e Extension) Valid() bool {
	return extPattern.MatchString(string(e))
}

// String returns the extension as a string.
func (e Extension) String() string {
	return string(e)
}

// IsZero reports whether the extension is empty.
func (e Extension) IsZero() bool {
	return e == ""
}

// HandlerID is the opaque identifier of a registered default handler
// for an extension (a Windows ProgID such as "Notepad.Assoc").
// Equality is exact string comparison after normalization.
type HandlerID string

// NormalizeHandler trims whitespace from a raw handler identifier.
func NormalizeHandler(raw string) HandlerID {
	return HandlerID(strings.TrimSpace(raw))
}

// String returns the handler identifier as a string.
func (h HandlerID) String() string {
	return string(h)
}

// IsZero reports whether the handler identifier is the unset sentinel.
func (h HandlerID) IsZero() bool {
	return h == ""
}
