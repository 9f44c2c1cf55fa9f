package types

import (
	"github.com/autosyntax/autosyntax/pkg/pattern"
)

// SyntaxEntry pairs a syntax identifier with its compiled first-line
// patterns. The identifier is whatever the host accepts in SetSyntax,
// typically a resource path like "Packages/Python/Python.sublime-syntax".
//
// Invariant: Patterns is never empty. Builders drop entries whose patterns
// all fail to compile instead of emitting an empty entry.
type SyntaxEntry struct {
	Syntax   string
	Patterns []*pattern.Pattern
}
