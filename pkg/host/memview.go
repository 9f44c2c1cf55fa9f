package host

import "strings"

// MemView is an in-memory View. The CLI harness and tests use it in place
// of a live editor buffer.
type MemView struct {
	// Content is the full buffer text.
	Content string

	// Cursors holds the 0-indexed rows of the active cursors. A view with
	// no explicit cursors reports a single cursor on row 0.
	Cursors []int

	// Scope is the classification reported for every offset.
	Scope string

	// Syntax records the identifier from the last SetSyntax call.
	Syntax string
}

func (v *MemView) SelectionCount() int {
	if len(v.Cursors) == 0 {
		return 1
	}
	return len(v.Cursors)
}

func (v *MemView) SelectionRow(i int) int {
	if len(v.Cursors) == 0 {
		return 0
	}
	return v.Cursors[i]
}

func (v *MemView) FirstLine() string {
	if idx := strings.IndexByte(v.Content, '\n'); idx >= 0 {
		return v.Content[:idx]
	}
	return v.Content
}

func (v *MemView) ScopeName(offset int) string { return v.Scope }

func (v *MemView) SetSyntax(identifier string) { v.Syntax = identifier }
