// Package host models the editor surfaces the plugin depends on. The real
// editor supplies these at runtime; the package also ships a filesystem
// backed ResourceIndex and an in-memory View for the CLI harness and tests.
package host

// ResourceIndex enumerates and loads syntax-definition resources known to
// the host. Enumeration is assumed expensive; callers cache its results.
type ResourceIndex interface {
	// FindResources returns the resource names whose base name matches the
	// glob pattern, e.g. "*.sublime-syntax", in the host's discovery order.
	FindResources(pattern string) []string

	// LoadResource returns the decoded text content of a resource.
	LoadResource(name string) (string, error)
}

// View is one editor buffer as the plugin sees it.
type View interface {
	// SelectionCount returns the number of active cursors.
	SelectionCount() int

	// SelectionRow returns the 0-indexed row of the i-th cursor.
	SelectionRow(i int) int

	// FirstLine returns the full text of the buffer's first line, without
	// the trailing newline.
	FirstLine() string

	// ScopeName returns the host's scope classification at a buffer
	// offset, e.g. "text.plain ".
	ScopeName(offset int) string

	// SetSyntax asks the host to switch the buffer's active syntax
	// definition to the given identifier.
	SetSyntax(identifier string)
}

// Alerter renders user-visible error notifications.
type Alerter interface {
	ErrorMessage(msg string)
}

// AlerterFunc adapts a function to the Alerter interface.
type AlerterFunc func(msg string)

func (f AlerterFunc) ErrorMessage(msg string) { f(msg) }

// NopAlerter discards notifications. Used when the host provides no alert
// surface (tests, CLI).
func NopAlerter() Alerter {
	return AlerterFunc(func(string) {})
}
