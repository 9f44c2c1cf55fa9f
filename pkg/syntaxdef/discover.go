package syntaxdef

import (
	"strings"

	"github.com/autosyntax/autosyntax/pkg/host"
)

// resourceExts lists the recognized syntax-definition extensions, highest
// priority first.
var resourceExts = []string{".sublime-syntax", ".tmLanguage"}

// Extensions returns the recognized syntax-definition extensions in
// priority order.
func Extensions() []string {
	exts := make([]string, len(resourceExts))
	copy(exts, resourceExts)
	return exts
}

// Discover enumerates all syntax-definition resources known to the host,
// highest-priority extension first, preserving the host's discovery order
// within each extension.
//
// With dropDuplicated set, resources sharing a logical name (path minus
// extension) collapse to the highest-priority extension's file: a package
// shipping both Java.sublime-syntax and Java.tmLanguage contributes only
// the former.
func Discover(index host.ResourceIndex, dropDuplicated bool) []string {
	if !dropDuplicated {
		var names []string
		for _, ext := range resourceExts {
			names = append(names, index.FindResources("*"+ext)...)
		}
		return names
	}

	var names []string
	seen := make(map[string]bool)
	for _, ext := range resourceExts {
		for _, name := range index.FindResources("*" + ext) {
			logical := strings.TrimSuffix(name, ext)
			if seen[logical] {
				continue
			}
			seen[logical] = true
			names = append(names, name)
		}
	}
	return names
}
