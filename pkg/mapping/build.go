// Package mapping builds and holds the syntax mapping table: the ordered,
// first-match-wins list of (syntax identifier, compiled patterns) pairs the
// applier scans against a buffer's first line.
//
// The table has two halves. The host-discovered half is computed once per
// process, since enumerating installed packages is expensive and their set
// is static until restart. The user half is rebuilt on every configuration
// change and is placed first, so user mappings override discovered ones.
package mapping

import (
	"log/slog"

	"github.com/autosyntax/autosyntax/pkg/host"
	"github.com/autosyntax/autosyntax/pkg/pattern"
	"github.com/autosyntax/autosyntax/pkg/syntaxdef"
	"github.com/autosyntax/autosyntax/pkg/types"
)

// BuildUser compiles the user-declared syntax_mapping into table entries,
// preserving declaration order. Patterns that fail to compile are logged and
// dropped individually; an entry whose patterns all fail is omitted.
func BuildUser(settings types.Settings, log *slog.Logger) []*types.SyntaxEntry {
	var entries []*types.SyntaxEntry
	for _, sp := range settings.SyntaxMapping {
		var compiled []*pattern.Pattern
		for _, src := range sp.Patterns {
			p, err := pattern.Compile(src)
			if err != nil {
				log.Error("regex compilation failed in user settings",
					"syntax", sp.Syntax, "pattern", src, "error", err)
				continue
			}
			compiled = append(compiled, p)
		}
		if len(compiled) == 0 {
			continue
		}
		entries = append(entries, &types.SyntaxEntry{
			Syntax:   sp.Syntax,
			Patterns: compiled,
		})
	}
	return entries
}

// BuildDiscovered builds table entries from every syntax-definition resource
// the host knows about, in discovery order. Resources without a declared
// first-line match contribute nothing; malformed resources and uncompilable
// patterns are logged and skipped, never aborting the build.
func BuildDiscovered(index host.ResourceIndex, dropDuplicated bool, log *slog.Logger) []*types.SyntaxEntry {
	var entries []*types.SyntaxEntry
	for _, name := range syntaxdef.Discover(index, dropDuplicated) {
		content, err := index.LoadResource(name)
		if err != nil {
			log.Error("loading syntax resource failed", "resource", name, "error", err)
			continue
		}

		src, ok, err := syntaxdef.FirstLineMatch(content)
		if err != nil {
			log.Error("parsing syntax resource failed", "resource", name, "error", err)
			continue
		}
		if !ok {
			continue
		}

		p, err := pattern.Compile(src)
		if err != nil {
			log.Error("regex compilation failed in syntax resource",
				"resource", name, "pattern", src, "error", err)
			continue
		}
		entries = append(entries, &types.SyntaxEntry{
			Syntax:   name,
			Patterns: []*pattern.Pattern{p},
		})
	}
	return entries
}
