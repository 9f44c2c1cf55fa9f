// Package matcher performs the ordered first-line scan over the mapping
// table. The scan is linear and deterministic: entries in table order,
// patterns in entry order, first hit wins.
package matcher

import (
	"log/slog"

	"github.com/autosyntax/autosyntax/pkg/prefilter"
	"github.com/autosyntax/autosyntax/pkg/types"
)

// Matcher scans first lines against a fixed snapshot of the mapping table.
// It is immutable once built; rebuild it whenever the table changes.
type Matcher struct {
	entries []*types.SyntaxEntry
	pre     *prefilter.Prefilter
	log     *slog.Logger
}

// New builds a Matcher over a table snapshot.
func New(entries []*types.SyntaxEntry, log *slog.Logger) *Matcher {
	return &Matcher{
		entries: entries,
		pre:     prefilter.New(entries),
		log:     log,
	}
}

// Match returns the syntax identifier of the first entry with a pattern
// matching firstLine, or "" and false when nothing matches. Pattern
// evaluation errors (timeouts) count as non-matches.
func (m *Matcher) Match(firstLine string) (string, bool) {
	for _, i := range m.pre.Candidates(firstLine) {
		entry := m.entries[i]
		for _, p := range entry.Patterns {
			ok, err := p.Match(firstLine)
			if err != nil {
				m.log.Debug("pattern evaluation failed",
					"syntax", entry.Syntax, "pattern", p.Source(), "error", err)
				continue
			}
			if ok {
				return entry.Syntax, true
			}
		}
	}
	return "", false
}

// Len returns the number of table entries the matcher scans.
func (m *Matcher) Len() int { return len(m.entries) }
