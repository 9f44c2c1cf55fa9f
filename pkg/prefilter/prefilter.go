// Package prefilter narrows the mapping table before regex evaluation.
//
// Matching runs on keystroke-adjacent events, so the table scan must stay
// cheap even with thousands of entries. Each pattern carries an optional
// required literal (see pattern.RequiredLiteral); a single Aho-Corasick pass
// over the first line selects the entries whose literals occur. Entries with
// any pattern lacking a derivable literal are always selected, so the
// prefilter can produce false positives but never false negatives.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/autosyntax/autosyntax/pkg/types"
)

// Prefilter selects candidate table entries for a given first line.
type Prefilter struct {
	matcher        *ahocorasick.Matcher
	literals       []string         // literal at each dictionary index
	literalEntries map[string][]int // literal -> entry indexes needing it
	always         []bool           // entries checked unconditionally
	size           int
}

// New builds a prefilter over the table entries, in table order.
func New(entries []*types.SyntaxEntry) *Prefilter {
	pf := &Prefilter{
		literalEntries: make(map[string][]int),
		always:         make([]bool, len(entries)),
		size:           len(entries),
	}

	seen := make(map[string]bool)
	for i, entry := range entries {
		for _, p := range entry.Patterns {
			lit := p.RequiredLiteral()
			if lit == "" {
				// One unfilterable pattern makes the whole entry
				// unfilterable: any of its patterns may match.
				pf.always[i] = true
				break
			}
			if !seen[lit] {
				seen[lit] = true
				pf.literals = append(pf.literals, lit)
			}
			pf.literalEntries[lit] = append(pf.literalEntries[lit], i)
		}
	}

	if len(pf.literals) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.literals)
	}
	return pf
}

// Candidates returns the indexes of entries whose patterns might match
// firstLine, in ascending table order so first-match-wins priority is
// preserved. Safe for concurrent use: host events for different buffers
// scan the same table, and ahocorasick.Matcher.Match mutates internal
// state, so the thread-safe variant is required here.
func (pf *Prefilter) Candidates(firstLine string) []int {
	selected := make([]bool, pf.size)
	copy(selected, pf.always)

	if pf.matcher != nil {
		for _, hit := range pf.matcher.MatchThreadSafe([]byte(firstLine)) {
			for _, i := range pf.literalEntries[pf.literals[hit]] {
				selected[i] = true
			}
		}
	}

	var candidates []int
	for i, ok := range selected {
		if ok {
			candidates = append(candidates, i)
		}
	}
	return candidates
}
