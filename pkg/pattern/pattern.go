// Package pattern compiles first-line patterns and the working-scope filter.
//
// Syntax-definition authors write Oniguruma-flavored patterns (lookaround,
// backreferences), so compilation goes through regexp2 rather than the
// standard library: RE2 mode first for safety, then a fallback to full
// Perl-compatible mode for patterns RE2 rejects. A match timeout guards
// against catastrophic backtracking on the keystroke hot path.
package pattern

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single pattern evaluation.
const MatchTimeout = 5 * time.Second

// Pattern is one compiled pattern together with its source text and the
// literal fragment derived from it for prefiltering.
type Pattern struct {
	source  string
	re      *regexp2.Regexp
	literal string
}

// Compile compiles src in RE2 mode, falling back to Perl-compatible mode
// when RE2 rejects it. The returned error carries the original source text.
func Compile(src string) (*Pattern, error) {
	re, err := regexp2.Compile(src, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(src, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", src, err)
		}
	}
	re.MatchTimeout = MatchTimeout

	return &Pattern{
		source:  src,
		re:      re,
		literal: requiredLiteral(src),
	}, nil
}

// MustCompile is Compile for patterns known valid at authoring time.
func MustCompile(src string) *Pattern {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the pattern's source text.
func (p *Pattern) Source() string { return p.source }

// RequiredLiteral returns a literal fragment that must occur in any text the
// pattern matches, or "" when none could be derived. Prefilters may skip
// this pattern whenever the fragment is absent from the input.
func (p *Pattern) RequiredLiteral() string { return p.literal }

// Match reports whether the pattern occurs anywhere in s. A timeout or
// other evaluation error is returned so the caller can log it; callers
// treat it as a non-match.
func (p *Pattern) Match(s string) (bool, error) {
	m, err := p.re.FindStringMatch(s)
	if err != nil {
		return false, fmt.Errorf("matching pattern %q: %w", p.source, err)
	}
	return m != nil, nil
}
