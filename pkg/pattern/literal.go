package pattern

import "strings"

// requiredLiteral derives a literal fragment that must appear, contiguously,
// in any text matched by the pattern. It is deliberately conservative: when
// in doubt it returns "", which prefilters treat as "always evaluate".
//
// The walk only trusts top-level literal runs. Groups and character classes
// contribute nothing, a quantifier ends the current run (adjacency across it
// cannot be trusted), and a top-level alternation disqualifies the whole
// pattern.
func requiredLiteral(src string) string {
	if hasGlobalFlags(src) {
		return ""
	}

	var (
		candidates []string
		run        []byte
	)
	endRun := func() {
		if len(run) > 0 {
			candidates = append(candidates, string(run))
			run = run[:0]
		}
	}

	i := 0
	n := len(src)

	// literal consumes a quantifier following the literal char c, if any.
	// A min-zero quantifier makes c optional; a min-one quantifier keeps c
	// but ends the run, since the text repeated after c is unknown.
	literal := func(c byte) bool {
		if i < n && quantified(src, i) {
			min, ok := quantMin(src, i)
			if !ok {
				return false
			}
			i = skipQuantifier(src, i)
			if min >= 1 {
				run = append(run, c)
			}
			endRun()
			return true
		}
		run = append(run, c)
		return true
	}

	for i < n {
		c := src[i]
		switch c {
		case '|':
			// Top-level alternation: no single branch is required.
			return ""
		case '(':
			end, ok := skipGroup(src, i)
			if !ok {
				return ""
			}
			i = end
			endRun()
			i = skipQuantifier(src, i)
		case '[':
			end, ok := skipClass(src, i)
			if !ok {
				return ""
			}
			i = end
			endRun()
			i = skipQuantifier(src, i)
		case ')', '?', '*', '+', '{':
			// Unbalanced close or dangling quantifier; bail out.
			return ""
		case '.', '^', '$':
			endRun()
			i++
			i = skipQuantifier(src, i)
		case '\\':
			if i+1 >= n {
				return ""
			}
			esc := src[i+1]
			i += 2
			if isMetaEscape(esc) {
				endRun()
				i = skipQuantifier(src, i)
				continue
			}
			if !literal(esc) {
				return ""
			}
		default:
			i++
			if !literal(c) {
				return ""
			}
		}
	}
	endRun()

	best := ""
	for _, cand := range candidates {
		if len(cand) >= 2 && len(cand) > len(best) {
			best = cand
		}
	}
	return best
}

// hasGlobalFlags reports whether src carries inline flags that change
// matching globally in ways the byte-exact prefilter cannot honor
// (case-insensitive or extended whitespace mode).
func hasGlobalFlags(src string) bool {
	for i := 0; i+2 < len(src); i++ {
		if src[i] != '(' || src[i+1] != '?' {
			continue
		}
		for j := i + 2; j < len(src); j++ {
			c := src[j]
			if c == 'i' || c == 'x' {
				return true
			}
			if !isFlagChar(c) {
				break
			}
		}
	}
	return false
}

func isFlagChar(c byte) bool {
	return c == 'm' || c == 's' || c == 'n' || c == 'U' || c == '-'
}

// isMetaEscape reports whether \c denotes a character class, anchor, or
// reference rather than a literal character.
func isMetaEscape(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true // backreference or octal
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true // \d \w \s \b \A \z \n \t and friends
	}
	return false
}

// quantified reports whether position i starts a quantifier.
func quantified(src string, i int) bool {
	if i >= len(src) {
		return false
	}
	switch src[i] {
	case '?', '*', '+', '{':
		return true
	}
	return false
}

// quantMin returns the minimum repetition count of the quantifier at i.
func quantMin(src string, i int) (int, bool) {
	switch src[i] {
	case '?', '*':
		return 0, true
	case '+':
		return 1, true
	case '{':
		j := strings.IndexByte(src[i:], '}')
		if j < 0 {
			return 0, false
		}
		body := src[i+1 : i+j]
		if comma := strings.IndexByte(body, ','); comma >= 0 {
			body = body[:comma]
		}
		min := 0
		for _, d := range body {
			if d < '0' || d > '9' {
				return 0, false
			}
			min = min*10 + int(d-'0')
			if min > 1 {
				return min, true
			}
		}
		return min, true
	}
	return 0, false
}

// skipQuantifier advances past a quantifier (with optional lazy or
// possessive suffix) at position i, if any.
func skipQuantifier(src string, i int) int {
	if i >= len(src) {
		return i
	}
	switch src[i] {
	case '?', '*', '+':
		i++
	case '{':
		j := strings.IndexByte(src[i:], '}')
		if j < 0 {
			return len(src)
		}
		i += j + 1
	default:
		return i
	}
	if i < len(src) && (src[i] == '?' || src[i] == '+') {
		i++
	}
	return i
}

// skipGroup advances past the group opening at src[i] == '(' and returns the
// index just after its matching ')'.
func skipGroup(src string, i int) (int, bool) {
	depth := 0
	for ; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			end, ok := skipClass(src, i)
			if !ok {
				return 0, false
			}
			i = end - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// skipClass advances past the character class opening at src[i] == '[' and
// returns the index just after its closing ']'.
func skipClass(src string, i int) (int, bool) {
	i++ // consume '['
	if i < len(src) && src[i] == '^' {
		i++
	}
	if i < len(src) && src[i] == ']' {
		i++ // leading ']' is a literal member
	}
	for ; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case ']':
			return i + 1, true
		}
	}
	return 0, false
}
