// Package syntaxdef reads syntax-definition resources: discovering them
// through the host and extracting the first-line-match pattern they declare.
//
// Two formats are recognized. The YAML-based format (.sublime-syntax) opens
// with a "%YAML" directive and declares an optional first_line_match field in
// its header. The plist format (.tmLanguage) is XML and declares an optional
// firstLineMatch key. Neither format is parsed in full; only the one field
// is extracted.
package syntaxdef

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	yamlField   = "first_line_match"
	plistField  = "firstLineMatch"
	contextsKey = "contexts:"
)

// syntaxHeader is the narrow slice of the YAML format this package needs.
type syntaxHeader struct {
	FirstLineMatch string `yaml:"first_line_match"`
}

// plistValueRe captures the string value following a firstLineMatch key.
// Values are non-greedy and may span lines.
var plistValueRe = regexp.MustCompile(`(?s)firstLineMatch</key>\s*<string>(.*?)</string>`)

// FirstLineMatch extracts the declared first-line-match pattern from the
// content of one syntax-definition resource. The boolean reports whether the
// field was present. A non-nil error means the content was malformed; the
// caller logs it and skips the resource.
func FirstLineMatch(content string) (string, bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", false, nil
	}
	if content[0] == '%' {
		return firstLineMatchYAML(content)
	}
	return firstLineMatchPlist(content)
}

func firstLineMatchYAML(content string) (string, bool, error) {
	// The contexts section holds the bulk highlighting rules and can be
	// arbitrarily large; the field we want precedes it.
	if cut := strings.Index(content, contextsKey); cut != -1 {
		content = content[:cut]
	}
	if !strings.Contains(content, yamlField) {
		return "", false, nil
	}

	var header syntaxHeader
	if err := yaml.Unmarshal([]byte(content), &header); err != nil {
		return "", false, fmt.Errorf("parsing syntax header: %w", err)
	}
	if header.FirstLineMatch == "" {
		return "", false, nil
	}
	return header.FirstLineMatch, true, nil
}

func firstLineMatchPlist(content string) (string, bool, error) {
	cut := strings.Index(content, plistField)
	if cut == -1 {
		return "", false, nil
	}
	m := plistValueRe.FindStringSubmatch(content[cut:])
	if m == nil {
		return "", false, nil
	}
	return m[1], true, nil
}
