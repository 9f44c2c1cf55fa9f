package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SyntaxPatterns is one user-declared mapping: a syntax identifier and the
// first-line patterns that should select it.
type SyntaxPatterns struct {
	Syntax   string   // e.g., "Packages/Python/Python.sublime-syntax"
	Patterns []string // regex source strings, tried in order
}

// Settings is an immutable snapshot of the plugin configuration.
// The host hands a fresh snapshot to Plugin.UpdateSettings on every change.
type Settings struct {
	// SyntaxMapping preserves the declaration order of the configuration
	// document. Order matters: earlier entries win ties.
	SyntaxMapping []SyntaxPatterns

	// WorkingScope classifies eligible buffers, e.g. "^text\\.plain".
	WorkingScope string

	// FirstLineLengthMax caps the first-line sample; negative means unbounded.
	FirstLineLengthMax int

	// EventListeners maps event names to enable flags. Missing entries
	// default to enabled.
	EventListeners map[string]bool
}

// DefaultSettings returns the configuration used when the host provides
// none. Every listener is enumerated explicitly, matching the shipped
// settings document, so default runs never hit the missing-flag warning.
func DefaultSettings() Settings {
	listeners := make(map[string]bool, len(Events()))
	for _, ev := range Events() {
		listeners[string(ev)] = true
	}
	return Settings{
		WorkingScope:       `^text\.plain`,
		FirstLineLengthMax: 80,
		EventListeners:     listeners,
	}
}

// Enabled reports whether the listener for event is switched on.
// A missing entry counts as enabled; the second return value reports
// whether the flag was actually present.
func (s Settings) Enabled(event Event) (enabled, present bool) {
	if s.EventListeners == nil {
		return true, false
	}
	v, ok := s.EventListeners[string(event)]
	if !ok {
		return true, false
	}
	return v, true
}

// settingsJSON mirrors the host's settings document. SyntaxMapping is kept
// raw so its key order can be recovered by hand.
type settingsJSON struct {
	SyntaxMapping      json.RawMessage `json:"syntax_mapping"`
	WorkingScope       *string         `json:"working_scope"`
	FirstLineLengthMax *int            `json:"first_line_length_max"`
	EventListeners     map[string]bool `json:"event_listeners"`
}

// UnmarshalJSON decodes a settings document over the receiver. Fields absent
// from the document keep their current values, so callers typically start
// from DefaultSettings. The syntax_mapping object is decoded token by token
// because encoding/json maps lose key order and order decides match priority.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var doc settingsJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if doc.WorkingScope != nil {
		s.WorkingScope = *doc.WorkingScope
	}
	if doc.FirstLineLengthMax != nil {
		s.FirstLineLengthMax = *doc.FirstLineLengthMax
	}
	if doc.EventListeners != nil {
		s.EventListeners = doc.EventListeners
	}

	if doc.SyntaxMapping != nil {
		mapping, err := decodeOrderedMapping(doc.SyntaxMapping)
		if err != nil {
			return fmt.Errorf("syntax_mapping: %w", err)
		}
		s.SyntaxMapping = mapping
	}
	return nil
}

func decodeOrderedMapping(raw json.RawMessage) ([]SyntaxPatterns, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var mapping []SyntaxPatterns
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		syntax, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", tok)
		}

		var patterns []string
		if err := dec.Decode(&patterns); err != nil {
			return nil, fmt.Errorf("patterns for %s: %w", syntax, err)
		}
		mapping = append(mapping, SyntaxPatterns{Syntax: syntax, Patterns: patterns})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return mapping, nil
}
