package mapping

import (
	"log/slog"
	"sync"

	"github.com/autosyntax/autosyntax/pkg/types"
)

// State owns the current mapping table. Reads vastly outnumber writes: every
// gated editor event takes a snapshot, while rebuilds happen only on
// configuration changes. Each half is replaced wholesale under the lock, so
// a concurrent reader sees either the old table or the new one, never a
// partially built mix.
type State struct {
	mu         sync.RWMutex
	user       []*types.SyntaxEntry
	discovered []*types.SyntaxEntry
}

// NewState creates a State with the given host-discovered half. The user
// half starts empty until the first RebuildUser.
func NewState(discovered []*types.SyntaxEntry) *State {
	return &State{discovered: discovered}
}

// RebuildUser replaces the user half from a fresh settings snapshot.
func (s *State) RebuildUser(settings types.Settings, log *slog.Logger) {
	user := BuildUser(settings, log)
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Value returns the current table: user entries first (in declaration
// order), then discovered entries (in discovery order). The returned slice
// is a fresh copy and safe to scan without holding any lock.
func (s *State) Value() []*types.SyntaxEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*types.SyntaxEntry, 0, len(s.user)+len(s.discovered))
	entries = append(entries, s.user...)
	entries = append(entries, s.discovered...)
	return entries
}

// Len returns the current number of table entries.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.user) + len(s.discovered)
}
