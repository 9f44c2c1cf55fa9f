// Package scope holds the working-scope filter: the single pattern deciding
// whether a buffer is eligible for syntax matching at all.
package scope

import (
	"sync"

	"github.com/autosyntax/autosyntax/pkg/pattern"
)

// Filter is the process-wide working-scope filter. A disabled filter (the
// zero value, or any filter after a failed Recompile) reports every buffer
// ineligible: a broken configuration must never cause syntax churn, so the
// filter fails closed.
type Filter struct {
	mu sync.RWMutex
	p  *pattern.Pattern
}

// Recompile replaces the filter with a freshly compiled pattern in one step.
// On compile failure the filter is disabled and the error returned so the
// caller can log and alert the user.
func (f *Filter) Recompile(src string) error {
	p, err := pattern.Compile(src)

	f.mu.Lock()
	if err != nil {
		f.p = nil
	} else {
		f.p = p
	}
	f.mu.Unlock()

	return err
}

// Eligible reports whether a buffer with the given scope classification may
// be matched. Always false while the filter is disabled.
func (f *Filter) Eligible(scopeName string) bool {
	f.mu.RLock()
	p := f.p
	f.mu.RUnlock()

	if p == nil {
		return false
	}
	ok, err := p.Match(scopeName)
	return err == nil && ok
}

// Enabled reports whether a valid pattern is currently installed.
func (f *Filter) Enabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.p != nil
}
