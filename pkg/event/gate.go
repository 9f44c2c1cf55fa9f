// Package event decides whether a host lifecycle event should trigger
// syntax matching. The checks are pure predicates over the settings
// snapshot, the view, and the working-scope filter, ordered cheapest first.
package event

import (
	"log/slog"

	"github.com/autosyntax/autosyntax/pkg/host"
	"github.com/autosyntax/autosyntax/pkg/scope"
	"github.com/autosyntax/autosyntax/pkg/types"
)

// Allow reports whether the gate passes for one event on one view.
//
// Every event checks its listener toggle and the working scope. The
// modified event fires on every keystroke, so it additionally requires a
// single cursor sitting within the first two lines before the scope lookup
// runs; edits deeper in the buffer cannot change the first line.
func Allow(ev types.Event, settings types.Settings, v host.View, filter *scope.Filter, log *slog.Logger) bool {
	if !listenerEnabled(ev, settings, log) {
		return false
	}
	if ev == types.EventModified {
		if v.SelectionCount() != 1 {
			return false
		}
		if v.SelectionRow(0) >= 2 {
			return false
		}
	}
	return filter.Eligible(v.ScopeName(0))
}

// listenerEnabled looks up the event's toggle. The feature is opt-out, so a
// missing flag counts as enabled, with a warning so the user can see why
// matching still fires.
func listenerEnabled(ev types.Event, settings types.Settings, log *slog.Logger) bool {
	enabled, present := settings.Enabled(ev)
	if !present {
		log.Warn("event listener flag not set in user settings (assumed true)",
			"event", string(ev))
		return true
	}
	return enabled
}
