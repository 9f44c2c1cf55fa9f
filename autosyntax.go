// Package autosyntax selects a syntax definition for an editor buffer by
// matching the buffer's first line against an ordered table of patterns.
//
// The table comes from two sources: syntax-definition resources discovered
// through the host (each may declare a first-line-match pattern) and the
// user's syntax_mapping configuration. User entries are placed first, so
// they override discovered ones under the table's first-match-wins rule.
//
// The host owns the event loop. It constructs one Plugin at startup, calls
// UpdateSettings whenever the configuration changes, and calls HandleEvent
// from its lifecycle callbacks:
//
//	plugin := autosyntax.New(index,
//	    autosyntax.WithAlerter(alerter),
//	    autosyntax.WithSettings(settings),
//	)
//	...
//	plugin.HandleEvent(types.EventLoad, view)
//
// Nothing here ever panics or returns an error to the host: malformed
// patterns and resources are logged and skipped, and a broken working-scope
// configuration simply disables matching until it is fixed.
package autosyntax

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/autosyntax/autosyntax/pkg/event"
	"github.com/autosyntax/autosyntax/pkg/host"
	"github.com/autosyntax/autosyntax/pkg/mapping"
	"github.com/autosyntax/autosyntax/pkg/matcher"
	"github.com/autosyntax/autosyntax/pkg/scope"
	"github.com/autosyntax/autosyntax/pkg/types"
)

// LoggerName labels this plugin's records in the host's shared log stream.
const LoggerName = "AutoSetSyntax"

// Plugin is the host-facing entry point. All methods are safe for
// concurrent use; the host may dispatch callbacks for different buffers on
// a non-blocking queue.
type Plugin struct {
	log   *slog.Logger
	alert host.Alerter

	state *mapping.State
	scope *scope.Filter

	mu       sync.RWMutex
	settings types.Settings
	matcher  *matcher.Matcher
}

type config struct {
	log            *slog.Logger
	alert          host.Alerter
	settings       types.Settings
	keepDuplicates bool
}

// Option configures a Plugin.
type Option func(*config)

// WithLogger routes diagnostics to the given logger. Defaults to
// slog.Default, named with LoggerName.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithAlerter sets the surface for user-visible error notifications, such
// as a broken working_scope pattern. Defaults to a no-op.
func WithAlerter(alert host.Alerter) Option {
	return func(c *config) { c.alert = alert }
}

// WithSettings sets the initial configuration snapshot. Defaults to
// types.DefaultSettings.
func WithSettings(settings types.Settings) Option {
	return func(c *config) { c.settings = settings }
}

// WithKeepDuplicates retains every discovered resource even when several
// share a logical name across extensions. By default only the
// highest-priority extension's file is kept.
func WithKeepDuplicates() Option {
	return func(c *config) { c.keepDuplicates = true }
}

// New builds a Plugin, discovering the host's syntax resources once and
// applying the initial settings. Discovery failures are logged per resource
// and never abort construction.
func New(index host.ResourceIndex, opts ...Option) *Plugin {
	cfg := &config{
		settings: types.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default().With("logger", LoggerName)
	}
	if cfg.alert == nil {
		cfg.alert = host.NopAlerter()
	}

	discovered := mapping.BuildDiscovered(index, !cfg.keepDuplicates, cfg.log)

	p := &Plugin{
		log:   cfg.log,
		alert: cfg.alert,
		state: mapping.NewState(discovered),
		scope: &scope.Filter{},
	}
	p.UpdateSettings(cfg.settings)
	return p
}

// UpdateSettings applies a fresh configuration snapshot: the user half of
// the mapping table is rebuilt, the working-scope filter recompiled, and
// both swapped in atomically with respect to HandleEvent. The host calls
// this from its settings-change notification.
func (p *Plugin) UpdateSettings(settings types.Settings) {
	p.state.RebuildUser(settings, p.log)
	m := matcher.New(p.state.Value(), p.log)

	if err := p.scope.Recompile(settings.WorkingScope); err != nil {
		msg := fmt.Sprintf("regex compilation failed in user settings %q: %s",
			"working_scope", settings.WorkingScope)
		p.log.Error(msg, "error", err)
		p.alert.ErrorMessage(msg)
	}

	p.mu.Lock()
	p.settings = settings
	p.matcher = m
	p.mu.Unlock()
}

// HandleEvent runs the gate for one lifecycle event and, if it passes,
// matches the view's first line and applies the winning syntax. A view
// whose first line matches nothing is left untouched.
func (p *Plugin) HandleEvent(ev types.Event, v host.View) {
	p.mu.RLock()
	settings := p.settings
	m := p.matcher
	p.mu.RUnlock()

	if !event.Allow(ev, settings, v, p.scope, p.log) {
		return
	}

	line := truncate(v.FirstLine(), settings.FirstLineLengthMax)
	if syntax, ok := m.Match(line); ok {
		v.SetSyntax(syntax)
	}
}

// Detect runs the first-line scan without any event gating and returns the
// winning syntax identifier, if any. The sample is truncated the same way
// HandleEvent truncates it.
func (p *Plugin) Detect(firstLine string) (string, bool) {
	p.mu.RLock()
	settings := p.settings
	m := p.matcher
	p.mu.RUnlock()

	return m.Match(truncate(firstLine, settings.FirstLineLengthMax))
}

// Mappings returns a snapshot of the current table: user entries first,
// then discovered entries.
func (p *Plugin) Mappings() []*types.SyntaxEntry {
	return p.state.Value()
}

// WorkingScopeEnabled reports whether a valid working-scope pattern is
// installed. False means every event is currently gated off.
func (p *Plugin) WorkingScopeEnabled() bool {
	return p.scope.Enabled()
}

// Settings returns the current configuration snapshot.
func (p *Plugin) Settings() types.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// Close exists for symmetry with host plugin lifecycles; the plugin holds
// no releasable resources.
func (p *Plugin) Close() error { return nil }

// truncate caps the first-line sample at max characters. A negative max
// means unbounded.
func truncate(line string, max int) string {
	if max < 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max])
}
