package mapping

import (
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/autosyntax/autosyntax/pkg/host"
	"github.com/autosyntax/autosyntax/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildUser_PreservesOrder(t *testing.T) {
	settings := types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "Packages/Ruby/Ruby.sublime-syntax", Patterns: []string{`^#!.*ruby`}},
			{Syntax: "Packages/Python/Python.sublime-syntax", Patterns: []string{`^#!.*python`, `^# -\*- python`}},
		},
	}

	entries := BuildUser(settings, discardLogger())

	require.Len(t, entries, 2)
	assert.Equal(t, "Packages/Ruby/Ruby.sublime-syntax", entries[0].Syntax)
	assert.Equal(t, "Packages/Python/Python.sublime-syntax", entries[1].Syntax)
	assert.Len(t, entries[1].Patterns, 2)
}

func TestBuildUser_DropsInvalidPatternsIndividually(t *testing.T) {
	settings := types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "Packages/X/X.sublime-syntax", Patterns: []string{`([bad`, `^good`}},
		},
	}

	entries := BuildUser(settings, discardLogger())

	require.Len(t, entries, 1)
	require.Len(t, entries[0].Patterns, 1)
	assert.Equal(t, `^good`, entries[0].Patterns[0].Source())
}

func TestBuildUser_OmitsEmptyEntries(t *testing.T) {
	settings := types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "Packages/Broken/Broken.sublime-syntax", Patterns: []string{`([bad`, `)(worse`}},
			{Syntax: "Packages/OK/OK.sublime-syntax", Patterns: []string{`^ok`}},
		},
	}

	entries := BuildUser(settings, discardLogger())

	require.Len(t, entries, 1)
	assert.Equal(t, "Packages/OK/OK.sublime-syntax", entries[0].Syntax)
}

func TestBuildDiscovered(t *testing.T) {
	fsys := fstest.MapFS{
		"Packages/Ruby/Ruby.sublime-syntax": &fstest.MapFile{Data: []byte(
			"%YAML 1.2\n---\nname: Ruby\nfirst_line_match: '^#!.*ruby'\ncontexts:\n  main: []\n")},
		"Packages/PHP/PHP.tmLanguage": &fstest.MapFile{Data: []byte(
			"<plist><dict><key>firstLineMatch</key>\n<string>^<\\?php</string></dict></plist>")},
		"Packages/Plain/Plain.sublime-syntax": &fstest.MapFile{Data: []byte(
			"%YAML 1.2\n---\nname: Plain\ncontexts:\n  main: []\n")},
	}

	entries := BuildDiscovered(host.NewDirIndex(fsys), true, discardLogger())

	// Plain declares no first-line match and contributes nothing. The
	// sublime-syntax extension is discovered before tmLanguage.
	require.Len(t, entries, 2)
	assert.Equal(t, "Packages/Ruby/Ruby.sublime-syntax", entries[0].Syntax)
	assert.Equal(t, "Packages/PHP/PHP.tmLanguage", entries[1].Syntax)
	for _, e := range entries {
		assert.NotEmpty(t, e.Patterns)
	}
}

func TestBuildDiscovered_SkipsBadResources(t *testing.T) {
	fsys := fstest.MapFS{
		// Malformed YAML header containing the field substring.
		"Bad/Bad.sublime-syntax": &fstest.MapFile{Data: []byte(
			"%YAML 1.2\n---\nfirst_line_match: [oops\n  x: {{\n")},
		// Uncompilable declared pattern.
		"Worse/Worse.sublime-syntax": &fstest.MapFile{Data: []byte(
			"%YAML 1.2\n---\nfirst_line_match: '([unclosed'\ncontexts:\n")},
		"Good/Good.sublime-syntax": &fstest.MapFile{Data: []byte(
			"%YAML 1.2\n---\nfirst_line_match: '^#!.*lua'\ncontexts:\n")},
	}

	entries := BuildDiscovered(host.NewDirIndex(fsys), true, discardLogger())

	require.Len(t, entries, 1)
	assert.Equal(t, "Good/Good.sublime-syntax", entries[0].Syntax)
}

func TestState_UserPrecedesDiscovered(t *testing.T) {
	fsys := fstest.MapFS{
		"Packages/Python/Python.sublime-syntax": &fstest.MapFile{Data: []byte(
			"%YAML 1.2\n---\nfirst_line_match: '^#!.*python'\ncontexts:\n")},
	}
	state := NewState(BuildDiscovered(host.NewDirIndex(fsys), true, discardLogger()))

	state.RebuildUser(types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "Packages/User/MyPython.sublime-syntax", Patterns: []string{`^#!.*python`}},
		},
	}, discardLogger())

	entries := state.Value()
	require.Len(t, entries, 2)
	assert.Equal(t, "Packages/User/MyPython.sublime-syntax", entries[0].Syntax)
	assert.Equal(t, "Packages/Python/Python.sublime-syntax", entries[1].Syntax)
	assert.Equal(t, 2, state.Len())
}

func TestState_RebuildReplacesUserHalf(t *testing.T) {
	state := NewState(nil)

	state.RebuildUser(types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "A", Patterns: []string{`^a`}},
			{Syntax: "B", Patterns: []string{`^b`}},
		},
	}, discardLogger())
	require.Equal(t, 2, state.Len())

	state.RebuildUser(types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "C", Patterns: []string{`^c`}},
		},
	}, discardLogger())

	entries := state.Value()
	require.Len(t, entries, 1)
	assert.Equal(t, "C", entries[0].Syntax)
}

func TestState_ValueIsSnapshot(t *testing.T) {
	state := NewState(nil)
	state.RebuildUser(types.Settings{
		SyntaxMapping: []types.SyntaxPatterns{
			{Syntax: "A", Patterns: []string{`^a`}},
		},
	}, discardLogger())

	snapshot := state.Value()
	state.RebuildUser(types.Settings{}, discardLogger())

	// The earlier snapshot is unaffected by the rebuild.
	require.Len(t, snapshot, 1)
	assert.Equal(t, "A", snapshot[0].Syntax)
	assert.Equal(t, 0, state.Len())
}
