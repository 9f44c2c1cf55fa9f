package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExtract_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Ruby.sublime-syntax",
		"%YAML 1.2\n---\nname: Ruby\nfirst_line_match: '^#!.*ruby'\ncontexts:\n  main: []\n")

	cmd, buf := newTestCmd()
	require.NoError(t, runExtract(cmd, []string{path}))
	assert.Equal(t, "^#!.*ruby\n", buf.String())
}

func TestRunExtract_Plist(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "PHP.tmLanguage",
		"<plist><dict><key>firstLineMatch</key>\n<string>^<\\?php</string></dict></plist>")

	cmd, buf := newTestCmd()
	require.NoError(t, runExtract(cmd, []string{path}))
	assert.Equal(t, "^<\\?php\n", buf.String())
}

func TestRunExtract_NoDeclaration(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Plain.sublime-syntax",
		"%YAML 1.2\n---\nname: Plain\ncontexts:\n  main: []\n")

	cmd, buf := newTestCmd()
	require.NoError(t, runExtract(cmd, []string{path}))
	assert.Contains(t, buf.String(), "no first-line match declared")
}

func TestRunExtract_MissingFile(t *testing.T) {
	cmd, _ := newTestCmd()
	err := runExtract(cmd, []string{"/does/not/exist.sublime-syntax"})
	require.Error(t, err)
}
