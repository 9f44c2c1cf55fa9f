package matcher

import (
	"io"
	"log/slog"
	"testing"

	"github.com/autosyntax/autosyntax/pkg/pattern"
	"github.com/autosyntax/autosyntax/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func entry(t *testing.T, syntax string, patterns ...string) *types.SyntaxEntry {
	t.Helper()
	e := &types.SyntaxEntry{Syntax: syntax}
	for _, src := range patterns {
		p, err := pattern.Compile(src)
		require.NoError(t, err)
		e.Patterns = append(e.Patterns, p)
	}
	return e
}

func TestMatch_FirstEntryWins(t *testing.T) {
	m := New([]*types.SyntaxEntry{
		entry(t, "User/Python.sublime-syntax", `^#!.*python`),
		entry(t, "Packages/Python/Python.sublime-syntax", `^#!.*python`),
	}, discardLogger())

	syntax, ok := m.Match("#!/usr/bin/env python3")
	require.True(t, ok)
	assert.Equal(t, "User/Python.sublime-syntax", syntax)
}

func TestMatch_PatternsTriedInOrder(t *testing.T) {
	m := New([]*types.SyntaxEntry{
		entry(t, "Shell", `^#!.*zsh`, `^#!.*bash`),
	}, discardLogger())

	syntax, ok := m.Match("#!/bin/bash")
	require.True(t, ok)
	assert.Equal(t, "Shell", syntax)
}

func TestMatch_NoMatch(t *testing.T) {
	m := New([]*types.SyntaxEntry{
		entry(t, "Python", `^#!.*python`),
	}, discardLogger())

	_, ok := m.Match("plain text first line")
	assert.False(t, ok)
}

func TestMatch_EmptyTable(t *testing.T) {
	m := New(nil, discardLogger())

	_, ok := m.Match("#!/usr/bin/env python3")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMatch_LaterEntryWhenEarlierMisses(t *testing.T) {
	m := New([]*types.SyntaxEntry{
		entry(t, "Ruby", `^#!.*ruby`),
		entry(t, "PHP", `^<\?php`),
	}, discardLogger())

	syntax, ok := m.Match(`<?php echo 1;`)
	require.True(t, ok)
	assert.Equal(t, "PHP", syntax)
}
