package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiv50084/fantasyname/namegen/symbols"
)

func TestGenerateTableSource(t *testing.T) {
	table := symbols.Table{}.
		With('x', "ael", "ith").
		With('y', "mor")

	source, err := generateTableSource(table, "testdata/custom.toml", "table_custom.go")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(source,
		"// Code generated by tablegen --input testdata/custom.toml --output table_custom.go. DO NOT EDIT."))
	assert.Contains(t, source, "package symbols")
	assert.Contains(t, source, "func defaultCandidates() map[rune][]string {")
	assert.Contains(t, source, `'x': []string{"ael", "ith"}`)
	assert.Contains(t, source, `'y': []string{"mor"}`)
}

func TestGenerateTableSourceStdoutHeader(t *testing.T) {
	table := symbols.Table{}.With('x', "ael")

	source, err := generateTableSource(table, "in.toml", "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(source,
		"// Code generated by tablegen --input in.toml. DO NOT EDIT."))
}

func TestGenerateTableSourceOrdersSymbols(t *testing.T) {
	// Insertion order differs from rune order; output must sort by rune
	table := symbols.Table{}.
		With('v', "a").
		With('B', "br").
		With('c', "k")

	source, err := generateTableSource(table, "in.toml", "out.go")
	require.NoError(t, err)

	iB := strings.Index(source, "'B':")
	ic := strings.Index(source, "'c':")
	iv := strings.Index(source, "'v':")
	require.NotEqual(t, -1, iB)
	require.NotEqual(t, -1, ic)
	require.NotEqual(t, -1, iv)

	assert.Less(t, iB, ic)
	assert.Less(t, ic, iv)
}

func TestGenerateTableSourceMatchesBuiltin(t *testing.T) {
	// The committed table_default.go must stay in sync with what the tool
	// emits for the canonical TOML definition.
	table, err := symbols.Load("../../namegen/symbols/tables/default.toml")
	require.NoError(t, err)

	source, err := generateTableSource(table, "tables/default.toml", "table_default.go")
	require.NoError(t, err)

	defaults := symbols.Default()
	require.Equal(t, defaults.Len(), table.Len())

	for _, symbol := range defaults.Symbols() {
		want, ok := defaults.Lookup(symbol)
		require.True(t, ok)

		got, ok := table.Lookup(symbol)
		require.True(t, ok)
		assert.Equal(t, want, got, "symbol %q diverged from tables/default.toml", string(symbol))

		assert.Contains(t, source, string(symbol))
	}
}
