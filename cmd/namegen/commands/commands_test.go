package commands

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiv50084/fantasyname/config"
	"github.com/shiv50084/fantasyname/errors"
	"github.com/shiv50084/fantasyname/namegen/pattern"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

func TestPatternFromArgs(t *testing.T) {
	cfg := &config.Config{Pattern: "!BVC"}

	assert.Equal(t, "sss", patternFromArgs([]string{"sss"}, cfg))
	assert.Equal(t, "!BVC", patternFromArgs(nil, cfg))
	assert.Equal(t, "!BVC", patternFromArgs([]string{""}, cfg))
}

func TestRenderBatch(t *testing.T) {
	gen, err := pattern.Compile("(orc)", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, "orc orc orc", renderBatch(gen, 3, " ", nil))
	assert.Equal(t, "orc", renderBatch(gen, 1, "\n", nil))
}

func TestRenderBatchSeedDeterminism(t *testing.T) {
	gen, err := pattern.Compile("!BVC", symbols.Default())
	require.NoError(t, err)

	first := renderBatch(gen, 10, "\n", rand.New(rand.NewPCG(42, 42)))
	second := renderBatch(gen, 10, "\n", rand.New(rand.NewPCG(42, 42)))

	assert.Equal(t, first, second)
}

func TestEffectiveTableBuiltinOnly(t *testing.T) {
	table, err := effectiveTable("")
	require.NoError(t, err)

	assert.Equal(t, symbols.Default().Len(), table.Len())
}

func TestEffectiveTableLayersFile(t *testing.T) {
	table, err := effectiveTable("testdata/extra.toml")
	require.NoError(t, err)

	candidates, ok := table.Lookup('x')
	require.True(t, ok)
	assert.Equal(t, []string{"ael", "ith", "wen"}, candidates)

	// File symbols win over built-in ones
	vowels, ok := table.Lookup('v')
	require.True(t, ok)
	assert.Equal(t, []string{"a", "e"}, vowels)

	// Untouched built-in symbols survive
	_, ok = table.Lookup('s')
	assert.True(t, ok)
}

func TestEffectiveTableMissingFile(t *testing.T) {
	_, err := effectiveTable("testdata/does-not-exist.toml")
	require.Error(t, err)
	assert.True(t, errors.IsTableNotFoundError(err))
}

func TestTableInfos(t *testing.T) {
	table := symbols.Default()
	infos := tableInfos(table, 3)

	require.Len(t, infos, table.Len())

	// Ascending symbol order puts capitals before lowercase
	assert.Equal(t, "B", infos[0].Symbol)
	assert.Equal(t, "v", infos[len(infos)-1].Symbol)

	for _, info := range infos {
		symbol := []rune(info.Symbol)[0]
		candidates, ok := table.Lookup(symbol)
		require.True(t, ok)

		assert.Equal(t, len(candidates), info.Candidates)
		assert.LessOrEqual(t, len(info.Samples), 3)
		assert.NotEmpty(t, info.Description)
	}
}

func TestTableInfosSamplesClamped(t *testing.T) {
	table := symbols.Table{}.With('x', "one")

	infos := tableInfos(table, 5)
	require.Len(t, infos, 1)
	assert.Equal(t, []string{"one"}, infos[0].Samples)
}
