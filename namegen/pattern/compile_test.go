package pattern

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiv50084/fantasyname/namegen"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

// candidateStats computes count and rune-length bounds for a symbol straight
// from the table, so expectations track the data instead of hardcoding it.
func candidateStats(t *testing.T, table symbols.Table, symbol rune) (count, minLen, maxLen int) {
	t.Helper()
	candidates, ok := table.Lookup(symbol)
	require.True(t, ok, "symbol %q not in table", symbol)

	count = len(candidates)
	minLen = utf8.RuneCountInString(candidates[0])
	maxLen = minLen
	for _, c := range candidates[1:] {
		n := utf8.RuneCountInString(c)
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	return count, minLen, maxLen
}

func TestCompileEmptyPattern(t *testing.T) {
	g, err := Compile("", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, namegen.Text(""), g)
	assert.Equal(t, 1, g.Count())
	assert.Equal(t, []string{""}, g.Enumerate())
}

func TestCompileLiteralGroupsFuse(t *testing.T) {
	split, err := Compile("(ab)(cd)", symbols.Default())
	require.NoError(t, err)
	joined, err := Compile("(abcd)", symbols.Default())
	require.NoError(t, err)

	// Adjacent literal groups collapse to the same single literal.
	assert.Equal(t, namegen.Text("abcd"), split)
	assert.Equal(t, joined, split)
	assert.Equal(t, 1, split.Count())
	assert.Equal(t, 4, split.MinLength())
	assert.Equal(t, 4, split.MaxLength())
	assert.Equal(t, []string{"abcd"}, split.Enumerate())
}

func TestCompileAlternationWithEmptyBranch(t *testing.T) {
	g, err := Compile("(a|b|)", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, 3, g.Count())
	assert.Equal(t, 0, g.MinLength())
	assert.Equal(t, 1, g.MaxLength())
	assert.Equal(t, []string{"a", "b", ""}, g.Enumerate())
}

func TestCompileStackedDecorators(t *testing.T) {
	g, err := Compile("!~(ab)", symbols.Default())
	require.NoError(t, err)

	// Reverse fires first (innermost), then capitalize: "ab" -> "ba" -> "Ba".
	// The result is a plain literal, so rendering is deterministic.
	assert.Equal(t, namegen.Text("Ba"), g)
	for i := 0; i < 10; i++ {
		assert.Equal(t, "Ba", g.Render(nil))
	}
}

func TestCompileSymbolExpansion(t *testing.T) {
	table := symbols.Default()
	g, err := Compile("s", table)
	require.NoError(t, err)

	count, minLen, maxLen := candidateStats(t, table, 's')
	assert.Equal(t, count, g.Count())
	assert.Equal(t, minLen, g.MinLength())
	assert.Equal(t, maxLen, g.MaxLength())

	candidates, _ := table.Lookup('s')
	assert.Equal(t, candidates, g.Enumerate(), "enumeration preserves table order")
}

func TestCompileSymbolWithLiteralSuffix(t *testing.T) {
	table := symbols.Default()
	g, err := Compile("s(dim)", table)
	require.NoError(t, err)

	count, minLen, maxLen := candidateStats(t, table, 's')
	assert.Equal(t, count, g.Count())
	assert.Equal(t, minLen+3, g.MinLength())
	assert.Equal(t, maxLen+3, g.MaxLength())

	for i := 0; i < 25; i++ {
		name := g.Render(nil)
		assert.True(t, len(name) > 3 && name[len(name)-3:] == "dim", "output %q must end in the literal suffix", name)
	}
}

func TestCompileSymbolAlternation(t *testing.T) {
	table := symbols.Default()
	g, err := Compile("<v|V>", table)
	require.NoError(t, err)

	vCount, _, _ := candidateStats(t, table, 'v')
	VCount, _, VMax := candidateStats(t, table, 'V')
	assert.Equal(t, vCount+VCount, g.Count())
	assert.Equal(t, 1, g.MinLength())
	assert.Equal(t, VMax, g.MaxLength())
}

func TestCompileSymbolMissFallsBackToCharacter(t *testing.T) {
	g, err := Compile("q-", symbols.Default())
	require.NoError(t, err)

	// Neither 'q' nor '-' is a symbol; both become literal characters and
	// fuse into one.
	assert.Equal(t, namegen.Text("q-"), g)
}

func TestCompileEmptyTableTreatsEverythingAsLiteral(t *testing.T) {
	g, err := Compile("sVc", symbols.Table{})
	require.NoError(t, err)

	assert.Equal(t, namegen.Text("sVc"), g)
}

func TestCompileDecoratorOnSymbol(t *testing.T) {
	table := symbols.Default()
	g, err := Compile("!v", table)
	require.NoError(t, err)

	candidates, _ := table.Lookup('v')
	want := make([]string, len(candidates))
	for i, c := range candidates {
		want[i] = namegen.Capitalize(c)
	}
	assert.Equal(t, want, g.Enumerate())
}

func TestCompileReverseDecoratorOnSymbol(t *testing.T) {
	table := symbols.Default()
	g, err := Compile("~s", table)
	require.NoError(t, err)

	candidates, _ := table.Lookup('s')
	want := make([]string, len(candidates))
	for i, c := range candidates {
		want[i] = namegen.Reverse(c)
	}
	assert.Equal(t, want, g.Enumerate())
}

func TestCompileDecoratorAppliesToClosedSubgroup(t *testing.T) {
	g, err := Compile("!<a|b>", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, g.Enumerate())
}

func TestCompileDecoratorConsumedByFirstExpansion(t *testing.T) {
	g, err := Compile("<!ab>", symbols.Default())
	require.NoError(t, err)

	// '!' fires on 'a' only; 'b' is added undecorated.
	assert.Equal(t, []string{"Ab"}, g.Enumerate())
}

func TestCompilePendingDecoratorSurvivesBranchSwitch(t *testing.T) {
	g, err := Compile("<!|b>", symbols.Default())
	require.NoError(t, err)

	// The queued capitalize waits across '|' and fires on 'b'.
	assert.Equal(t, []string{"", "B"}, g.Enumerate())
}

func TestCompileUnconsumedDecoratorDiesWithGroup(t *testing.T) {
	g, err := Compile("a<!>b", symbols.Default())
	require.NoError(t, err)

	// The capitalize queued inside the group never fires and must not leak
	// to 'b' after the group closes.
	assert.Equal(t, namegen.Text("ab"), g)
}

func TestCompileDecoratorCharactersAreLiteralInLiteralGroups(t *testing.T) {
	g, err := Compile("(!~)", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, namegen.Text("!~"), g)
}

func TestCompileNestedGroups(t *testing.T) {
	table := symbols.Default()
	g, err := Compile("B<v|(oo)>C", table)
	require.NoError(t, err)

	bCount, bMin, bMax := candidateStats(t, table, 'B')
	vCount, _, _ := candidateStats(t, table, 'v')
	cCount, cMin, cMax := candidateStats(t, table, 'C')

	assert.Equal(t, bCount*(vCount+1)*cCount, g.Count())
	assert.Equal(t, bMin+1+cMin, g.MinLength())
	assert.Equal(t, bMax+2+cMax, g.MaxLength())
}

func TestCompileLiteralGroupInsideSymbolGroup(t *testing.T) {
	g, err := Compile("<(sv)|v>", symbols.Default())
	require.NoError(t, err)

	// "(sv)" is literal even though the surrounding group expands symbols.
	enumerated := g.Enumerate()
	assert.Equal(t, "sv", enumerated[0])
	assert.Len(t, enumerated, 7)
}

func TestCompileMultibytePattern(t *testing.T) {
	g, err := Compile("(élf)", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, namegen.Text("élf"), g)
	assert.Equal(t, 3, g.MinLength(), "lengths count runes, not bytes")
}

func TestCompileDuplicateAlternativesAreKept(t *testing.T) {
	g, err := Compile("(a|a)", symbols.Default())
	require.NoError(t, err)

	assert.Equal(t, 2, g.Count())
	assert.Equal(t, []string{"a", "a"}, g.Enumerate())
}

func TestCompileIsDeterministic(t *testing.T) {
	table := symbols.Default()

	first, err := Compile("!B~V(ok)|<s|v>C", table)
	require.NoError(t, err)
	second, err := Compile("!B~V(ok)|<s|v>C", table)
	require.NoError(t, err)

	assert.Equal(t, first.Count(), second.Count())
	assert.Equal(t, first.MinLength(), second.MinLength())
	assert.Equal(t, first.MaxLength(), second.MaxLength())
	assert.Equal(t, first.Enumerate(), second.Enumerate())
}

func TestCompiledOutputsStayWithinBounds(t *testing.T) {
	table := symbols.Default()
	patterns := []string{
		"sV",
		"!BVC",
		"<B|(el)>Vm",
		"~D(un)d",
		"(the_)!s<v|V>C",
	}

	for _, pat := range patterns {
		t.Run(pat, func(t *testing.T) {
			g, err := Compile(pat, table)
			require.NoError(t, err)

			require.Equal(t, len(g.Enumerate()), g.Count())
			for i := 0; i < 50; i++ {
				n := utf8.RuneCountInString(g.Render(nil))
				assert.GreaterOrEqual(t, n, g.MinLength())
				assert.LessOrEqual(t, n, g.MaxLength())
			}
		})
	}
}
