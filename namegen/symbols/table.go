// Package symbols maps single-character pattern symbols to ordered candidate
// lists.
//
// A Table tells the pattern compiler what a symbol like 's' or 'V' can expand
// to. The built-in table from Default covers the classic categories
// (syllables, vowels, consonants, clusters and a few novelty sets); custom
// tables load from TOML files and can be layered over the built-in one with
// Merge.
//
// Tables are immutable values. With and Merge return new tables and never
// touch the receiver, so a Table can be shared freely across goroutines.
package symbols

//go:generate go run github.com/shiv50084/fantasyname/cmd/tablegen --input tables/default.toml --output table_default.go

import (
	"slices"
)

// Table maps single-rune symbols to their ordered candidate expansions.
// The zero value is an empty table: every lookup misses.
type Table struct {
	candidates map[rune][]string
}

var defaultTable = Table{candidates: defaultCandidates()}

// Default returns the built-in table. The returned value shares its backing
// data, which is never mutated.
func Default() Table {
	return defaultTable
}

// Lookup returns the candidate list for symbol. The returned slice is shared;
// callers must not modify it.
func (t Table) Lookup(symbol rune) ([]string, bool) {
	candidates, ok := t.candidates[symbol]
	return candidates, ok
}

// With returns a copy of the table where symbol maps to the given candidates,
// replacing any previous mapping.
func (t Table) With(symbol rune, candidates ...string) Table {
	m := make(map[rune][]string, len(t.candidates)+1)
	for r, c := range t.candidates {
		m[r] = c
	}
	m[symbol] = slices.Clone(candidates)
	return Table{candidates: m}
}

// Merge returns a table containing the mappings of both tables. Where both
// define a symbol, other wins.
func (t Table) Merge(other Table) Table {
	if other.Len() == 0 {
		return t
	}
	if t.Len() == 0 {
		return other
	}
	m := make(map[rune][]string, len(t.candidates)+len(other.candidates))
	for r, c := range t.candidates {
		m[r] = c
	}
	for r, c := range other.candidates {
		m[r] = c
	}
	return Table{candidates: m}
}

// Symbols returns every symbol in the table, sorted ascending by rune value.
func (t Table) Symbols() []rune {
	out := make([]rune, 0, len(t.candidates))
	for r := range t.candidates {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of symbols in the table.
func (t Table) Len() int {
	return len(t.candidates)
}
