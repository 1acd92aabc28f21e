// Package pattern compiles name templates into generator trees.
//
// # Grammar
//
// A pattern is a flat string mixing plain characters with seven structural
// runes:
//
//	<...>   symbol group: characters expand through the symbol table
//	(...)   literal group: characters stand for themselves
//	|       separates alternatives inside any group
//	!       capitalize the next expansion (symbol groups only)
//	~       reverse the next expansion (symbol groups only)
//
// The pattern as a whole is an implicit symbol group, so symbols work at the
// top level without brackets. Groups nest to any depth and either kind may
// appear inside the other.
//
// For example, with the built-in table:
//
//	sV      a syllable followed by a vowel combination
//	!BVC    a capitalized consonant cluster, then vowels, then a closer
//	(the )s a literal "the " prefix before a syllable
//	<d|i>m  silly or insulting, then something mushy
//
// # Decorators
//
// '!' and '~' queue up and fire once, on the next character expansion or
// closed subgroup on their branch. Stacked decorators apply most recent
// first: "!~(ab)" reverses "ab" and then capitalizes, producing "Ba".
//
// # Errors
//
// Compile reports three failure shapes, each carrying the rune index and
// byte offset of the problem: a closing bracket with no open group, a
// closing bracket of the wrong kind, and a group still open when the
// pattern ends. All three wrap a package sentinel so that errors.Is can
// distinguish them.
package pattern
