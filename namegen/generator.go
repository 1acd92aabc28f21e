package namegen

import (
	"math/rand/v2"
	"unicode/utf8"
)

// Generator is the capability contract shared by every node in a template
// tree. Implementations are immutable and safe for concurrent use.
type Generator interface {
	// Render produces a single output, drawing randomness from rng. A nil
	// rng falls back to the shared process-wide source.
	Render(rng Source) string

	// Count reports the number of distinct outputs Render can produce.
	// It always matches len(Enumerate()).
	Count() int

	// MinLength reports the length in runes of the shortest possible output.
	MinLength() int

	// MaxLength reports the length in runes of the longest possible output.
	MaxLength() int

	// Enumerate lists every distinct output in deterministic order.
	// Duplicates are possible when alternatives overlap; they are not
	// collapsed, so len(Enumerate()) always equals Count().
	Enumerate() []string
}

// Source supplies uniform random integers to Render. *rand.Rand from
// math/rand/v2 satisfies it directly.
type Source interface {
	// IntN returns a uniform random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// sharedSource routes picks through the top-level math/rand/v2 functions,
// which are goroutine-safe.
type sharedSource struct{}

func (sharedSource) IntN(n int) int { return rand.IntN(n) }

// Text is a fixed-string generator and the leaf node of every template tree.
// Plain strings convert directly: Text("elf") is a ready-to-use Generator.
type Text string

// Render returns the string itself. The random source is never consumed.
func (t Text) Render(Source) string { return string(t) }

// Count reports 1; a fixed string has exactly one output.
func (t Text) Count() int { return 1 }

// MinLength reports the rune length of the string.
func (t Text) MinLength() int { return utf8.RuneCountInString(string(t)) }

// MaxLength reports the rune length of the string.
func (t Text) MaxLength() int { return utf8.RuneCountInString(string(t)) }

// Enumerate returns the string as a single-element slice.
func (t Text) Enumerate() []string { return []string{string(t)} }

// Literal returns a generator that always produces s.
func Literal(s string) Generator { return Text(s) }
