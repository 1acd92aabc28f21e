// Package namegen provides a small algebra of random text generators used to
// build fantasy-name templates.
//
// # Overview
//
// A name template is modeled as a tree of generators. Every node answers the
// same five questions:
//
//   - Render: produce one output, consuming randomness from a Source
//   - Count: how many distinct outputs the node can produce
//   - MinLength / MaxLength: bounds on output length, measured in runes
//   - Enumerate: every distinct output, in deterministic order
//
// # Node Kinds
//
// Four kinds of node cover the whole algebra:
//
//   - Text: a fixed string, the leaf of every tree
//   - Choice: picks one alternative uniformly at random
//   - Sequence: concatenates its parts left to right
//   - Decorate: applies a string transform to an inner generator
//
// Trees are built through the factory functions Literal, Choice, Sequence and
// Decorate rather than by constructing nodes directly. The factories collapse
// degenerate shapes on the way in: empty sequences become empty literals,
// single-element composites pass through, adjacent literals inside a sequence
// merge into one, and a transform applied to a literal is evaluated
// immediately. Callers therefore never observe wrapper nodes that do no work.
//
// # Determinism
//
// Render consumes randomness only through the Source interface, so callers
// that need reproducible output can pass a seeded *rand.Rand from
// math/rand/v2. Passing a nil Source falls back to the shared process-wide
// source, which is safe for concurrent use.
//
// # Usage Example
//
//	g := namegen.Sequence(
//	    namegen.Decorate(namegen.Choice(
//	        namegen.Literal("bel"),
//	        namegen.Literal("mor"),
//	    ), namegen.Capitalize),
//	    namegen.Literal("adon"),
//	)
//
//	g.Count()       // 2
//	g.Enumerate()   // ["Beladon", "Moradon"]
//	g.Render(nil)   // one of the two, at random
//
// Generators are immutable once built and may be shared freely across
// goroutines.
package namegen
