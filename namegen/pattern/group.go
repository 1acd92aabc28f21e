package pattern

import "github.com/shiv50084/fantasyname/namegen"

// groupKind distinguishes how plain characters inside a group are read.
type groupKind int

const (
	// symbolGroup expands characters through the symbol table.
	symbolGroup groupKind = iota
	// literalGroup takes every character at face value.
	literalGroup
)

func (k groupKind) String() string {
	if k == literalGroup {
		return "literal"
	}
	return "symbol"
}

// closer returns the bracket that closes this kind of group.
func (k groupKind) closer() rune {
	if k == literalGroup {
		return ')'
	}
	return '>'
}

// group accumulates one bracketed section of a pattern while it is open.
// Each branch collects the generators between two '|' separators; pending
// holds decorators waiting for the next generator added on the active branch.
type group struct {
	kind       groupKind
	openIndex  int  // rune index of the opening bracket; -1 for the implicit outer group
	openOffset int  // byte offset of the opening bracket
	openRune   rune // '<' or '('; 0 for the implicit outer group
	branches   [][]namegen.Generator
	pending    []namegen.Transform
}

func newGroup(kind groupKind, index, offset int, opener rune) *group {
	return &group{
		kind:       kind,
		openIndex:  index,
		openOffset: offset,
		openRune:   opener,
		branches:   make([][]namegen.Generator, 1),
	}
}

// nextBranch starts a new alternative. Pending decorators survive the switch;
// they apply to the next generator added, whichever branch it lands on.
func (g *group) nextBranch() {
	g.branches = append(g.branches, nil)
}

// pushTransform queues a one-shot decorator for the next generator added.
func (g *group) pushTransform(t namegen.Transform) {
	g.pending = append(g.pending, t)
}

// add appends gen to the active branch, first wrapping it in any pending
// decorators. The most recently pushed decorator applies innermost.
func (g *group) add(gen namegen.Generator) {
	for i := len(g.pending) - 1; i >= 0; i-- {
		gen = namegen.Decorate(gen, g.pending[i])
	}
	g.pending = g.pending[:0]

	last := len(g.branches) - 1
	g.branches[last] = append(g.branches[last], gen)
}

// emit folds the group into a single generator: each branch becomes a
// sequence and the branches become a choice. Decorators still pending here
// never received a generator and are dropped with the group.
func (g *group) emit() namegen.Generator {
	alternatives := make([]namegen.Generator, len(g.branches))
	for i, branch := range g.branches {
		alternatives[i] = namegen.Sequence(branch...)
	}
	return namegen.Choice(alternatives...)
}
