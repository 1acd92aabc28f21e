package pattern

import (
	"fmt"

	"github.com/shiv50084/fantasyname/namegen"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

// Compile translates a pattern into a generator tree, expanding symbols
// through the given table.
//
// The whole pattern behaves as one implicit symbol group: characters at the
// top level expand through the table exactly as they would inside '<' and
// '>'. Compilation is a single forward pass; the returned error, if any, is
// a *Error wrapping one of the package sentinels.
func Compile(pat string, table symbols.Table) (namegen.Generator, error) {
	c := compiler{pattern: pat, table: table}
	return c.compile()
}

// compiler walks the pattern once, maintaining a stack of open groups.
// The bottom of the stack is the implicit outer symbol group; it is never
// popped.
type compiler struct {
	pattern string
	table   symbols.Table
	stack   []*group
}

func (c *compiler) compile() (namegen.Generator, error) {
	c.stack = []*group{newGroup(symbolGroup, -1, -1, 0)}

	index := 0
	for offset, r := range c.pattern {
		if err := c.dispatch(r, index, offset); err != nil {
			return nil, err
		}
		index++
	}

	if len(c.stack) > 1 {
		open := c.top()
		return nil, NewError(ErrorKindUnclosedGroup,
			fmt.Sprintf("unclosed %s group", open.kind)).
			WithPattern(c.pattern).
			WithPosition(open.openIndex, open.openOffset).
			WithRune(open.openRune).
			WithSuggestion(fmt.Sprintf("add %q to close the group opened at position %d", open.kind.closer(), open.openIndex))
	}

	return c.stack[0].emit(), nil
}

// dispatch routes one rune of the pattern. Brackets and '|' are structural
// in every group; '!' and '~' only act inside symbol groups.
func (c *compiler) dispatch(r rune, index, offset int) error {
	top := c.top()

	switch r {
	case '<':
		c.push(newGroup(symbolGroup, index, offset, r))
	case '(':
		c.push(newGroup(literalGroup, index, offset, r))
	case '>':
		return c.close(symbolGroup, r, index, offset)
	case ')':
		return c.close(literalGroup, r, index, offset)
	case '|':
		top.nextBranch()
	case '!':
		if top.kind == symbolGroup {
			top.pushTransform(namegen.Capitalize)
		} else {
			top.add(namegen.Literal(string(r)))
		}
	case '~':
		if top.kind == symbolGroup {
			top.pushTransform(namegen.Reverse)
		} else {
			top.add(namegen.Literal(string(r)))
		}
	default:
		c.addRune(top, r)
	}
	return nil
}

// addRune adds a plain character to the active branch. Inside a symbol group
// the character expands through the table; a miss falls back to the character
// itself. Inside a literal group the character always stands for itself.
func (c *compiler) addRune(top *group, r rune) {
	if top.kind == literalGroup {
		top.add(namegen.Literal(string(r)))
		return
	}

	candidates, ok := c.table.Lookup(r)
	if !ok {
		top.add(namegen.Choice(namegen.Literal(string(r))))
		return
	}

	alternatives := make([]namegen.Generator, len(candidates))
	for i, candidate := range candidates {
		alternatives[i] = namegen.Literal(candidate)
	}
	top.add(namegen.Choice(alternatives...))
}

// close pops the innermost group if it matches the closing bracket and folds
// it into the parent, running the parent's pending decorators over it.
func (c *compiler) close(kind groupKind, r rune, index, offset int) error {
	if len(c.stack) == 1 {
		return NewError(ErrorKindUnbalancedClosing,
			fmt.Sprintf("unexpected %q with no open group", r)).
			WithPattern(c.pattern).
			WithPosition(index, offset).
			WithRune(r).
			WithSuggestion(fmt.Sprintf("remove the stray %q or open a matching group before it", r))
	}

	top := c.top()
	if top.kind != kind {
		return NewError(ErrorKindMismatchedClosing,
			fmt.Sprintf("expected %q to close the %s group opened at position %d, found %q", top.kind.closer(), top.kind, top.openIndex, r)).
			WithPattern(c.pattern).
			WithPosition(index, offset).
			WithRune(r).
			WithSuggestion("pair every '<' with '>' and every '(' with ')'")
	}

	c.stack = c.stack[:len(c.stack)-1]
	c.top().add(top.emit())
	return nil
}

func (c *compiler) push(g *group) {
	c.stack = append(c.stack, g)
}

func (c *compiler) top() *group {
	return c.stack[len(c.stack)-1]
}
