package pattern

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/shiv50084/fantasyname/errors"
)

// Sentinel errors for the three ways a pattern can be malformed.
// Every *Error returned by Compile wraps exactly one of these, so callers
// can branch with errors.Is without inspecting the struct.
var (
	// ErrUnbalancedClosing indicates a closing bracket with no open group
	ErrUnbalancedClosing = errors.New("unbalanced closing bracket")

	// ErrMismatchedClosing indicates a closing bracket of the wrong kind
	ErrMismatchedClosing = errors.New("mismatched closing bracket")

	// ErrUnclosedGroup indicates a group still open at end of pattern
	ErrUnclosedGroup = errors.New("unclosed group")
)

// ErrorKind categorizes compile errors for programmatic handling
type ErrorKind string

const (
	ErrorKindUnbalancedClosing ErrorKind = "unbalanced_closing"
	ErrorKindMismatchedClosing ErrorKind = "mismatched_closing"
	ErrorKindUnclosedGroup     ErrorKind = "unclosed_group"
)

// sentinelFor maps an error kind to its sentinel.
func sentinelFor(kind ErrorKind) error {
	switch kind {
	case ErrorKindUnbalancedClosing:
		return ErrUnbalancedClosing
	case ErrorKindMismatchedClosing:
		return ErrMismatchedClosing
	case ErrorKindUnclosedGroup:
		return ErrUnclosedGroup
	default:
		return nil
	}
}

// ErrorContext determines how errors are formatted for display
type ErrorContext int

const (
	// ErrorContextTerminal formats errors with ANSI colors and a caret line
	ErrorContextTerminal ErrorContext = iota
	// ErrorContextPlain formats errors as single-line text for logs and APIs
	ErrorContextPlain
)

// Error is a structured compile error with position metadata.
//
// Index and Offset locate the same spot two ways: Index counts runes, which
// matches what a user sees, while Offset counts bytes into the pattern
// string. For unclosed groups they point at the opening bracket that was
// never closed; otherwise they point at the offending rune.
type Error struct {
	Err         error     // Sentinel for the kind
	Kind        ErrorKind // Error category
	Message     string    // Human-readable message
	Pattern     string    // The pattern being compiled
	Index       int       // Rune index of the offending location
	Offset      int       // Byte offset of the same location
	Rune        rune      // The rune at that location
	Suggestions []string  // Possible fixes
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.FormatError(ErrorContextTerminal)
}

// Unwrap for errors.Is/As compatibility
func (e *Error) Unwrap() error {
	return e.Err
}

// FormatError generates a context-appropriate error message
func (e *Error) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextPlain {
		return e.formatPlainError()
	}
	return e.formatTerminalError()
}

// formatPlainError creates a concise error for logs and APIs
func (e *Error) formatPlainError() string {
	msg := e.Message
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (at position %d)", e.Index)
	}
	if e.Rune != 0 {
		msg += fmt.Sprintf(" near %q", e.Rune)
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Suggestions: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// formatTerminalError creates a rich colored error for the terminal
func (e *Error) formatTerminalError() string {
	baseMsg := pterm.Red(e.Message)

	context := ""
	if e.Pattern != "" && e.Index >= 0 {
		context = fmt.Sprintf("\n\n%s", pterm.LightCyan("Pattern:"))
		context += fmt.Sprintf("\n  %s", e.Pattern)
		context += fmt.Sprintf("\n  %s%s", strings.Repeat(" ", e.Index), pterm.Red("^"))
	}
	if e.Index >= 0 {
		context += fmt.Sprintf("\n\n  %s %d (byte %d)", pterm.Yellow("Position:"), e.Index, e.Offset)
	}
	if e.Rune != 0 {
		context += fmt.Sprintf("\n  %s %q", pterm.Yellow("Found:"), e.Rune)
	}

	if len(e.Suggestions) > 0 {
		context += fmt.Sprintf("\n\n%s", pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			context += fmt.Sprintf("\n  • %s", suggestion)
		}
	}

	return fmt.Sprintf("%s%s", baseMsg, context)
}

// Builder pattern for constructing compile errors

// NewError creates a new Error with the given kind and message
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Err:     sentinelFor(kind),
		Kind:    kind,
		Message: message,
		Index:   -1,
		Offset:  -1,
	}
}

// WithPattern records the pattern being compiled
func (e *Error) WithPattern(pattern string) *Error {
	e.Pattern = pattern
	return e
}

// WithPosition records where in the pattern the error occurred
func (e *Error) WithPosition(index, offset int) *Error {
	e.Index = index
	e.Offset = offset
	return e
}

// WithRune records the rune at the error location
func (e *Error) WithRune(r rune) *Error {
	e.Rune = r
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}
