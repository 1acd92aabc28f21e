package namegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transform rewrites a rendered string. Transforms used with Decorate must
// preserve rune length and keep distinct inputs distinct, otherwise the
// decorated node's Count and length bounds no longer describe its output.
type Transform func(string) string

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(upper)
	b.WriteString(s[size:])
	return b.String()
}

// Reverse reverses the order of runes.
func Reverse(s string) string {
	if utf8.RuneCountInString(s) < 2 {
		return s
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
