package namegen

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase ascii", input: "goblin", want: "Goblin"},
		{name: "already capitalized", input: "Goblin", want: "Goblin"},
		{name: "single rune", input: "g", want: "G"},
		{name: "empty", input: "", want: ""},
		{name: "first rune multibyte", input: "ñandu", want: "Ñandu"},
		{name: "uncased first rune", input: "'tir", want: "'tir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Capitalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, utf8.RuneCountInString(tt.input), utf8.RuneCountInString(got))
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii", input: "drow", want: "word"},
		{name: "palindrome", input: "ana", want: "ana"},
		{name: "single rune", input: "a", want: "a"},
		{name: "empty", input: "", want: ""},
		{name: "multibyte runes stay intact", input: "ab€", want: "€ba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reverse(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, utf8.RuneCountInString(tt.input), utf8.RuneCountInString(got))
		})
	}
}

func TestReverseRoundTrips(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "élfë", "qu'ën"}
	for _, s := range inputs {
		assert.Equal(t, s, Reverse(Reverse(s)))
	}
}
