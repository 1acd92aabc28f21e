package symbols

// descriptions holds the human-readable meaning of each built-in symbol.
// Custom symbols from loaded tables have no entry here.
var descriptions = map[rune]string{
	's': "generic syllable",
	'v': "single vowel",
	'V': "vowel or vowel combination",
	'c': "single consonant",
	'B': "consonant or cluster suited to begin a word",
	'C': "consonant or cluster suited anywhere in a word",
	'i': "insult",
	'm': "mushy name",
	'M': "mushy name ending",
	'D': "consonant suited for a silly name",
	'd': "syllable suited for a silly name",
}

// Describe returns the human-readable meaning of a built-in symbol, or
// "custom" for symbols that only exist in loaded tables.
func Describe(symbol rune) string {
	if desc, ok := descriptions[symbol]; ok {
		return desc
	}
	return "custom"
}
