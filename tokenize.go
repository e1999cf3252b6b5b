package blindsearch

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	// gramSize is the fixed trigram width in characters.
	gramSize = 3

	// padChar fills words shorter than gramSize on the right.
	padChar = "-"
)

// Words splits s into words using Unicode (UAX #29) word boundaries.
// Segments without a letter or number are dropped. That includes emoji and
// other symbols, so "😀😀😀" has no words and no trigrams.
func Words(s string) []string {
	var words []string
	state := -1
	for len(s) > 0 {
		var segment string
		segment, s, state = uniseg.FirstWordInString(s, state)
		if isWord(segment) {
			words = append(words, segment)
		}
	}
	return words
}

// isWord reports whether segment holds at least one letter or digit.
func isWord(segment string) bool {
	return strings.IndexFunc(segment, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}

// Trigrams returns the distinct 3-character windows of every word in s, sorted.
// s is expected to be normalized already; see NGrams for the full pipeline.
//
// Words shorter than three characters are right-padded with '-', so "x"
// yields "x--". Windows are taken over runes, never bytes.
func Trigrams(s string) []string {
	set := trigramSet(s)
	grams := make([]string, 0, len(set))
	for g := range set {
		grams = append(grams, g)
	}
	slices.Sort(grams)
	return grams
}

// NGrams normalizes text and returns its distinct trigrams, sorted.
// Symbols with no Latin form survive Normalize but are dropped by Words,
// so they never contribute trigrams.
func NGrams(text string) []string {
	return Trigrams(Normalize(text))
}

func trigramSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range Words(s) {
		if n := utf8.RuneCountInString(word); n < gramSize {
			word += strings.Repeat(padChar, gramSize-n)
		}
		runes := []rune(word)
		for i := 0; i+gramSize <= len(runes); i++ {
			set[string(runes[i:i+gramSize])] = struct{}{}
		}
	}
	return set
}
