package blindsearch

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// specialChars are removed outright, not replaced by a separator, so
// "812-111-7654" becomes the single word "8121117654".
const specialChars = "!@#$%^&*(){}_<>:;,.\"'`|+=/~[]\\-"

// Normalize prepares text for trigram extraction.
//
// The input is composed to NFC, stripped of special characters, and every
// remaining character is transliterated to lowercase Latin. Characters with
// no transliteration are kept verbatim and are not case-folded.
//
// Example: "Núñez 812-111" -> "nunez 812111"
func Normalize(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(specialChars, r) {
			continue
		}
		b.WriteString(transliterate(r))
	}
	return b.String()
}

// transliterate returns the lowercase Latin form of r, or r itself when
// no mapping exists. Mappings may expand to several characters ("ﬃ" -> "ffi").
func transliterate(r rune) string {
	t := unidecode.Unidecode(string(r))
	if t == "" {
		return string(r)
	}
	return strings.ToLower(t)
}
