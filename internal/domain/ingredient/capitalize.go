package ingredient

import (
	"strings"
	"unicode"
)

// stopWords stay lowercase in WordCase output, even as the first token.
var stopWords = map[string]struct{}{
	"of": {}, "and": {}, "or": {}, "the": {}, "a": {},
	"an": {}, "to": {}, "for": {}, "with": {},
}

// SentenceCase uppercases only the first rune of the string.
func SentenceCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// WordCase title-cases each space-separated token, lowercasing stop words
// entirely. Internal capitalization of non-first runes is flattened, so
// "McDonald" becomes "Mcdonald"; display callers accept this trade-off.
func WordCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		if _, ok := stopWords[lower]; ok {
			words[i] = lower
			continue
		}
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
