package tokenize

import "strings"

// Options control optional stop-word filtering. The zero value keeps every
// eligible token.
type Options struct {
	UseStopwords bool
	Stopwords    map[string]struct{}
}

// asciiPunct is the punctuation set stripped before splitting. Non-ASCII
// punctuation is left alone; tokens containing it fail the alphabetic filter.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize normalizes a message body into countable word tokens: lower-cased,
// ASCII punctuation removed, whitespace-split, keeping tokens longer than two
// characters made of ASCII letters only. Order and duplicates are preserved;
// counting happens downstream.
func Tokenize(text string, opts Options) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 128 && strings.ContainsRune(asciiPunct, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(strings.ToLower(text)))

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || !isASCIIAlpha(word) {
			continue
		}
		if opts.UseStopwords {
			if _, ok := opts.Stopwords[word]; ok {
				continue
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// isASCIIAlpha reports whether s is entirely lowercase ASCII letters. Input
// is already lower-cased, so a-z covers the alphabetic range.
func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
