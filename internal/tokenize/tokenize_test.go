package tokenize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Filters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "hello there friend", []string{"hello", "there", "friend"}},
		{"lowercases", "Hello THERE", []string{"hello", "there"}},
		{"drops short tokens", "a ab abc", []string{"abc"}},
		{"drops digits", "call me at 555 or x2", []string{"call"}},
		{"strips ascii punctuation", "don't stop, really!", []string{"dont", "stop", "really"}},
		{"drops non-ascii words", "café naïve plain", []string{"plain"}},
		{"multiline body", "first line\nsecond line", []string{"first", "line", "second", "line"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in, Options{}))
		})
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	first := Tokenize("Well, hello there... hello AGAIN my friend!", Options{})
	second := Tokenize(strings.Join(first, " "), Options{})
	assert.Equal(t, first, second)
}

func TestTokenize_Stopwords(t *testing.T) {
	opts := Options{UseStopwords: true, Stopwords: DefaultStopwords}
	got := Tokenize("the quick fox and the lazy dog", opts)
	assert.Equal(t, []string{"quick", "fox", "lazy", "dog"}, got)

	// Disabled by default: stop words pass through.
	got = Tokenize("the quick fox", Options{})
	assert.Equal(t, []string{"the", "quick", "fox"}, got)
}

func TestTokenize_CustomStopwordSet(t *testing.T) {
	opts := Options{UseStopwords: true, Stopwords: NewStopwordSet("fox")}
	got := Tokenize("the quick fox", opts)
	assert.Equal(t, []string{"the", "quick"}, got)
}
