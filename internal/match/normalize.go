package match

import (
	"slices"
	"strings"
	"unicode"
)

// typeSuffixes are trailing words that schema type names commonly carry.
// They are dropped before comparing so "AuthorInput" is close to "Author".
var typeSuffixes = []string{"payload", "input", "type", "ids", "id"}

// TokenizeIdent splits an identifier into lowercase words at separators and
// case changes:
//   - "BookID" -> ["book", "id"]
//   - "authorName" -> ["author", "name"]
//   - "getHTTPResponse" -> ["get", "http", "response"]
//   - "page_size" -> ["page", "size"]
func TokenizeIdent(s string) []string {
	var (
		words []string
		runes = []rune(s)
		start = -1
	)

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, strings.ToLower(string(runes[start:end])))
		}
		start = -1
	}

	for i, r := range runes {
		switch {
		case isSeparator(r):
			flush(i)
		case start < 0:
			start = i
		case startsWord(runes, i):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// startsWord reports whether runes[i] begins a new word: an upper-case
// letter after a lower-case one, or the last capital of an acronym that
// is followed by lower case ("XMLParser" splits before 'P').
func startsWord(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// NormalizeIdent lower-cases an identifier and drops separators, so
// "book_id", "bookId" and "BookID" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeIdentWithSuffixStrip is NormalizeIdent without a trailing type
// suffix word. A name made of the suffix alone is kept.
func NormalizeIdentWithSuffixStrip(s string) string {
	words := TokenizeIdent(s)
	if len(words) > 1 && slices.Contains(typeSuffixes, words[len(words)-1]) {
		words = words[:len(words)-1]
	}

	return strings.Join(words, "")
}
