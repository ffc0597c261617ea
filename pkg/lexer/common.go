package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// asciiPunct is the ASCII punctuation set stripped from token edges.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var lower = cases.Lower(language.Spanish)

// Normalize composes s into NFC form and lowercases it, so that "é"
// typed as e + combining accent matches a precomposed "é".
func Normalize(s string) string {
	return lower.String(norm.NFC.String(s))
}

// IsPunct reports whether r is stripped from the edges of a word.
func IsPunct(r rune) bool {
	if r < 0x80 {
		return strings.ContainsRune(asciiPunct, r)
	}
	return unicode.IsPunct(r)
}

// TrimPunct strips punctuation and whitespace from both ends of s.
func TrimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return IsPunct(r) || unicode.IsSpace(r)
	})
}

// isWordRune reports whether r counts as part of a word for boundary checks.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ReplaceWord replaces up to n occurrences of old in s that sit on word
// boundaries (n < 0 means all). Boundaries are Unicode aware, so "año"
// does not match inside "años". Matching is case-sensitive.
func ReplaceWord(s, old, repl string, n int) string {
	if old == "" || n == 0 {
		return s
	}
	var b strings.Builder
	rest := s
	done := 0
	for n < 0 || done < n {
		idx := strings.Index(rest, old)
		if idx < 0 {
			break
		}
		end := idx + len(old)
		if atBoundary(rest, idx, end) {
			b.WriteString(rest[:idx])
			b.WriteString(repl)
			rest = rest[end:]
			done++
			continue
		}
		// Skip past the first rune of the non-boundary match.
		_, size := utf8.DecodeRuneInString(rest[idx:])
		b.WriteString(rest[:idx+size])
		rest = rest[idx+size:]
	}
	b.WriteString(rest)
	return b.String()
}

func atBoundary(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}
