package lexer

import (
	"regexp"
	"strings"
)

// Accepted date shapes, tried in order against the whole string.
var dateFormats = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`),       // 2025-07-21
	regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`),       // 21/07/2025
	regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`),       // 21-07-2025
	regexp.MustCompile(`^[0-9]{1,2} de [a-z]+ de [0-9]{4}$`), // 21 de julio de 2025
}

// LongDate matches the spelled-out Spanish date at the start of a string.
var LongDate = regexp.MustCompile(`^([0-9]{1,2}) de ([a-z]+) de ([0-9]{4})`)

// IsDate reports whether text is one of the accepted date shapes.
// Matching is case-insensitive.
func IsDate(text string) bool {
	text = strings.ToLower(text)
	for _, f := range dateFormats {
		if f.MatchString(text) {
			return true
		}
	}
	return false
}

// JoinDate grows a window of tokens starting at start, joining literals
// with single spaces, and returns the first joined phrase that is a date
// along with the number of tokens it spans. It returns ("", 0) when no
// prefix of the remaining tokens forms a date.
func JoinDate(tokens []Token, start int) (string, int) {
	if start < 0 {
		return "", 0
	}
	parts := make([]string, 0, 5)
	for i := start; i < len(tokens); i++ {
		parts = append(parts, tokens[i].Literal)
		if phrase := strings.Join(parts, " "); IsDate(phrase) {
			return phrase, i - start + 1
		}
	}
	return "", 0
}
