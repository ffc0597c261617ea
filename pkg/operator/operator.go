// Package operator maps Spanish comparison phrases to SQL operator symbols.
package operator

import "github.com/miajio/nlsql/pkg/lexer"

// phrase is one substitution rule.
type phrase struct {
	text   string
	symbol string
}

// phrases are applied in order. A phrase must come before any shorter
// phrase that is a substring of it, so "mayor o igual que" is rewritten
// to ">=" before "igual" or "mayor que" can see it.
var phrases = []phrase{
	{"mayor o igual que", ">="},
	{"menor o igual que", "<="},
	{"mayor que", ">"},
	{"menor que", "<"},
	{"mayor a", ">"},
	{"menor a", "<"},
	{"igual a", "="},
	{"igual", "="},
	{"no es", "!="},
	{"diferente de", "!="},
}

// Normalize rewrites every recognized comparison phrase in text to its
// symbol. Matching is case-insensitive and word-bounded. Unrecognized
// text is returned lowercased but otherwise unchanged.
func Normalize(text string) string {
	out := lexer.Normalize(text)
	for _, p := range phrases {
		out = lexer.ReplaceWord(out, p.text, p.symbol, -1)
	}
	return out
}

// Words joins two operator words and normalizes them. ok reports whether
// the result is a valid operator symbol.
func Words(first, second string) (symbol string, ok bool) {
	symbol = Normalize(first + " " + second)
	return symbol, lexer.IsOperator(symbol)
}
