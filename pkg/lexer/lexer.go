// Package lexer turns a Spanish question into classified tokens.
package lexer

import "strings"

// Words normalizes text and splits it into words: lowercase, split on
// whitespace, strip edge punctuation, drop empties. Operator symbols are
// kept whole even though they are made of punctuation.
func Words(text string) []string {
	fields := strings.Fields(Normalize(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsOperator(f) {
			words = append(words, f)
			continue
		}
		if w := TrimPunct(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Classify returns the kind of a single normalized word. Membership is
// exact; anything not in a closed vocabulary is a Word.
func Classify(word string) Kind {
	switch {
	case actions.has(word):
		return Action
	case quantifiers.has(word):
		return Quantifier
	case connectors.has(word):
		return Connector
	case OperatorSymbols.has(word):
		return Operator
	case entityIndicators.has(word):
		return EntityIndicator
	case attributeIndicators.has(word):
		return AttributeIndicator
	default:
		return Word
	}
}

// Tokenize normalizes text and classifies every word, preserving order.
func Tokenize(text string) []Token {
	words := Words(text)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Kind: Classify(w), Literal: w}
	}
	return tokens
}
