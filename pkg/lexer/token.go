package lexer

import "fmt"

// Kind classifies a normalized input word.
type Kind int

const (
	Word Kind = iota
	Action
	Quantifier
	Connector
	Operator
	EntityIndicator
	AttributeIndicator
)

var kindNames = map[Kind]string{
	Word:               "WORD",
	Action:             "ACTION",
	Quantifier:         "QUANTIFIER",
	Connector:          "CONNECTOR",
	Operator:           "OPERATOR",
	EntityIndicator:    "ENTITY_INDICATOR",
	AttributeIndicator: "ATTRIBUTE_INDICATOR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a classified word. Literal is already normalized.
type Token struct {
	Kind    Kind
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %s)", t.Kind, t.Literal)
}

// Literals returns the literal of every token, in order.
func Literals(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Literal
	}
	return out
}
