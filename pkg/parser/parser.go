// Package parser builds a structured query from classified tokens.
//
// Parsing is a single left-to-right pass. At every cursor position the
// rules are tried in a fixed priority order; the first one that matches
// mutates the query and reports how many tokens it consumed. When no rule
// matches the cursor moves one token. The cursor never moves backwards.
package parser

import "github.com/miajio/nlsql/pkg/lexer"

var (
	// DefaultTables are table names recognized without an indicator word.
	DefaultTables = []string{"clientes", "productos", "ventas"}
	// DefaultColumns are column names recognized as attributes to show.
	DefaultColumns = []string{"nombre", "edad", "id", "dept", "precio", "fecha"}
)

// Parser holds the rule list and the closed name sets.
type Parser struct {
	rules   []Rule
	tables  map[string]struct{}
	columns map[string]struct{}
}

// Option configures a Parser.
type Option func(*Parser)

// WithTables replaces the known table names.
func WithTables(names ...string) Option {
	return func(p *Parser) { p.tables = toSet(names) }
}

// WithColumns replaces the known column names.
func WithColumns(names ...string) Option {
	return func(p *Parser) { p.columns = toSet(names) }
}

// WithRules replaces the rule list.
func WithRules(rules ...Rule) Option {
	return func(p *Parser) { p.rules = rules }
}

// New creates a parser with the default rules and name sets.
func New(opts ...Option) *Parser {
	p := &Parser{
		rules:   DefaultRules(),
		tables:  toSet(DefaultTables),
		columns: toSet(DefaultColumns),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a query from tokens.
func (p *Parser) Parse(tokens []lexer.Token) Query {
	q := Query{Conditions: []Condition{}}
	st := &State{
		Tokens:  tokens,
		query:   &q,
		tables:  p.tables,
		columns: p.columns,
	}

	for st.Pos < len(tokens) {
		step := 1
		for _, r := range p.rules {
			if res, ok := r.Match(st); ok {
				if res.Consumed > 0 {
					step = res.Consumed
				}
				break
			}
		}
		st.Pos += step
	}
	return q
}

// Parse parses tokens with the default parser.
func Parse(tokens []lexer.Token) Query {
	return New().Parse(tokens)
}

func toSet(words []string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
