// Package corrector checks the identifiers of a structured query against
// the schema vocabulary and lets a resolver repair the ones that do not
// match, regenerating the SQL as it goes.
package corrector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/miajio/nlsql/pkg/lexer"
	"github.com/miajio/nlsql/pkg/parser"
	"github.com/miajio/nlsql/pkg/sqlgen"
	"github.com/miajio/nlsql/pkg/trie"
)

// ErrInvalidChoice is returned when a resolver picks an index outside the
// offered options.
var ErrInvalidChoice = errors.New("corrector: choice out of range")

// Corrector holds the vocabulary and suggestion settings.
type Corrector struct {
	vocab       *trie.Trie
	words       []string
	suggestions int
	cutoff      float64
	logger      *slog.Logger
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithSuggestions sets the maximum number of suggestions per revision.
func WithSuggestions(n int) Option {
	return func(c *Corrector) { c.suggestions = n }
}

// WithCutoff sets the minimum similarity for a suggestion.
func WithCutoff(cutoff float64) Option {
	return func(c *Corrector) { c.cutoff = cutoff }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Corrector) { c.logger = l }
}

// New creates a corrector over vocab.
func New(vocab *trie.Trie, opts ...Option) *Corrector {
	c := &Corrector{
		vocab:       vocab,
		words:       vocab.Words(),
		suggestions: DefaultSuggestions,
		cutoff:      DefaultCutoff,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Options returns the original text followed by its suggestions.
func (c *Corrector) Options(rev Revision) []string {
	return append([]string{rev.Original}, Suggest(rev.Original, c.words, c.suggestions, c.cutoff)...)
}

// Applied records one resolved revision.
type Applied struct {
	Revision Revision
	Options  []string
	Chosen   string
}

// Result is the outcome of a correction run.
type Result struct {
	SQL     string
	Query   parser.Query
	Applied []Applied
}

// Changed reports whether any revision picked something other than the
// original text.
func (r Result) Changed() bool {
	for _, a := range r.Applied {
		if a.Chosen != a.Revision.Original {
			return true
		}
	}
	return false
}

// Correct resolves every revision of q in turn. The input query is not
// modified; each step produces a new query and SQL. If the resolver
// fails, the result holds everything applied up to that point.
func (c *Corrector) Correct(ctx context.Context, sql string, q parser.Query, resolver Resolver) (Result, error) {
	res := Result{SQL: sql, Query: q.Clone()}

	revs := Revisions(q, c.vocab)
	if len(revs) == 0 {
		c.logger.Info("query uses known tables and columns")
		return res, nil
	}
	c.logger.Info("found identifiers outside the vocabulary", "count", len(revs), "sql", sql)

	for _, rev := range revs {
		options := c.Options(rev)
		idx, err := resolver.Resolve(ctx, rev, options)
		if err != nil {
			return res, fmt.Errorf("resolve %s: %w", rev, err)
		}
		if idx < 0 || idx >= len(options) {
			return res, fmt.Errorf("resolve %s: %w: %d of %d", rev, ErrInvalidChoice, idx, len(options))
		}

		chosen := options[idx]
		res.Query, res.SQL = Apply(res.Query, res.SQL, rev, chosen)
		res.Applied = append(res.Applied, Applied{Revision: rev, Options: options, Chosen: chosen})
		c.logger.Info("revision applied", "field", rev.Field.String(), "from", rev.Original, "to", chosen, "sql", res.SQL)
	}
	return res, nil
}

// Apply patches q and sql with chosen for one revision and returns the
// new pair. q is not modified.
//
// Entities are patched textually in the FROM clause and shown attributes
// at their first whole-word occurrence. Condition attributes regenerate
// the whole statement from the patched query.
func Apply(q parser.Query, sql string, rev Revision, chosen string) (parser.Query, string) {
	next := q.Clone()
	switch rev.Field {
	case FieldEntity:
		old := next.Entity
		next.Entity = chosen
		sql = strings.ReplaceAll(sql, "FROM "+old, "FROM "+chosen)
	case FieldShownAttribute:
		if rev.Index < 0 || rev.Index >= len(next.Attributes) {
			return q, sql
		}
		old := next.Attributes[rev.Index]
		next.Attributes[rev.Index] = chosen
		sql = lexer.ReplaceWord(sql, old, chosen, 1)
	case FieldConditionAttribute:
		if rev.Index < 0 || rev.Index >= len(next.Conditions) {
			return q, sql
		}
		next.Conditions[rev.Index].Attribute = chosen
		sql = sqlgen.Render(next)
	}
	return next, sql
}
