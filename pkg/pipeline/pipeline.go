// Package pipeline runs the translation stages in order: tokens,
// structured query, Spanish explanation, SQL and, when a vocabulary is
// available, interactive correction.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/miajio/nlsql/pkg/corrector"
	"github.com/miajio/nlsql/pkg/lexer"
	"github.com/miajio/nlsql/pkg/parser"
	"github.com/miajio/nlsql/pkg/semantic"
	"github.com/miajio/nlsql/pkg/sqlgen"
	"github.com/miajio/nlsql/pkg/trie"
)

// FallbackQuery is used when no transcript is available.
const FallbackQuery = "muéstrame las bontas que se realizaron en 21 de julio de 2025 donde la edat es mayor a 30"

// Translation holds every intermediate value of one compile.
type Translation struct {
	Input      string
	Tokens     []lexer.Token
	Query      parser.Query
	Conditions string // conditions in Spanish
	Sentence   string // whole query in Spanish
	SQL        string
	Err        error // sqlgen.ErrMissingEntity when SQL is the sentinel comment
}

// Outcome is a compile followed by the optional correction step.
type Outcome struct {
	Translation
	Final      string
	Correction *corrector.Result // nil when correction was skipped
}

// Compiler runs the pipeline.
type Compiler struct {
	parser          *parser.Parser
	logger          *slog.Logger
	correctorOption []corrector.Option
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithParser replaces the default parser.
func WithParser(p *parser.Parser) Option {
	return func(c *Compiler) { c.parser = p }
}

// WithLogger sets the logger used for stage output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) { c.logger = l }
}

// WithCorrectorOptions passes options to the corrector built by Run.
func WithCorrectorOptions(opts ...corrector.Option) Option {
	return func(c *Compiler) { c.correctorOption = append(c.correctorOption, opts...) }
}

// New creates a compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		parser: parser.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile translates text into SQL without consulting any vocabulary.
func (c *Compiler) Compile(text string) Translation {
	tr := Translation{Input: text}
	c.logger.Info("input", "text", text)

	tr.Tokens = lexer.Tokenize(text)
	c.logger.Debug("tokens", "tokens", tr.Tokens)

	tr.Query = c.parser.Parse(tr.Tokens)
	c.logger.Debug("structured query", "query", tr.Query.String())

	tr.Conditions = semantic.Conditions(tr.Query.Conditions)
	c.logger.Debug("conditions", "text", tr.Conditions)

	tr.Sentence = semantic.Sentence(tr.Query)
	c.logger.Info("natural language", "text", tr.Sentence)

	tr.SQL, tr.Err = sqlgen.Generate(tr.Query)
	if tr.Err != nil {
		c.logger.Warn("sql not generated", "error", tr.Err)
	}
	c.logger.Info("sql", "sql", tr.SQL)
	return tr
}

// Run compiles text and, when vocab is non-nil, reviews identifiers with
// resolver. A nil vocab skips review entirely. Resolver errors are
// returned together with the partially corrected outcome.
func (c *Compiler) Run(ctx context.Context, text string, vocab *trie.Trie, resolver corrector.Resolver) (Outcome, error) {
	out := Outcome{Translation: c.Compile(text)}
	out.Final = out.SQL

	if vocab == nil {
		c.logger.Warn("no vocabulary loaded, skipping review")
		return out, nil
	}
	if resolver == nil {
		return out, errors.New("pipeline: vocabulary given without a resolver")
	}

	opts := append([]corrector.Option{corrector.WithLogger(c.logger)}, c.correctorOption...)
	res, err := corrector.New(vocab, opts...).Correct(ctx, out.SQL, out.Query, resolver)
	out.Correction = &res
	out.Final = res.SQL
	if err != nil {
		return out, err
	}
	c.logger.Info("final sql", "sql", out.Final)
	return out, nil
}
