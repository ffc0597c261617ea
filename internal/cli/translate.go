package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/miajio/nlsql/internal/config"
	"github.com/miajio/nlsql/pkg/corrector"
	"github.com/miajio/nlsql/pkg/history"
	"github.com/miajio/nlsql/pkg/lexer"
	"github.com/miajio/nlsql/pkg/parser"
	"github.com/miajio/nlsql/pkg/pipeline"
	"github.com/miajio/nlsql/pkg/transcript"
)

func newTranslateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate a Spanish question into SQL",
		Long: `Translate a Spanish question into SQL.

The question is taken from the arguments, or else from the transcriber
(when transcriber_command is set), or else from the query file, or else
a built-in example is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.translate(cmd, args)
		},
	}
}

func (a *app) translate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		var origin string
		text, origin = a.source().Text(ctx)
		a.logger.Debug("question loaded", "origin", origin)
	}

	// Neither the store nor the vocabulary is required to produce SQL.
	engine, err := a.openEngine()
	if err != nil {
		a.logger.Warn("store unavailable, running without persistence", "error", err)
		engine = nil
	}
	if engine != nil {
		defer engine.Close()
	}

	vocab, err := a.loadVocabulary(engine)
	if err != nil {
		a.logger.Warn("vocabulary unavailable, skipping review", "error", err)
		vocab = nil
	}

	compiler := pipeline.New(
		pipeline.WithLogger(a.logger),
		pipeline.WithParser(a.parser()),
		pipeline.WithCorrectorOptions(
			corrector.WithSuggestions(a.cfg.Suggestions),
			corrector.WithCutoff(a.cfg.Cutoff),
		),
	)
	res, runErr := compiler.Run(ctx, text, vocab, a.resolver(cmd))

	fmt.Fprintf(out, "Consulta: %s\n", res.Input)
	fmt.Fprintf(out, "Tokens: %s\n", formatTokens(res.Tokens))
	fmt.Fprintf(out, "Consulta estructurada: %s\n", res.Query)
	fmt.Fprintf(out, "Lenguaje natural: %s\n", res.Sentence)
	fmt.Fprintf(out, "SQL: %s\n", res.SQL)
	if res.Correction != nil && res.Correction.Changed() {
		fmt.Fprintf(out, "SQL corregida: %s\n", res.Final)
	}

	// An interrupted review still leaves the SQL corrected so far.
	var errs []error
	if runErr != nil {
		errs = append(errs, fmt.Errorf("review interrupted: %w", runErr))
	}

	if a.cfg.OutputFile != "" {
		if err := os.WriteFile(a.cfg.OutputFile, []byte(res.Final+"\n"), 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", a.cfg.OutputFile, err))
		} else {
			a.logger.Debug("sql written", "path", a.cfg.OutputFile)
		}
	}

	if engine != nil {
		if _, err := history.NewStore(engine, a.cfg.HistoryTTL).Record(res.Input, res.SQL, res.Final); err != nil {
			a.logger.Warn("history not recorded", "error", err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) parser() *parser.Parser {
	if a.cfg.Rules == config.RulesExtended {
		return parser.New(parser.WithRules(parser.ExtendedRules()...))
	}
	return parser.New()
}

func (a *app) source() transcript.Source {
	src := transcript.Source{
		AudioPath: a.cfg.AudioFile,
		QueryPath: a.cfg.QueryFile,
		Fallback:  a.cfg.FallbackQuery,
		Logger:    a.logger,
	}
	if cmd, ok := transcript.ParseCommand(a.cfg.TranscriberCommand); ok {
		src.Transcriber = cmd
	}
	return src
}

// resolver picks how unknown words are resolved.
func (a *app) resolver(cmd *cobra.Command) corrector.Resolver {
	switch a.cfg.Interactive {
	case config.InteractiveNone:
		return corrector.KeepOriginal
	case config.InteractiveSelect:
		return corrector.SelectResolver{}
	case config.InteractivePrompt:
		return corrector.NewPromptResolver(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if isTerminal(cmd.InOrStdin()) {
		return corrector.SelectResolver{}
	}
	return corrector.NewPromptResolver(cmd.InOrStdin(), cmd.OutOrStdout())
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func formatTokens(tokens []lexer.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
