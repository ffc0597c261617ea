package pipeline

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/nlsql/pkg/corrector"
	"github.com/miajio/nlsql/pkg/parser"
	"github.com/miajio/nlsql/pkg/sqlgen"
	"github.com/miajio/nlsql/pkg/trie"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func extended() Option {
	return WithParser(parser.New(parser.WithRules(parser.ExtendedRules()...)))
}

func vocab(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestCompile(t *testing.T) {
	tr := New(quiet()).Compile("muéstrame los clientes donde la edad es mayor a 30")

	require.NoError(t, tr.Err)
	assert.Equal(t, "clientes", tr.Query.Entity)
	assert.Equal(t, []parser.Condition{{Attribute: "edad", Operator: ">", Value: "30"}}, tr.Query.Conditions)
	assert.Equal(t, "SELECT * FROM clientes WHERE edad > 30", tr.SQL)
	assert.Equal(t, "edad mayor 30", tr.Conditions)
	assert.Equal(t, "selecciona * de clientes donde edad mayor 30.", tr.Sentence)
	assert.Len(t, tr.Tokens, 10)
}

func TestCompile_MissingEntity(t *testing.T) {
	tr := New(quiet()).Compile("hola")
	assert.ErrorIs(t, tr.Err, sqlgen.ErrMissingEntity)
	assert.Equal(t, sqlgen.MissingEntity, tr.SQL)
}

func TestRun_FallbackWithCorrection(t *testing.T) {
	v := vocab("clientes", "productos", "ventas", "nombre", "edad", "id", "dept", "precio", "fecha", "cantidad")

	out, err := New(quiet(), extended()).Run(context.Background(), FallbackQuery, v, corrector.FirstSuggestion)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM bontas WHERE fecha = DATE('2025-07-21') AND edat > 30", out.SQL)
	assert.Equal(t, "SELECT * FROM ventas WHERE fecha = DATE('2025-07-21') AND edad > 30", out.Final)
	require.NotNil(t, out.Correction)
	assert.Equal(t, "ventas", out.Correction.Query.Entity)
	assert.Equal(t, "bontas", out.Query.Entity)
}

func TestRun_FallbackStandardRules(t *testing.T) {
	v := vocab("ventas", "edad", "fecha")

	out, err := New(quiet()).Run(context.Background(), FallbackQuery, v, corrector.FirstSuggestion)
	require.NoError(t, err)
	assert.ErrorIs(t, out.Err, sqlgen.ErrMissingEntity)
	assert.Equal(t, sqlgen.MissingEntity, out.SQL)
}

func TestRun_NoVocabulary(t *testing.T) {
	out, err := New(quiet()).Run(context.Background(), FallbackQuery, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, out.Correction)
	assert.Equal(t, out.SQL, out.Final)
}

func TestRun_NilResolver(t *testing.T) {
	_, err := New(quiet()).Run(context.Background(), FallbackQuery, vocab("ventas"), nil)
	assert.Error(t, err)
}

func TestRun_CorrectorOptions(t *testing.T) {
	v := vocab("ventas")
	var offered []string
	resolver := corrector.ResolverFunc(func(_ context.Context, _ corrector.Revision, options []string) (int, error) {
		offered = options
		return 0, nil
	})

	c := New(quiet(), extended(), WithCorrectorOptions(corrector.WithCutoff(0.99)))
	_, err := c.Run(context.Background(), "dame las bontas", v, resolver)
	require.NoError(t, err)
	assert.Equal(t, []string{"bontas"}, offered)
}

func TestCompile_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(WithLogger(logger)).Compile("dame las ventas")

	logs := buf.String()
	for _, stage := range []string{"tokens", "structured query", "natural language", "sql"} {
		assert.Contains(t, logs, stage)
	}
}
