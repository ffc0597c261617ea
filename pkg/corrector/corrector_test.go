package corrector

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/nlsql/pkg/parser"
	"github.com/miajio/nlsql/pkg/sqlgen"
	"github.com/miajio/nlsql/pkg/trie"
)

func schema(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func sampleVocab() *trie.Trie {
	return schema("clientes", "productos", "ventas", "nombre", "edad", "id", "dept", "precio", "fecha", "cantidad")
}

func TestSuggest(t *testing.T) {
	words := []string{"clientes", "productos", "ventas", "nombre", "edad", "fecha"}

	assert.Equal(t, []string{"ventas"}, Suggest("bontas", words, 5, 0.6))
	assert.Equal(t, []string{"edad"}, Suggest("edat", words, 5, 0.6))
	assert.Equal(t, []string{"nombre"}, Suggest("nombe", words, 5, 0.6))
	assert.Empty(t, Suggest("zzz", words, 5, 0.6))
	assert.Empty(t, Suggest("ventas", words, 0, 0.6))
}

func TestSuggest_RankingAndLimit(t *testing.T) {
	words := []string{"abcd", "abce", "abcf", "abxx", "abcd"}

	got := Suggest("abcd", words, 2, 0.5)
	require.Len(t, got, 2)
	assert.Equal(t, "abcd", got[0])

	// Equal scores fall back to descending word order.
	got = Suggest("abcz", []string{"abca", "abcb", "abcc"}, 3, 0.6)
	assert.Equal(t, []string{"abcc", "abcb", "abca"}, got)
}

func TestRevisions(t *testing.T) {
	q := parser.Query{
		Entity:     "bontas",
		Attributes: []string{"nombre", "nombe"},
		Conditions: []parser.Condition{
			{Attribute: "edad", Operator: ">", Value: "30"},
			{Attribute: "edat", Operator: "<", Value: "60"},
		},
	}
	revs := Revisions(q, sampleVocab())

	assert.Equal(t, []Revision{
		{Field: FieldEntity, Original: "bontas"},
		{Field: FieldShownAttribute, Original: "nombe", Index: 1},
		{Field: FieldConditionAttribute, Original: "edat", Index: 1},
	}, revs)
}

func TestCorrect_NoRevisions(t *testing.T) {
	q := parser.Query{Entity: "clientes", Conditions: []parser.Condition{{Attribute: "edad", Operator: ">", Value: "30"}}}
	sql := sqlgen.Render(q)

	c := New(sampleVocab())
	res, err := c.Correct(context.Background(), sql, q, ResolverFunc(func(context.Context, Revision, []string) (int, error) {
		t.Fatal("resolver must not be called")
		return 0, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, sql, res.SQL)
	assert.Empty(t, res.Applied)
	assert.False(t, res.Changed())
}

func TestCorrect_Entity(t *testing.T) {
	q := parser.Query{Entity: "bontas", Conditions: []parser.Condition{}}
	sql := sqlgen.Render(q)

	var offered []string
	resolver := ResolverFunc(func(_ context.Context, rev Revision, options []string) (int, error) {
		offered = options
		for i, o := range options {
			if o == "ventas" {
				return i, nil
			}
		}
		return 0, nil
	})

	res, err := New(schema("ventas")).Correct(context.Background(), sql, q, resolver)
	require.NoError(t, err)

	assert.Equal(t, []string{"bontas", "ventas"}, offered)
	assert.Equal(t, "ventas", res.Query.Entity)
	assert.Equal(t, "SELECT * FROM ventas", res.SQL)
	assert.True(t, res.Changed())
	assert.Equal(t, "bontas", q.Entity, "input query is left untouched")
}

func TestCorrect_AllKinds(t *testing.T) {
	q := parser.Query{
		Entity:     "cliontes",
		Attributes: []string{"nombe"},
		Conditions: []parser.Condition{
			{Attribute: "edat", Operator: ">", Value: "30"},
			{Attribute: "fecha", Operator: "=", Value: "21 de julio de 2025"},
		},
	}
	sql := sqlgen.Render(q)
	require.Equal(t, "SELECT nombe FROM cliontes WHERE edat > 30 AND fecha = DATE('2025-07-21')", sql)

	res, err := New(sampleVocab()).Correct(context.Background(), sql, q, FirstSuggestion)
	require.NoError(t, err)

	assert.Equal(t, "SELECT nombre FROM clientes WHERE edad > 30 AND fecha = DATE('2025-07-21')", res.SQL)
	assert.Equal(t, res.SQL, sqlgen.Render(res.Query))
	require.Len(t, res.Applied, 3)
	assert.Equal(t, "clientes", res.Applied[0].Chosen)
}

func TestCorrect_KeepOriginal(t *testing.T) {
	q := parser.Query{Entity: "bontas", Conditions: []parser.Condition{{Attribute: "edat", Operator: ">", Value: "1"}}}
	sql := sqlgen.Render(q)

	res, err := New(sampleVocab()).Correct(context.Background(), sql, q, KeepOriginal)
	require.NoError(t, err)
	assert.Equal(t, sql, res.SQL)
	assert.False(t, res.Changed())
}

func TestCorrect_ResolverError(t *testing.T) {
	q := parser.Query{
		Entity:     "bontas",
		Conditions: []parser.Condition{{Attribute: "edat", Operator: ">", Value: "30"}},
	}
	sql := sqlgen.Render(q)

	res, err := New(sampleVocab()).Correct(context.Background(), sql, q, NewScriptedResolver(1))
	require.ErrorIs(t, err, ErrScriptExhausted)
	assert.Equal(t, "SELECT * FROM ventas WHERE edat > 30", res.SQL)
	assert.Len(t, res.Applied, 1)
}

func TestCorrect_InvalidChoice(t *testing.T) {
	q := parser.Query{Entity: "bontas"}
	_, err := New(sampleVocab()).Correct(context.Background(), sqlgen.Render(q), q, NewScriptedResolver(7))
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestApply_ShownAttributeFirstOccurrence(t *testing.T) {
	q := parser.Query{
		Entity:     "clientes",
		Attributes: []string{"nombe"},
		Conditions: []parser.Condition{{Attribute: "nombe", Operator: "=", Value: "x"}},
	}
	sql := sqlgen.Render(q)

	next, got := Apply(q, sql, Revision{Field: FieldShownAttribute, Original: "nombe", Index: 0}, "nombre")
	assert.Equal(t, "SELECT nombre FROM clientes WHERE nombe = 'x'", got)
	assert.Equal(t, []string{"nombre"}, next.Attributes)
	assert.Equal(t, []string{"nombe"}, q.Attributes)
}

func TestApply_OutOfRangeIndex(t *testing.T) {
	q := parser.Query{Entity: "clientes"}
	next, sql := Apply(q, "SELECT * FROM clientes", Revision{Field: FieldConditionAttribute, Index: 3}, "x")
	assert.Equal(t, q, next)
	assert.Equal(t, "SELECT * FROM clientes", sql)
}

func TestPromptResolver(t *testing.T) {
	in := strings.NewReader("abc\n0\n9\n2\n")
	var out bytes.Buffer

	p := NewPromptResolver(in, &out)
	idx, err := p.Resolve(context.Background(), Revision{Original: "bontas"}, []string{"bontas", "ventas"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	text := out.String()
	assert.Contains(t, text, "  1. bontas")
	assert.Contains(t, text, "  2. ventas")
	assert.Equal(t, 1, strings.Count(text, "Entrada inválida"))
	assert.Equal(t, 2, strings.Count(text, "Opción no válida"))
	assert.Equal(t, 4, strings.Count(text, "(1-2): "))
}

func TestPromptResolver_EOF(t *testing.T) {
	p := NewPromptResolver(strings.NewReader("x\n"), io.Discard)
	_, err := p.Resolve(context.Background(), Revision{Original: "a"}, []string{"a"})
	assert.True(t, errors.Is(err, io.EOF))

	p = NewPromptResolver(strings.NewReader("1"), io.Discard)
	idx, err := p.Resolve(context.Background(), Revision{Original: "a"}, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestPromptResolver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPromptResolver(strings.NewReader("1\n"), io.Discard)
	_, err := p.Resolve(ctx, Revision{Original: "a"}, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "entidad", FieldEntity.String())
	assert.Equal(t, "atributo_condicion[2] \"x\"", Revision{Field: FieldConditionAttribute, Original: "x", Index: 2}.String())
}
