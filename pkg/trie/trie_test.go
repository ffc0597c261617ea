package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_InsertContains(t *testing.T) {
	tr := New()
	words := []string{"clientes", "cliente", "ventas", "dirección", "año"}

	for i, w := range words {
		tr.Insert(w)
		for _, prev := range words[:i+1] {
			assert.True(t, tr.Contains(prev), "%q should stay contained after inserting %q", prev, w)
		}
	}

	assert.False(t, tr.Contains("client"))
	assert.False(t, tr.Contains("clientess"))
	assert.False(t, tr.Contains("direccion"))
	assert.False(t, tr.Contains(""))
}

func TestTrie_InsertIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("edad")
	tr.Insert("edad")

	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, []string{"edad"}, tr.Words())
}

func TestTrie_HasPrefix(t *testing.T) {
	tr := New()
	tr.Insert("productos")
	tr.Insert("precio")

	tests := []struct {
		prefix string
		want   bool
	}{
		{"p", true},
		{"pro", true},
		{"productos", true},
		{"pre", true},
		{"productosx", false},
		{"v", false},
		{"", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.HasPrefix(tt.prefix), "prefix %q", tt.prefix)
	}

	assert.False(t, New().HasPrefix(""))
}

func TestTrie_WordsExhaustive(t *testing.T) {
	words := []string{"ventas", "venta", "ve", "clientes", "niño", "ñandú", "id"}

	orders := [][]string{
		words,
		{"id", "ñandú", "niño", "clientes", "ve", "venta", "ventas"},
		{"venta", "id", "ventas", "ve", "niño", "clientes", "ñandú"},
	}
	for _, order := range orders {
		tr := New()
		for _, w := range order {
			tr.Insert(w)
		}
		got := tr.Words()
		assert.ElementsMatch(t, words, got)
		assert.Len(t, got, len(words))
	}
}

func TestTrie_WordsDeep(t *testing.T) {
	tr := New()
	long := strings.Repeat("a", 5000)
	tr.Insert(long)
	tr.Insert(long[:10])

	got := tr.Words()
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{long, long[:10]}, got)
}

func TestTrie_Empty(t *testing.T) {
	tr := New()
	assert.Empty(t, tr.Words())
	assert.Equal(t, 0, tr.Len())
}
