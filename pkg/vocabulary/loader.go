// Package vocabulary builds the schema vocabulary used to validate table
// and column names, and persists it in badger.
package vocabulary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/miajio/nlsql/pkg/lexer"
	"github.com/miajio/nlsql/pkg/trie"
)

// ErrSourceNotFound is returned when the schema source does not exist.
// Callers treat it as "no vocabulary available" and skip correction.
var ErrSourceNotFound = errors.New("vocabulary: schema source not found")

// Stoplist holds generic type keywords that never name a table or column.
var Stoplist = map[string]struct{}{
	"int": {}, "integer": {}, "float": {}, "double": {}, "string": {}, "char": {},
	"boolean": {}, "bool": {}, "void": {}, "long": {}, "short": {}, "byte": {},
	"decimal": {}, "date": {}, "time": {}, "datetime": {}, "array": {}, "list": {},
	"dict": {}, "dictionary": {}, "set": {}, "tuple": {}, "object": {}, "class": {},
}

// SplitLine splits a schema line on whitespace and '#', cleans each piece
// and drops empties and stoplist words.
func SplitLine(line string) []string {
	pieces := strings.FieldsFunc(lexer.Normalize(line), func(r rune) bool {
		return r == '#' || unicode.IsSpace(r)
	})
	words := make([]string, 0, len(pieces))
	for _, p := range pieces {
		w := lexer.TrimPunct(p)
		if w == "" {
			continue
		}
		if _, stop := Stoplist[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Load reads schema lines from r into a new trie.
func Load(r io.Reader) (*trie.Trie, error) {
	t := trie.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		for _, w := range SplitLine(sc.Text()) {
			t.Insert(w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return t, nil
}

// LoadFile reads the schema file at path. A missing file yields
// ErrSourceNotFound.
func LoadFile(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open schema %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// SampleSchema is written when no schema file exists yet.
var SampleSchema = []string{
	"clientes", "productos", "ventas", "nombre", "edad", "id", "dept", "precio", "fecha", "cantidad",
}

// WriteSample writes SampleSchema to path, one word per line.
func WriteSample(path string) error {
	return os.WriteFile(path, []byte(strings.Join(SampleSchema, "\n")+"\n"), 0o644)
}
