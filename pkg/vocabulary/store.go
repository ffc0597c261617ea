package vocabulary

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bd "github.com/dgraph-io/badger/v4"

	"github.com/miajio/nlsql/pkg/badger"
	"github.com/miajio/nlsql/pkg/trie"
)

// keyPrefix namespaces vocabulary entries in the shared badger store.
const keyPrefix = "vocab:"

// Entry is the stored form of a vocabulary word.
type Entry struct {
	Word      string    `json:"word"`
	Source    string    `json:"source"` // schema file the word came from
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists vocabulary words in badger.
type Store struct {
	engine *badger.Engine
}

// NewStore creates a store on top of engine.
func NewStore(engine *badger.Engine) *Store {
	return &Store{engine: engine}
}

func key(word string) []byte { return []byte(keyPrefix + word) }

// Save writes every word of t, tagging each with source.
func (s *Store) Save(t *trie.Trie, source string) error {
	now := time.Now().UTC()
	return s.engine.Batch(func(wb *bd.WriteBatch) error {
		for _, w := range t.Words() {
			data, err := json.Marshal(Entry{Word: w, Source: source, UpdatedAt: now})
			if err != nil {
				return err
			}
			if err := wb.Set(key(w), data); err != nil {
				return fmt.Errorf("store word %q: %w", w, err)
			}
		}
		return nil
	})
}

// AddWord stores a single word.
func (s *Store) AddWord(word, source string) error {
	data, err := json.Marshal(Entry{Word: word, Source: source, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return s.engine.Set(key(word), data)
}

// Contains reports whether word is stored.
func (s *Store) Contains(word string) (bool, error) {
	return s.engine.Exists(key(word))
}

// Remove deletes word.
func (s *Store) Remove(word string) error {
	return s.engine.Del(key(word))
}

// Load rebuilds a trie from every stored word.
func (s *Store) Load() (*trie.Trie, error) {
	t := trie.New()
	err := s.engine.Scan([]byte(keyPrefix), func(k, v []byte) error {
		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return fmt.Errorf("decode %s: %w", k, err)
		}
		t.Insert(e.Word)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Words lists stored words in key order.
func (s *Store) Words() ([]string, error) {
	keys, err := s.engine.GetKey([]byte(keyPrefix))
	if err != nil {
		return nil, err
	}
	words := make([]string, len(keys))
	for i, k := range keys {
		words[i] = strings.TrimPrefix(string(k), keyPrefix)
	}
	return words, nil
}
