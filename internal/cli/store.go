package cli

import (
	"errors"
	"fmt"

	"github.com/miajio/nlsql/pkg/badger"
	"github.com/miajio/nlsql/pkg/trie"
	"github.com/miajio/nlsql/pkg/vocabulary"
)

var errNoStore = errors.New("store_dir is not set")

// openEngine opens the badger store, or returns nil when persistence is
// disabled.
func (a *app) openEngine() (*badger.Engine, error) {
	if a.cfg.StoreDir == "" {
		return nil, nil
	}
	engine, err := badger.Default(a.cfg.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", a.cfg.StoreDir, err)
	}
	engine.SetGCInterval(a.cfg.GCInterval)
	return engine, nil
}

// loadVocabulary returns the vocabulary from the store when it holds one,
// otherwise from the schema file. A missing schema file is replaced by
// the sample schema. Words read from the file are saved to the store.
func (a *app) loadVocabulary(engine *badger.Engine) (*trie.Trie, error) {
	var store *vocabulary.Store
	if engine != nil {
		store = vocabulary.NewStore(engine)
		t, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load stored vocabulary: %w", err)
		}
		if t.Len() > 0 {
			a.logger.Debug("vocabulary loaded from store", "words", t.Len())
			return t, nil
		}
	}

	t, err := vocabulary.LoadFile(a.cfg.SchemaFile)
	if errors.Is(err, vocabulary.ErrSourceNotFound) {
		a.logger.Warn("schema file not found, writing sample schema", "path", a.cfg.SchemaFile)
		if err := vocabulary.WriteSample(a.cfg.SchemaFile); err != nil {
			return nil, fmt.Errorf("write sample schema: %w", err)
		}
		t, err = vocabulary.LoadFile(a.cfg.SchemaFile)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("vocabulary loaded from file", "path", a.cfg.SchemaFile, "words", t.Len())

	if store != nil {
		if err := store.Save(t, a.cfg.SchemaFile); err != nil {
			return nil, fmt.Errorf("save vocabulary: %w", err)
		}
	}
	return t, nil
}
