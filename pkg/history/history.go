// Package history keeps a log of translated questions in badger.
package history

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/miajio/nlsql/pkg/badger"
)

const (
	keyPrefix = "history:"
	// keyTime sorts lexically in chronological order.
	keyTime = "20060102T150405.000000000Z"
)

// Entry is one translated question.
type Entry struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	SQL       string    `json:"sql"`
	Final     string    `json:"final"`
	Corrected bool      `json:"corrected"`
	CreatedAt time.Time `json:"created_at"`
}

// Store records entries, optionally expiring them after retention.
type Store struct {
	engine    *badger.Engine
	retention time.Duration
	now       func() time.Time
}

// NewStore creates a history store. A zero retention keeps entries forever.
func NewStore(engine *badger.Engine, retention time.Duration) *Store {
	return &Store{engine: engine, retention: retention, now: time.Now}
}

// Record stores a translation and returns the saved entry.
func (s *Store) Record(input, sql, final string) (Entry, error) {
	e := Entry{
		ID:        uuid.NewString(),
		Input:     input,
		SQL:       sql,
		Final:     final,
		Corrected: sql != final,
		CreatedAt: s.now().UTC(),
	}
	data, err := json.Marshal(e)
	if err != nil {
		return Entry{}, err
	}

	k := []byte(keyPrefix + e.CreatedAt.Format(keyTime) + ":" + e.ID)
	if s.retention > 0 {
		err = s.engine.SetTTL(k, data, s.retention)
	} else {
		err = s.engine.Set(k, data)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("record history: %w", err)
	}
	return e, nil
}

// List returns the newest entries first. limit <= 0 returns all of them.
func (s *Store) List(limit int) ([]Entry, error) {
	var entries []Entry
	err := s.engine.Scan([]byte(keyPrefix), func(_, value []byte) error {
		var e Entry
		if err := json.Unmarshal(value, &e); err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
