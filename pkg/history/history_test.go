package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miajio/nlsql/pkg/badger"
)

func newTestStore(t *testing.T, retention time.Duration) *Store {
	t.Helper()
	engine, err := badger.InMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return NewStore(engine, retention)
}

func TestStore_RecordAndList(t *testing.T) {
	s := newTestStore(t, 0)
	base := time.Date(2025, 7, 21, 10, 0, 0, 0, time.UTC)
	calls := 0
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}

	first, err := s.Record("dame los clientes", "SELECT * FROM clientes", "SELECT * FROM clientes")
	require.NoError(t, err)
	assert.False(t, first.Corrected)
	assert.NotEmpty(t, first.ID)

	second, err := s.Record("dame las bontas", "SELECT * FROM bontas", "SELECT * FROM ventas")
	require.NoError(t, err)
	assert.True(t, second.Corrected)

	all, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, "SELECT * FROM ventas", all[0].Final)

	latest, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, second.ID, latest[0].ID)
}

func TestStore_Retention(t *testing.T) {
	s := newTestStore(t, time.Hour)
	_, err := s.Record("dame los clientes", "SELECT * FROM clientes", "SELECT * FROM clientes")
	require.NoError(t, err)

	entries, err := s.List(0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_Empty(t *testing.T) {
	entries, err := newTestStore(t, 0).List(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
