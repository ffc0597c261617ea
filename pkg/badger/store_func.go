package badger

import (
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrKeyNotFound is badger's missing-key error, re-exported for callers
// that do not import badger directly.
var ErrKeyNotFound = badger.ErrKeyNotFound

// TxFunc runs inside a badger transaction.
type TxFunc func(tx *badger.Txn) error

// TxSet runs fn in a read-write transaction.
func (e *Engine) TxSet(fn TxFunc) error {
	return e.db.Update(fn)
}

// TxGet runs fn in a read-only transaction.
func (e *Engine) TxGet(fn TxFunc) error {
	return e.db.View(fn)
}

// Set stores value under key.
func (e *Engine) Set(key, value []byte) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.Set(key, value)
	})
}

// SetTTL stores value under key and expires it after ttl.
func (e *Engine) SetTTL(key, value []byte, ttl time.Duration) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.SetEntry(badger.NewEntry(key, value).WithTTL(ttl))
	})
}

// Get returns a copy of the value stored under key.
func (e *Engine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.TxGet(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

// Del removes key.
func (e *Engine) Del(key []byte) error {
	return e.TxSet(func(tx *badger.Txn) error {
		return tx.Delete(key)
	})
}

// Exists reports whether key is present.
func (e *Engine) Exists(key []byte) (bool, error) {
	var exists bool
	err := e.TxGet(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		switch {
		case err == nil:
			exists = true
			return nil
		case errors.Is(err, badger.ErrKeyNotFound):
			return nil
		default:
			return err
		}
	})
	return exists, err
}

// BatchFunc fills a write batch.
type BatchFunc func(wb *badger.WriteBatch) error

// Batch runs fn against a write batch and flushes it.
func (e *Engine) Batch(fn BatchFunc) error {
	wb := e.db.NewWriteBatch()
	defer wb.Cancel()
	if err := fn(wb); err != nil {
		return err
	}
	return wb.Flush()
}

// GetKey returns all keys, or only those starting with prefix when
// prefix is non-nil. Keys come back in badger's sorted order.
func (e *Engine) GetKey(prefix []byte) ([][]byte, error) {
	var keys [][]byte

	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})

	return keys, err
}

// Scan calls fn for every key/value pair under prefix, in key order.
func (e *Engine) Scan(prefix []byte, fn func(key, value []byte) error) error {
	return e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()
			if err := item.Value(func(val []byte) error {
				return fn(key, val)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
