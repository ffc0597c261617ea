package badger

import (
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrCloseTimeout is returned when the GC loop does not stop in time.
var ErrCloseTimeout = errors.New("badger engine close timeout")

// Engine wraps a badger DB with a background value-log GC loop.
type Engine struct {
	db *badger.DB

	gcInterval   time.Duration      // value-log GC interval
	gcUpdateChan chan time.Duration // interval updates for the GC loop

	done      chan struct{} // stop signal for the GC loop
	stopped   chan struct{} // closed once the GC loop has returned
	closeOnce sync.Once
	err       error
}

// New opens a badger engine with the given options.
func New(opt badger.Options) (*Engine, error) {
	return open(opt)
}

// Default opens an on-disk engine in dir with badger's logger silenced.
func Default(dir string) (*Engine, error) {
	return open(badger.DefaultOptions(dir).WithLogger(nil))
}

// InMemory opens an engine that keeps everything in memory.
func InMemory() (*Engine, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opt badger.Options) (*Engine, error) {
	db, err := badger.Open(opt)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		db: db,

		gcInterval:   5 * time.Minute,
		gcUpdateChan: make(chan time.Duration),

		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go e.runGC(opt.InMemory)
	return e, nil
}

// runGC periodically rewrites the value log until Close is called.
func (e *Engine) runGC(inMemory bool) {
	defer close(e.stopped)

	ticker := time.NewTicker(e.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			if inMemory {
				continue
			}
			// ErrNoRewrite is the normal "nothing to collect" result.
			_ = e.db.RunValueLogGC(0.5)
		case interval := <-e.gcUpdateChan:
			e.gcInterval = interval
			ticker.Reset(interval)
		}
	}
}

// SetGCInterval changes the GC interval. Non-positive values are ignored.
func (e *Engine) SetGCInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	select {
	case e.gcUpdateChan <- interval:
	case <-e.stopped:
	}
}

// Close stops the GC loop and closes the database. It is safe to call
// more than once.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.done)
		select {
		case <-e.stopped:
		case <-time.After(5 * time.Second):
			e.err = ErrCloseTimeout
			return
		}
		e.err = e.db.Close()
	})
	return e.err
}
