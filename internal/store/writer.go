package store

import (
	"context"
	"sync"
	"time"

	"github.com/orgball2608/remixgram/pkg/logger"
)

const saveTimeout = 15 * time.Second

// Writer applies snapshot saves asynchronously, one worker per collection,
// so writes to the same collection land in the order their mutations
// occurred. A slow early write can never clobber a later one. Failures are
// logged and dropped: durability is best-effort, the session keeps running
// in memory.
type Writer struct {
	store  Store
	logger logger.Logger

	mu     sync.Mutex
	queues map[string]*collectionQueue
	wg     sync.WaitGroup
}

type collectionQueue struct {
	pending  [][]byte
	draining bool
}

func NewWriter(store Store, logger logger.Logger) *Writer {
	return &Writer{
		store:  store,
		logger: logger.WithComponent("SnapshotWriter"),
		queues: make(map[string]*collectionQueue),
	}
}

// Enqueue schedules a snapshot save. Never blocks the caller.
func (w *Writer) Enqueue(collection string, snapshot []byte) {
	w.mu.Lock()
	q, ok := w.queues[collection]
	if !ok {
		q = &collectionQueue{}
		w.queues[collection] = q
	}
	q.pending = append(q.pending, snapshot)
	if !q.draining {
		q.draining = true
		w.wg.Add(1)
		go w.drain(collection, q)
	}
	w.mu.Unlock()
}

func (w *Writer) drain(collection string, q *collectionQueue) {
	defer w.wg.Done()
	for {
		w.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			w.mu.Unlock()
			return
		}
		next := q.pending[0]
		q.pending = q.pending[1:]
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := w.store.Save(ctx, collection, next); err != nil {
			w.logger.Error("Failed to persist snapshot, operating in-memory",
				"collection", collection,
				"error", err,
			)
		}
		cancel()
	}
}

// Flush blocks until every queued save has been attempted.
func (w *Writer) Flush() {
	w.wg.Wait()
}
