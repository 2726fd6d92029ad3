package store

import (
	"context"
	"errors"
)

// Collection names. Each one is persisted as a single opaque snapshot value;
// every mutation rewrites the whole collection, and only that collection.
const (
	CollectionPosts   = "posts"
	CollectionUsers   = "users"
	CollectionDrafts  = "drafts"
	CollectionSession = "session"
)

// ErrAbsent signals a collection that has never been written. Callers use it
// to tell "fresh install, seed with defaults" apart from "previously emptied".
var ErrAbsent = errors.New("collection has never been written")

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock.go
type Store interface {
	// Load reads the whole snapshot of a collection. Returns ErrAbsent if
	// the collection has never been written.
	Load(ctx context.Context, collection string) ([]byte, error)

	// Save replaces the whole snapshot of a collection.
	Save(ctx context.Context, collection string, snapshot []byte) error

	// ResetAll clears every collection. Readers must never observe a
	// partial reset; it completes only after all clears succeed.
	ResetAll(ctx context.Context) error
}
