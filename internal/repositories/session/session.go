package session

import (
	"context"
)

type Repository interface {
	// Load reads the persisted current-user pointer. Returns an empty
	// string for a logged-out session and store.ErrAbsent on a fresh
	// install.
	Load(ctx context.Context) (string, error)

	Save(ctx context.Context, userID string) error
	SaveAsync(userID string)
}
