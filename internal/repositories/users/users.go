package users

import (
	"context"

	"github.com/orgball2608/remixgram/internal/domain"
)

type Repository interface {
	// Load reads the whole user directory, keyed by user id. Returns
	// store.ErrAbsent on a fresh install.
	Load(ctx context.Context) (map[string]domain.User, error)

	Save(ctx context.Context, users map[string]domain.User) error
	SaveAsync(users map[string]domain.User)
}
