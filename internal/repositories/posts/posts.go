package posts

import (
	"context"

	"github.com/orgball2608/remixgram/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=posts.go -destination=mocks/mock.go
type Repository interface {
	// Load reads the whole posts collection. Returns store.ErrAbsent on a
	// fresh install so callers can seed defaults.
	Load(ctx context.Context) ([]*domain.Post, error)

	// Save synchronously rewrites the whole posts collection.
	Save(ctx context.Context, posts []*domain.Post) error

	// SaveAsync queues a whole-collection rewrite. Writes apply in call
	// order; failures are logged, never surfaced.
	SaveAsync(posts []*domain.Post)
}
