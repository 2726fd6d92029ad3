package drafts

import (
	"context"

	"github.com/orgball2608/remixgram/internal/domain"
)

type Repository interface {
	// Load reads the whole drafts collection. Returns store.ErrAbsent on a
	// fresh install.
	Load(ctx context.Context) ([]domain.Draft, error)

	Save(ctx context.Context, drafts []domain.Draft) error
	SaveAsync(drafts []domain.Draft)
}
