package lineageimpl

import (
	"context"
	"errors"
	"sync"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/internal/repositories/posts"
	"github.com/orgball2608/remixgram/internal/seed"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PostsRepo posts.Repository
	Logger    logger.Logger
}

// LineageImpl owns the in-memory posts arena. All mutations are serialized
// through one mutex; snapshot writes go through the ordered async writer, so
// same-collection saves land in mutation order.
type LineageImpl struct {
	PostsRepo posts.Repository
	Logger    logger.Logger

	mu    sync.Mutex
	posts []*domain.Post
}

func New(opts Opts) *LineageImpl {
	return &LineageImpl{
		PostsRepo: opts.PostsRepo,
		Logger:    opts.Logger.WithComponent("Lineage"),
	}
}

var _ lineage.Client = (*LineageImpl)(nil)

func (l *LineageImpl) Hydrate(ctx context.Context) error {
	loaded, err := l.PostsRepo.Load(ctx)
	switch {
	case err == nil:
		// A previously emptied collection stays empty.
	case errors.Is(err, store.ErrAbsent):
		l.Logger.Info("Posts collection absent, seeding defaults")
		loaded = seed.Posts()
	default:
		l.Logger.Error("Failed to load posts, operating in-memory with defaults", "error", err)
		loaded = seed.Posts()
	}

	l.mu.Lock()
	l.posts = loaded
	l.mu.Unlock()
	return nil
}

// Posts returns deep copies, most recent first.
func (l *LineageImpl) Posts() []*domain.Post {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Post, 0, len(l.posts))
	for _, p := range l.posts {
		out = append(out, clonePost(p))
	}
	return out
}

func (l *LineageImpl) PostByID(id string) (*domain.Post, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.findPost(id)
	if p == nil {
		return nil, lineage.ErrPostNotFound
	}
	return clonePost(p), nil
}

// findPost must be called with the lock held.
func (l *LineageImpl) findPost(id string) *domain.Post {
	for _, p := range l.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// persist must be called with the lock held so the snapshot reflects the
// mutation that triggered it.
func (l *LineageImpl) persist() {
	l.PostsRepo.SaveAsync(l.posts)
}

func clonePost(p *domain.Post) *domain.Post {
	cp := *p
	cp.Comments = append([]domain.Comment(nil), p.Comments...)
	cp.Remixes = append([]domain.Remix(nil), p.Remixes...)
	return &cp
}
