package posts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/pkg/logger"
)

type Snapshot struct {
	store  store.Store
	writer *store.Writer
	logger logger.Logger
}

func NewSnapshot(s store.Store, w *store.Writer, logger logger.Logger) *Snapshot {
	return &Snapshot{
		store:  s,
		writer: w,
		logger: logger.WithComponent("PostsRepo"),
	}
}

var _ Repository = (*Snapshot)(nil)

func (s *Snapshot) Load(ctx context.Context) ([]*domain.Post, error) {
	data, err := s.store.Load(ctx, store.CollectionPosts)
	if err != nil {
		return nil, err
	}

	var posts []*domain.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts snapshot: %w", err)
	}
	return posts, nil
}

func (s *Snapshot) Save(ctx context.Context, posts []*domain.Post) error {
	data, err := encode(posts)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, store.CollectionPosts, data)
}

func (s *Snapshot) SaveAsync(posts []*domain.Post) {
	data, err := encode(posts)
	if err != nil {
		s.logger.Error("Failed to encode posts snapshot", "error", err)
		return
	}
	s.writer.Enqueue(store.CollectionPosts, data)
}

func encode(posts []*domain.Post) ([]byte, error) {
	if posts == nil {
		posts = []*domain.Post{}
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode posts snapshot: %w", err)
	}
	return data, nil
}
