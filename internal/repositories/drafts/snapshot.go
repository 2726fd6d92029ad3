package drafts

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
		logger: logger.WithComponent("DraftsRepo"),
	}
}

var _ Repository = (*Snapshot)(nil)

func (s *Snapshot) Load(ctx context.Context) ([]domain.Draft, error) {
	data, err := s.store.Load(ctx, store.CollectionDrafts)
	if err != nil {
		return nil, err
	}

	var drafts []domain.Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("failed to decode drafts snapshot: %w", err)
	}
	return drafts, nil
}

func (s *Snapshot) Save(ctx context.Context, drafts []domain.Draft) error {
	data, err := encode(drafts)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, store.CollectionDrafts, data)
}

func (s *Snapshot) SaveAsync(drafts []domain.Draft) {
	data, err := encode(drafts)
	if err != nil {
		s.logger.Error("Failed to encode drafts snapshot", "error", err)
		return
	}
	s.writer.Enqueue(store.CollectionDrafts, data)
}

func encode(drafts []domain.Draft) ([]byte, error) {
	if drafts == nil {
		drafts = []domain.Draft{}
	}
	data, err := json.Marshal(drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode drafts snapshot: %w", err)
	}
	return data, nil
}
