package users

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
		logger: logger.WithComponent("UsersRepo"),
	}
}

var _ Repository = (*Snapshot)(nil)

func (s *Snapshot) Load(ctx context.Context) (map[string]domain.User, error) {
	data, err := s.store.Load(ctx, store.CollectionUsers)
	if err != nil {
		return nil, err
	}

	var users map[string]domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users snapshot: %w", err)
	}
	return users, nil
}

func (s *Snapshot) Save(ctx context.Context, users map[string]domain.User) error {
	data, err := encode(users)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, store.CollectionUsers, data)
}

func (s *Snapshot) SaveAsync(users map[string]domain.User) {
	data, err := encode(users)
	if err != nil {
		s.logger.Error("Failed to encode users snapshot", "error", err)
		return
	}
	s.writer.Enqueue(store.CollectionUsers, data)
}

func encode(users map[string]domain.User) ([]byte, error) {
	if users == nil {
		users = map[string]domain.User{}
	}
	data, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("failed to encode users snapshot: %w", err)
	}
	return data, nil
}
