package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/pkg/logger"
)

// The session collection holds a single nullable user id.
type Snapshot struct {
	store  store.Store
	writer *store.Writer
	logger logger.Logger
}

func NewSnapshot(s store.Store, w *store.Writer, logger logger.Logger) *Snapshot {
	return &Snapshot{
		store:  s,
		writer: w,
		logger: logger.WithComponent("SessionRepo"),
	}
}

var _ Repository = (*Snapshot)(nil)

func (s *Snapshot) Load(ctx context.Context) (string, error) {
	data, err := s.store.Load(ctx, store.CollectionSession)
	if err != nil {
		return "", err
	}

	var userID *string
	if err := json.Unmarshal(data, &userID); err != nil {
		return "", fmt.Errorf("failed to decode session snapshot: %w", err)
	}
	if userID == nil {
		return "", nil
	}
	return *userID, nil
}

func (s *Snapshot) Save(ctx context.Context, userID string) error {
	return s.store.Save(ctx, store.CollectionSession, encode(userID))
}

func (s *Snapshot) SaveAsync(userID string) {
	s.writer.Enqueue(store.CollectionSession, encode(userID))
}

func encode(userID string) []byte {
	if userID == "" {
		return []byte("null")
	}
	data, _ := json.Marshal(userID)
	return data
}
