package lineageimpl

import (
	"context"
	"strings"
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/pkg/errors"
	"github.com/orgball2608/remixgram/pkg/idgen"
)

func (l *LineageImpl) ToggleLike(ctx context.Context, postID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	post := l.findPost(postID)
	if post == nil {
		return false, lineage.ErrPostNotFound
	}

	post.IsLiked = !post.IsLiked
	if post.IsLiked {
		post.Likes++
	} else {
		post.Likes--
	}
	l.persist()
	return post.IsLiked, nil
}

func (l *LineageImpl) ToggleSave(ctx context.Context, postID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	post := l.findPost(postID)
	if post == nil {
		return false, lineage.ErrPostNotFound
	}

	post.IsSaved = !post.IsSaved
	l.persist()
	return post.IsSaved, nil
}

// AddComment appends to the post's comment list. Comments are append-only.
func (l *LineageImpl) AddComment(ctx context.Context, postID, text, authorID string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "comment text is empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	post := l.findPost(postID)
	if post == nil {
		return nil, lineage.ErrPostNotFound
	}

	comment := domain.Comment{
		ID:        idgen.NewComment(),
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	post.Comments = append(post.Comments, comment)
	l.persist()
	return &comment, nil
}
