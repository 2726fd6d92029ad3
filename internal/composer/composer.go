// Package composer owns the post-creation flow: captioning, publishing, and
// publishing from a restored draft.
package composer

import (
	"context"
	"errors"

	"github.com/orgball2608/remixgram/internal/domain"
)

// ErrNotPostDraft is returned when publishing a draft that is not a post
// draft; remix drafts resume through the remix session instead.
var ErrNotPostDraft = errors.New("draft is not a post draft")

type Client interface {
	// Publish creates a generation-1 post authored by the logged-in user.
	// An empty caption is filled in by the caption generator.
	Publish(ctx context.Context, image, caption string) (*domain.Post, error)

	// PublishDraft publishes a post draft and deletes it on success.
	PublishDraft(ctx context.Context, draftID string) (*domain.Post, error)
}
