package composerimpl

import (
	"context"

	"github.com/orgball2608/remixgram/internal/composer"
	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/drafts"
	"github.com/orgball2608/remixgram/internal/generator"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/internal/session"
	"github.com/orgball2608/remixgram/pkg/errors"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Generator generator.Client
	Lineage   lineage.Client
	Drafts    drafts.Client
	Session   *session.Manager
	Logger    logger.Logger
}

type ComposerImpl struct {
	Generator generator.Client
	Lineage   lineage.Client
	Drafts    drafts.Client
	Session   *session.Manager
	Logger    logger.Logger
}

func New(opts Opts) *ComposerImpl {
	return &ComposerImpl{
		Generator: opts.Generator,
		Lineage:   opts.Lineage,
		Drafts:    opts.Drafts,
		Session:   opts.Session,
		Logger:    opts.Logger.WithComponent("Composer"),
	}
}

var _ composer.Client = (*ComposerImpl)(nil)

func (c *ComposerImpl) Publish(ctx context.Context, image, caption string) (*domain.Post, error) {
	userID, ok := c.Session.Current()
	if !ok {
		return nil, session.ErrNotLoggedIn
	}
	if image == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "post requires an image")
	}

	if caption == "" {
		// Caption never fails; it falls back to a stock caption.
		caption = c.Generator.Caption(ctx, image)
	}

	return c.Lineage.PublishPost(ctx, image, caption, userID)
}

// PublishDraft publishes the draft's content, then deletes the draft. The
// draft survives a failed publish.
func (c *ComposerImpl) PublishDraft(ctx context.Context, draftID string) (*domain.Post, error) {
	restored, err := c.Drafts.Restore(draftID)
	if err != nil {
		return nil, err
	}
	if restored.Kind != domain.DraftKindPost {
		return nil, composer.ErrNotPostDraft
	}

	post, err := c.Publish(ctx, restored.Post.Image, restored.Post.Caption)
	if err != nil {
		return nil, err
	}

	if err := c.Drafts.Delete(ctx, draftID); err != nil {
		c.Logger.Warn("Published post but failed to delete its draft", "draft_id", draftID, "error", err)
	}
	return post, nil
}
