package lineageimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/pkg/idgen"
)

// CreateRemix resolves the structural parent, computes the generation and
// prepends the remix to the post's list (most-recent-first ordering, which
// thread rendering relies on).
func (l *LineageImpl) CreateRemix(ctx context.Context, in lineage.RemixInput) (*domain.Remix, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	post := l.findPost(in.PostID)
	if post == nil {
		return nil, lineage.ErrPostNotFound
	}

	parentGen, err := l.parentGeneration(post, in.SourceID)
	if err != nil {
		return nil, err
	}

	newGen := parentGen + 1
	if in.SecondaryParentID != "" {
		// Blends credit the deeper lineage: max of both parents, plus one.
		if secondaryGen, ok := l.generationOf(in.SecondaryParentID); ok {
			if secondaryGen+1 > newGen {
				newGen = secondaryGen + 1
			}
		} else {
			l.Logger.Warn("Secondary parent not found, ignoring for generation",
				"secondary_parent_id", in.SecondaryParentID)
		}
	}

	remix := domain.Remix{
		ID:                idgen.NewRemix(),
		AuthorID:          in.AuthorID,
		ImageURL:          in.ImageURL,
		Prompt:            in.Prompt,
		CreatedAt:         time.Now(),
		ParentID:          in.SourceID,
		Generation:        newGen,
		SecondaryImage:    in.SecondaryImage,
		SecondaryParentID: in.SecondaryParentID,
	}

	post.Remixes = append([]domain.Remix{remix}, post.Remixes...)
	l.persist()

	l.Logger.Info("Remix created",
		"post_id", post.ID,
		"remix_id", remix.ID,
		"parent_id", remix.ParentID,
		"generation", remix.Generation,
	)
	return &remix, nil
}

// parentGeneration resolves the structural parent's generation. Must be
// called with the lock held.
func (l *LineageImpl) parentGeneration(post *domain.Post, sourceID string) (int, error) {
	if sourceID == post.ID {
		return post.Generation, nil
	}
	if parent := post.FindRemix(sourceID); parent != nil {
		return parent.Generation, nil
	}
	return 0, fmt.Errorf("%w: source %q in post %q", lineage.ErrDanglingParent, sourceID, post.ID)
}

// generationOf resolves an id against every post and remix in the arena.
// Must be called with the lock held.
func (l *LineageImpl) generationOf(id string) (int, bool) {
	for _, p := range l.posts {
		if p.ID == id {
			return p.Generation, true
		}
		if r := p.FindRemix(id); r != nil {
			return r.Generation, true
		}
	}
	return 0, false
}

func (l *LineageImpl) PublishPost(ctx context.Context, imageURL, caption, authorID string) (*domain.Post, error) {
	post := &domain.Post{
		ID:         idgen.NewPost(),
		AuthorID:   authorID,
		ImageURL:   imageURL,
		Caption:    caption,
		CreatedAt:  time.Now(),
		Generation: 1,
		Comments:   []domain.Comment{},
		Remixes:    []domain.Remix{},
	}

	l.mu.Lock()
	l.posts = append([]*domain.Post{post}, l.posts...)
	l.persist()
	l.mu.Unlock()

	l.Logger.Info("Post published", "post_id", post.ID, "author_id", authorID)
	return clonePost(post), nil
}

// RemixIntoNewPost handles the "no existing post target" path: a trending
// style applied to a fresh upload becomes a new generation-1 root, with no
// parent-generation computation.
func (l *LineageImpl) RemixIntoNewPost(ctx context.Context, imageURL, prompt, authorID string) (*domain.Post, error) {
	return l.PublishPost(ctx, imageURL, fmt.Sprintf("Remixed with style: %s", prompt), authorID)
}
