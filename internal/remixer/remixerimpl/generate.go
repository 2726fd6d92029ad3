package remixerimpl

import (
	"context"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/drafts"
	"github.com/orgball2608/remixgram/internal/generator"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/internal/remixer"
)

// Generate runs the long-running transformation without holding the session
// lock. The session id is the validity token: if the user closed or replaced
// the session while the call was in flight, the result is dropped.
func (r *RemixerImpl) Generate(ctx context.Context, sessionID, prompt string) (string, error) {
	r.mu.Lock()
	if r.active == nil || r.active.id != sessionID {
		r.mu.Unlock()
		return "", remixer.ErrSessionClosed
	}
	primary := r.active.target.SourceImage
	secondary := r.active.secondaryImage
	r.mu.Unlock()

	userID, err := r.currentUser()
	if err != nil {
		return "", err
	}
	// Client-side throttle; callers present it as the same wait-and-retry
	// path as a backend rate limit.
	if !r.Limiter.Allow(userID) {
		return "", generator.ErrRateLimited
	}

	image, err := r.Generator.Transform(ctx, primary, prompt, secondary)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil || r.active.id != sessionID {
		r.Logger.Info("Discarding stale generation result", "session_id", sessionID)
		return "", remixer.ErrSessionClosed
	}
	r.active.prompt = prompt
	r.active.generated = image
	return image, nil
}

func (r *RemixerImpl) Suggestions(ctx context.Context, sessionID string) ([]string, error) {
	r.mu.Lock()
	if r.active == nil || r.active.id != sessionID {
		r.mu.Unlock()
		return nil, remixer.ErrSessionClosed
	}
	source := r.active.target.SourceImage
	r.mu.Unlock()

	suggestions := r.Generator.Suggest(ctx, source)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil || r.active.id != sessionID {
		return nil, remixer.ErrSessionClosed
	}
	return suggestions, nil
}

func (r *RemixerImpl) EnhancePrompt(ctx context.Context, sessionID, prompt string) (string, error) {
	r.mu.Lock()
	if r.active == nil || r.active.id != sessionID {
		r.mu.Unlock()
		return "", remixer.ErrSessionClosed
	}
	r.mu.Unlock()

	return r.Generator.Enhance(ctx, prompt), nil
}

func (r *RemixerImpl) SaveDraft(ctx context.Context, sessionID string) (*domain.Draft, error) {
	r.mu.Lock()
	if r.active == nil || r.active.id != sessionID {
		r.mu.Unlock()
		return nil, remixer.ErrSessionClosed
	}
	if r.active.target.Mode != remixer.TargetModeThread {
		r.mu.Unlock()
		return nil, remixer.ErrNotDraftable
	}
	snap := drafts.RemixSession{
		RootPostID:        r.active.target.PostID,
		SourceID:          r.active.target.SourceID,
		SourceImage:       r.active.target.SourceImage,
		GeneratedImage:    r.active.generated,
		Prompt:            r.active.prompt,
		SecondaryImage:    r.active.secondaryImage,
		SecondaryParentID: r.active.secondaryParentID,
	}
	r.mu.Unlock()

	return r.Drafts.SaveRemixDraft(ctx, snap)
}

func (r *RemixerImpl) Accept(ctx context.Context, sessionID string) (*remixer.Remixed, error) {
	userID, err := r.currentUser()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.active == nil || r.active.id != sessionID {
		r.mu.Unlock()
		return nil, remixer.ErrSessionClosed
	}
	if r.active.generated == "" {
		r.mu.Unlock()
		return nil, remixer.ErrNothingGenerated
	}
	s := *r.active
	r.mu.Unlock()

	var result remixer.Remixed
	switch s.target.Mode {
	case remixer.TargetModeNewPost:
		post, err := r.Lineage.RemixIntoNewPost(ctx, s.generated, s.prompt, userID)
		if err != nil {
			return nil, err
		}
		result.Post = post
	default:
		rm, err := r.Lineage.CreateRemix(ctx, lineage.RemixInput{
			PostID:            s.target.PostID,
			SourceID:          s.target.SourceID,
			ImageURL:          s.generated,
			Prompt:            s.prompt,
			AuthorID:          userID,
			SecondaryImage:    s.secondaryImage,
			SecondaryParentID: s.secondaryParentID,
		})
		if err != nil {
			return nil, err
		}
		result.Remix = rm
	}

	r.Close(sessionID)
	return &result, nil
}
