package draftsimpl

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/drafts"
	draftsrepo "github.com/orgball2608/remixgram/internal/repositories/drafts"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/pkg/config"
	"github.com/orgball2608/remixgram/pkg/idgen"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	DraftsRepo draftsrepo.Repository
	Logger     logger.Logger
	Config     *config.Config
}

type DraftsImpl struct {
	DraftsRepo draftsrepo.Repository
	Logger     logger.Logger
	Config     *config.Config

	mu     sync.Mutex
	drafts []domain.Draft
}

func New(opts Opts) *DraftsImpl {
	return &DraftsImpl{
		DraftsRepo: opts.DraftsRepo,
		Logger:     opts.Logger.WithComponent("Drafts"),
		Config:     opts.Config,
	}
}

var _ drafts.Client = (*DraftsImpl)(nil)

func (d *DraftsImpl) Hydrate(ctx context.Context) error {
	loaded, err := d.DraftsRepo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrAbsent):
		loaded = []domain.Draft{}
	default:
		d.Logger.Error("Failed to load drafts, operating in-memory", "error", err)
		loaded = []domain.Draft{}
	}

	d.mu.Lock()
	d.drafts = loaded
	d.mu.Unlock()
	return nil
}

func (d *DraftsImpl) List() []domain.Draft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Draft(nil), d.drafts...)
}

func (d *DraftsImpl) SavePostDraft(ctx context.Context, image, caption string) (*domain.Draft, error) {
	if image == "" {
		return nil, drafts.ErrMissingImage
	}

	draft := domain.Draft{
		ID:   idgen.NewDraft(),
		Kind: domain.DraftKindPost,
		Post: &domain.PostDraftData{
			Image:   image,
			Caption: caption,
		},
		CreatedAt: time.Now(),
	}

	d.mu.Lock()
	d.drafts = append([]domain.Draft{draft}, d.drafts...)
	d.DraftsRepo.SaveAsync(d.drafts)
	d.mu.Unlock()

	d.Logger.Info("Post draft saved", "draft_id", draft.ID)
	return &draft, nil
}

func (d *DraftsImpl) SaveRemixDraft(ctx context.Context, s drafts.RemixSession) (*domain.Draft, error) {
	draft := domain.Draft{
		ID:   idgen.NewDraft(),
		Kind: domain.DraftKindRemix,
		Remix: &domain.RemixDraftData{
			RootPostID:        s.RootPostID,
			SourceID:          s.SourceID,
			SourceImage:       s.SourceImage,
			GeneratedImage:    s.GeneratedImage,
			Prompt:            s.Prompt,
			SecondaryImage:    s.SecondaryImage,
			SecondaryParentID: s.SecondaryParentID,
		},
		CreatedAt: time.Now(),
	}

	d.mu.Lock()
	d.drafts = append([]domain.Draft{draft}, d.drafts...)
	d.DraftsRepo.SaveAsync(d.drafts)
	d.mu.Unlock()

	d.Logger.Info("Remix draft saved", "draft_id", draft.ID, "root_post_id", s.RootPostID)
	return &draft, nil
}

// Restore never removes the draft from the collection, so the user can
// restore-and-abandon without losing it.
func (d *DraftsImpl) Restore(id string) (*drafts.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var draft *domain.Draft
	for i := range d.drafts {
		if d.drafts[i].ID == id {
			draft = &d.drafts[i]
			break
		}
	}
	if draft == nil {
		return nil, drafts.ErrDraftNotFound
	}

	switch draft.Kind {
	case domain.DraftKindPost:
		if draft.Post == nil || draft.Post.Image == "" {
			return nil, drafts.ErrNotRestorable
		}
		return &drafts.Session{
			Kind: domain.DraftKindPost,
			Post: &drafts.PostSession{
				Image:   draft.Post.Image,
				Caption: draft.Post.Caption,
			},
		}, nil
	case domain.DraftKindRemix:
		r := draft.Remix
		if r == nil || r.RootPostID == "" || r.SourceID == "" || r.SourceImage == "" {
			return nil, drafts.ErrNotRestorable
		}
		return &drafts.Session{
			Kind: domain.DraftKindRemix,
			Remix: &drafts.RemixSession{
				RootPostID:        r.RootPostID,
				SourceID:          r.SourceID,
				SourceImage:       r.SourceImage,
				GeneratedImage:    r.GeneratedImage,
				Prompt:            r.Prompt,
				SecondaryImage:    r.SecondaryImage,
				SecondaryParentID: r.SecondaryParentID,
			},
		}, nil
	default:
		return nil, drafts.ErrNotRestorable
	}
}

func (d *DraftsImpl) Delete(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.drafts[:0]
	removed := false
	for _, draft := range d.drafts {
		if draft.ID == id {
			removed = true
			continue
		}
		kept = append(kept, draft)
	}
	d.drafts = kept

	if removed {
		d.DraftsRepo.SaveAsync(d.drafts)
		d.Logger.Info("Draft deleted", "draft_id", id)
	}
	return nil
}
