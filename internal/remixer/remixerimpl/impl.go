package remixerimpl

import (
	"sync"

	"github.com/orgball2608/remixgram/internal/drafts"
	"github.com/orgball2608/remixgram/internal/generator"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/internal/ratelimit"
	"github.com/orgball2608/remixgram/internal/remixer"
	"github.com/orgball2608/remixgram/internal/session"
	"github.com/orgball2608/remixgram/pkg/idgen"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Generator generator.Client
	Lineage   lineage.Client
	Drafts    drafts.Client
	Session   *session.Manager
	Limiter   ratelimit.Limiter
	Logger    logger.Logger
}

type RemixerImpl struct {
	Generator generator.Client
	Lineage   lineage.Client
	Drafts    drafts.Client
	Session   *session.Manager
	Limiter   ratelimit.Limiter
	Logger    logger.Logger

	mu     sync.Mutex
	active *state
}

// state is the mutable session; the id doubles as the validity token for
// async completions.
type state struct {
	id                string
	target            remixer.Target
	prompt            string
	generated         string
	secondaryImage    string
	secondaryParentID string
}

func New(opts Opts) *RemixerImpl {
	return &RemixerImpl{
		Generator: opts.Generator,
		Lineage:   opts.Lineage,
		Drafts:    opts.Drafts,
		Session:   opts.Session,
		Limiter:   opts.Limiter,
		Logger:    opts.Logger.WithComponent("Remixer"),
	}
}

var _ remixer.Client = (*RemixerImpl)(nil)

func (r *RemixerImpl) Open(target remixer.Target) remixer.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = &state{
		id:     idgen.New("rs"),
		target: target,
	}
	return r.active.snapshot()
}

func (r *RemixerImpl) OpenFromDraft(s drafts.RemixSession) remixer.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = &state{
		id: idgen.New("rs"),
		target: remixer.Target{
			Mode:        remixer.TargetModeThread,
			PostID:      s.RootPostID,
			SourceID:    s.SourceID,
			SourceImage: s.SourceImage,
		},
		prompt:            s.Prompt,
		generated:         s.GeneratedImage,
		secondaryImage:    s.SecondaryImage,
		secondaryParentID: s.SecondaryParentID,
	}
	return r.active.snapshot()
}

func (r *RemixerImpl) Active() (remixer.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return remixer.Session{}, false
	}
	return r.active.snapshot(), true
}

func (r *RemixerImpl) Close(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil && r.active.id == sessionID {
		r.active = nil
	}
}

func (r *RemixerImpl) SetSecondary(sessionID, image, parentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil || r.active.id != sessionID {
		return remixer.ErrSessionClosed
	}
	r.active.secondaryImage = image
	r.active.secondaryParentID = parentID
	return nil
}

func (s *state) snapshot() remixer.Session {
	return remixer.Session{
		ID:                s.id,
		Target:            s.target,
		Prompt:            s.prompt,
		GeneratedImage:    s.generated,
		SecondaryImage:    s.secondaryImage,
		SecondaryParentID: s.secondaryParentID,
	}
}

// currentUser resolves the logged-in author for a mutation.
func (r *RemixerImpl) currentUser() (string, error) {
	userID, ok := r.Session.Current()
	if !ok {
		return "", session.ErrNotLoggedIn
	}
	return userID, nil
}
