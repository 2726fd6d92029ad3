package drafts

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
)

var (
	// ErrDraftNotFound is returned when restoring an id that is not in the
	// drafts collection.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrNotRestorable marks an inert draft: a POST draft without its
	// image, or a REMIX draft missing any of root post, source id or
	// source image. Restoring one is a no-op.
	ErrNotRestorable = errors.New("draft is missing the context required to resume")

	// ErrMissingImage is returned when saving a post draft with no image;
	// a caption-only post draft is not resumable.
	ErrMissingImage = errors.New("post draft requires an image")
)

// PostSession is a rehydrated post-creation session.
type PostSession struct {
	Image   string
	Caption string
}

// RemixSession is a rehydrated remix session, including the previously
// generated result and secondary blend context, so the user resumes exactly
// where they left off.
type RemixSession struct {
	RootPostID        string
	SourceID          string
	SourceImage       string
	GeneratedImage    string
	Prompt            string
	SecondaryImage    string
	SecondaryParentID string
}

// Session is the result of restoring a draft. Exactly one of Post/Remix is
// set, matching Kind.
type Session struct {
	Kind  domain.DraftKind
	Post  *PostSession
	Remix *RemixSession
}

type Client interface {
	// Hydrate loads the drafts collection. Load failures degrade to
	// in-memory operation.
	Hydrate(ctx context.Context) error

	// List returns all drafts, most recent first.
	List() []domain.Draft

	// SavePostDraft snapshots an in-progress post creation.
	SavePostDraft(ctx context.Context, image, caption string) (*domain.Draft, error)

	// SaveRemixDraft snapshots an in-progress remix session. Never touches
	// Post/Remix state.
	SaveRemixDraft(ctx context.Context, s RemixSession) (*domain.Draft, error)

	// Restore rehydrates a draft into an editable session. The draft stays
	// in the collection; deletion is a separate, explicit action.
	Restore(id string) (*Session, error)

	// Delete removes a draft. Deleting a nonexistent id is not an error.
	Delete(ctx context.Context, id string) error

	// CleanupOlderThan deletes drafts older than maxAge, returning how many
	// were removed.
	CleanupOlderThan(ctx context.Context, maxAge time.Duration) (int, error)

	// ScheduleCleanup sets up the daily stale-draft cleanup job.
	ScheduleCleanup(ctx context.Context) error
}
