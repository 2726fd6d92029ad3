package remixer

import (
	"context"
	"errors"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/drafts"
)

var (
	// ErrSessionClosed is returned when an operation targets a remix
	// session the user has since closed or replaced. In-flight generation
	// results for such sessions are discarded, never applied.
	ErrSessionClosed = errors.New("remix session is no longer active")

	// ErrNothingGenerated is returned when accepting a session that has no
	// generated image yet.
	ErrNothingGenerated = errors.New("no generated image to accept")

	// ErrNotDraftable is returned when saving a draft of a new-post
	// session; only thread sessions carry the context a remix draft needs.
	ErrNotDraftable = errors.New("session cannot be saved as a remix draft")
)

// TargetMode distinguishes deriving inside an existing thread from applying
// a style to a fresh upload. The two share the remix UI but must never be
// inferred from each other.
type TargetMode string

const (
	TargetModeThread  TargetMode = "THREAD"
	TargetModeNewPost TargetMode = "NEW_POST"
)

type Target struct {
	Mode        TargetMode
	PostID      string // owning post; empty in NEW_POST mode
	SourceID    string // immediate parent; empty in NEW_POST mode
	SourceImage string
}

// Session is a caller-facing snapshot of the active remix session.
type Session struct {
	ID                string
	Target            Target
	Prompt            string
	GeneratedImage    string
	SecondaryImage    string
	SecondaryParentID string
}

// Remixed holds whichever entity accepting the session produced.
type Remixed struct {
	Remix *domain.Remix // THREAD mode
	Post  *domain.Post  // NEW_POST mode
}

// Client orchestrates one remix session at a time. Opening a session
// supersedes the previous one; results from superseded sessions are dropped.
type Client interface {
	// Open starts a session, replacing any active one.
	Open(target Target) Session

	// OpenFromDraft resumes a restored remix draft, including the prior
	// generated image and secondary blend context.
	OpenFromDraft(s drafts.RemixSession) Session

	Active() (Session, bool)

	// Close discards the session. Closing a superseded id is a no-op.
	Close(sessionID string)

	// SetSecondary attaches a blend source. parentID is set only when the
	// image came from an internal post or remix.
	SetSecondary(sessionID, image, parentID string) error

	// Generate runs the transformation. The result is applied to the
	// session only if it is still the active one; otherwise the call
	// returns ErrSessionClosed and the image is discarded.
	Generate(ctx context.Context, sessionID, prompt string) (string, error)

	// Suggestions returns four prompt ideas for the session's source image.
	Suggestions(ctx context.Context, sessionID string) ([]string, error)

	// EnhancePrompt expands a rough prompt; returns it unchanged on
	// backend failure.
	EnhancePrompt(ctx context.Context, sessionID, prompt string) (string, error)

	// SaveDraft snapshots the session into the drafts collection. The
	// session stays open.
	SaveDraft(ctx context.Context, sessionID string) (*domain.Draft, error)

	// Accept publishes the generated image: a new remix in THREAD mode, a
	// new generation-1 post in NEW_POST mode. Closes the session.
	Accept(ctx context.Context, sessionID string) (*Remixed, error)
}
