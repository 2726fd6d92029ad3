package lineage

import (
	"context"
	"errors"

	"github.com/orgball2608/remixgram/internal/domain"
)

var (
	// ErrPostNotFound is returned when a target post id resolves to nothing.
	ErrPostNotFound = errors.New("post not found")

	// ErrDanglingParent is returned when a remix references a source that is
	// neither the target post nor a remix inside it. The operation aborts
	// with no partial remix created.
	ErrDanglingParent = errors.New("remix source not found in post lineage")
)

// RemixInput describes a remix derivation. SourceID must equal PostID
// (remixing the original) or the id of a remix already in the post.
// SecondaryImage/SecondaryParentID are set for blends; SecondaryParentID is
// only set when the secondary image came from an internal post or remix.
type RemixInput struct {
	PostID            string
	SourceID          string
	ImageURL          string
	Prompt            string
	AuthorID          string
	SecondaryImage    string
	SecondaryParentID string
}

// Thread is the derivation tree of one post, rebuilt from the flat remix
// list by grouping children by parent id.
type Thread struct {
	Post     *domain.Post
	Children []*ThreadNode
}

type ThreadNode struct {
	Remix    *domain.Remix
	Children []*ThreadNode
}

type Client interface {
	// Hydrate loads the posts collection, seeding defaults on a fresh
	// install. Load failures degrade to in-memory operation.
	Hydrate(ctx context.Context) error

	// Posts returns all posts, most recent first.
	Posts() []*domain.Post

	PostByID(id string) (*domain.Post, error)

	// Thread rebuilds the derivation tree of a post.
	Thread(postID string) (*Thread, error)

	// CreateRemix derives a new remix inside an existing post's lineage.
	// The new remix's generation is strictly greater than its parent's;
	// for blends it credits the deeper of the two source lineages.
	CreateRemix(ctx context.Context, in RemixInput) (*domain.Remix, error)

	// PublishPost creates a new generation-1 root post.
	PublishPost(ctx context.Context, imageURL, caption, authorID string) (*domain.Post, error)

	// RemixIntoNewPost creates a generation-1 root from a styled fresh
	// upload. This is the explicit "no existing post target" mode; it never
	// touches another post's lineage.
	RemixIntoNewPost(ctx context.Context, imageURL, prompt, authorID string) (*domain.Post, error)

	ToggleLike(ctx context.Context, postID string) (bool, error)
	ToggleSave(ctx context.Context, postID string) (bool, error)
	AddComment(ctx context.Context, postID, text, authorID string) (*domain.Comment, error)
}
