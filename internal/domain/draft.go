package domain

import "time"

type DraftKind string

const (
	DraftKindPost  DraftKind = "POST"
	DraftKindRemix DraftKind = "REMIX"
)

// Draft is a resumable snapshot of an in-progress creation session. Drafts
// live outside the lineage graph: saving one never touches Post/Remix state.
type Draft struct {
	ID        string          `json:"id"`
	Kind      DraftKind       `json:"type"`
	Post      *PostDraftData  `json:"post,omitempty"`
	Remix     *RemixDraftData `json:"remix,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PostDraftData struct {
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// RemixDraftData keeps both the immediate parent (SourceID) and the owning
// post (RootPostID); the parent alone cannot locate which post's remix list
// to append to on publish.
type RemixDraftData struct {
	RootPostID        string `json:"rootPostId"`
	SourceID          string `json:"sourceId"`
	SourceImage       string `json:"sourceImage"`
	GeneratedImage    string `json:"generatedImage,omitempty"`
	Prompt            string `json:"prompt,omitempty"`
	SecondaryImage    string `json:"secondaryImage,omitempty"`
	SecondaryParentID string `json:"secondaryParentId,omitempty"`
}
