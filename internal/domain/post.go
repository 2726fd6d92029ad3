package domain

import "time"

// Post is a root of a lineage tree. Generation is always 1.
//
// Remixes are stored as a flat most-recent-first list, not a nested tree;
// the derivation tree is rebuilt on read by following ParentID chains.
type Post struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	ImageURL   string    `json:"imageUrl"`
	Caption    string    `json:"caption"`
	CreatedAt  time.Time `json:"createdAt"`
	Likes      int       `json:"likes"`
	IsLiked    bool      `json:"isLiked"`
	IsSaved    bool      `json:"isSaved"`
	Comments   []Comment `json:"comments"`
	Remixes    []Remix   `json:"remixes"`
	Generation int       `json:"generation"` // 1 for original posts
}

// FindRemix returns the remix with the given id, or nil.
func (p *Post) FindRemix(id string) *Remix {
	for i := range p.Remixes {
		if p.Remixes[i].ID == id {
			return &p.Remixes[i]
		}
	}
	return nil
}

// Remix is an AI-transformed derivative. ParentID references the owning
// post's id or another remix id within the same post; never a cross-post
// reference. Remixes are immutable once created.
type Remix struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	ImageURL   string    `json:"imageUrl"`
	Prompt     string    `json:"prompt"` // the "idea" behind the remix
	CreatedAt  time.Time `json:"createdAt"`
	ParentID   string    `json:"parentId"`
	Generation int       `json:"generation"` // strictly greater than the parent's

	// Multimodal blending
	SecondaryImage    string `json:"secondaryImage,omitempty"`
	SecondaryParentID string `json:"secondaryParentId,omitempty"` // set if the secondary image came from an internal post
}

type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
