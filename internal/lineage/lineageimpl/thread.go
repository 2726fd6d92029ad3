package lineageimpl

import (
	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/lineage"
)

// Thread rebuilds the derivation tree from the flat remix list. Children are
// grouped by parent id; list order (most recent first) is preserved at every
// level.
func (l *LineageImpl) Thread(postID string) (*lineage.Thread, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	post := l.findPost(postID)
	if post == nil {
		return nil, lineage.ErrPostNotFound
	}

	byParent := make(map[string][]*domain.Remix)
	for i := range post.Remixes {
		r := &post.Remixes[i]
		byParent[r.ParentID] = append(byParent[r.ParentID], r)
	}

	return &lineage.Thread{
		Post:     clonePost(post),
		Children: buildNodes(byParent, post.ID),
	}, nil
}

func buildNodes(byParent map[string][]*domain.Remix, parentID string) []*lineage.ThreadNode {
	remixes := byParent[parentID]
	if len(remixes) == 0 {
		return nil
	}
	nodes := make([]*lineage.ThreadNode, 0, len(remixes))
	for _, r := range remixes {
		cp := *r
		nodes = append(nodes, &lineage.ThreadNode{
			Remix:    &cp,
			Children: buildNodes(byParent, r.ID),
		})
	}
	return nodes
}
