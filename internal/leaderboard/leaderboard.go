// Package leaderboard is a pure read-side projection over users and posts.
package leaderboard

import (
	"sort"

	"github.com/orgball2608/remixgram/internal/domain"
)

const (
	originalPoints = 10
	remixPoints    = 5
)

type Entry struct {
	User      domain.User
	Originals int
	Remixes   int
	Likes     int
	Score     int
}

// Compute ranks every user by
//
//	score = sum(likes of the user's posts) + originals*10 + remixes*5
//
// with a single remix credit. Sorted descending by score; ties break on
// user id so the result is deterministic.
func Compute(users map[string]domain.User, posts []*domain.Post) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, user := range users {
		e := Entry{User: user}
		for _, p := range posts {
			if p.AuthorID == user.ID {
				e.Originals++
				e.Likes += p.Likes
			}
			for _, r := range p.Remixes {
				if r.AuthorID == user.ID {
					e.Remixes++
				}
			}
		}
		e.Score = e.Likes + e.Originals*originalPoints + e.Remixes*remixPoints
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].User.ID < entries[j].User.ID
	})
	return entries
}
