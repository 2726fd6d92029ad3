package leaderboard

import (
	"testing"
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	now := time.Now()

	users := map[string]domain.User{
		"u_alex":   {ID: "u_alex", Name: "Alex"},
		"u_jordan": {ID: "u_jordan", Name: "Jordan"},
		"u_casey":  {ID: "u_casey", Name: "Casey"},
	}

	posts := []*domain.Post{
		{
			ID:         "p_1",
			AuthorID:   "u_alex",
			Likes:      10,
			Generation: 1,
			CreatedAt:  now,
			Remixes: []domain.Remix{
				{ID: "r_1", AuthorID: "u_jordan", ParentID: "p_1", Generation: 2},
				{ID: "r_2", AuthorID: "u_jordan", ParentID: "r_1", Generation: 3},
			},
		},
		{
			ID:         "p_2",
			AuthorID:   "u_alex",
			Likes:      5,
			Generation: 1,
			CreatedAt:  now,
			Remixes: []domain.Remix{
				{ID: "r_3", AuthorID: "u_jordan", ParentID: "p_2", Generation: 2},
			},
		},
	}

	entries := Compute(users, posts)
	require.Len(t, entries, 3)

	// Alex: 15 likes + 2 originals * 10 = 35.
	// Jordan: 3 remixes * 5 = 15, each remix counted exactly once.
	assert.Equal(t, "u_alex", entries[0].User.ID)
	assert.Equal(t, 35, entries[0].Score)
	assert.Equal(t, 2, entries[0].Originals)
	assert.Equal(t, 15, entries[0].Likes)

	assert.Equal(t, "u_jordan", entries[1].User.ID)
	assert.Equal(t, 15, entries[1].Score)
	assert.Equal(t, 3, entries[1].Remixes)

	assert.Equal(t, "u_casey", entries[2].User.ID)
	assert.Equal(t, 0, entries[2].Score)
}

func TestComputeCombinedScore(t *testing.T) {
	users := map[string]domain.User{
		"u_maker": {ID: "u_maker"},
	}

	// 2 originals with 10 and 5 likes, plus 3 remixes elsewhere:
	// 15 + 20 + 15 = 50.
	posts := []*domain.Post{
		{ID: "p_a", AuthorID: "u_maker", Likes: 10, Generation: 1},
		{ID: "p_b", AuthorID: "u_maker", Likes: 5, Generation: 1},
		{
			ID:         "p_other",
			AuthorID:   "u_else",
			Generation: 1,
			Remixes: []domain.Remix{
				{ID: "r_a", AuthorID: "u_maker", ParentID: "p_other", Generation: 2},
				{ID: "r_b", AuthorID: "u_maker", ParentID: "r_a", Generation: 3},
				{ID: "r_c", AuthorID: "u_maker", ParentID: "p_other", Generation: 2},
			},
		},
	}

	entries := Compute(users, posts)
	require.Len(t, entries, 1)
	assert.Equal(t, 50, entries[0].Score)
}

func TestComputeTiesAreDeterministic(t *testing.T) {
	users := map[string]domain.User{
		"u_b": {ID: "u_b"},
		"u_a": {ID: "u_a"},
		"u_c": {ID: "u_c"},
	}

	entries := Compute(users, nil)
	require.Len(t, entries, 3)
	assert.Equal(t, "u_a", entries[0].User.ID)
	assert.Equal(t, "u_b", entries[1].User.ID)
	assert.Equal(t, "u_c", entries[2].User.ID)
}
