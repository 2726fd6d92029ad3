// Package seed holds the data loaded into a fresh install, when every
// persisted collection reports absent. A previously emptied store is not
// reseeded.
package seed

import (
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
)

// DefaultUserID is the account the mock login flow signs in as.
const DefaultUserID = "u_alex"

func Users() map[string]domain.User {
	return map[string]domain.User{
		"u_alex": {
			ID:      "u_alex",
			Name:    "Alex Creative",
			Handle:  "@alex_creates",
			Avatar:  "https://picsum.photos/seed/alex/100/100",
			Bio:     "Digital artist remixed with a touch of AI.",
			Friends: []string{"u_jordan"},
		},
		"u_jordan": {
			ID:      "u_jordan",
			Name:    "Jordan Art",
			Handle:  "@jordan_art",
			Avatar:  "https://picsum.photos/seed/jordan/100/100",
			Bio:     "Visual storyteller. Remix me!",
			Friends: []string{"u_alex", "u_casey"},
		},
		"u_casey": {
			ID:      "u_casey",
			Name:    "Casey Design",
			Handle:  "@casey_d",
			Avatar:  "https://picsum.photos/seed/casey/100/100",
			Bio:     "Minimalist. Architect. Banana enthusiast.",
			Friends: []string{"u_jordan"},
		},
	}
}

func Posts() []*domain.Post {
	now := time.Now()
	return []*domain.Post{
		{
			ID:         "p_sunset",
			AuthorID:   "u_jordan",
			ImageURL:   "https://picsum.photos/seed/sunset/600/600",
			Caption:    "The sunset yesterday was surreal. Anyone want to remix this vibe?",
			CreatedAt:  now.Add(-3 * time.Hour),
			Likes:      42,
			Generation: 1,
			Comments: []domain.Comment{
				{ID: "c_colors", AuthorID: "u_casey", Text: "Love the colors in this!", CreatedAt: now.Add(-150 * time.Minute)},
				{ID: "c_vapor", AuthorID: "u_alex", Text: "I might try a vaporwave remix on this.", CreatedAt: now.Add(-2 * time.Hour)},
			},
			Remixes: []domain.Remix{
				{
					ID:         "r_cyber",
					AuthorID:   "u_casey",
					ImageURL:   "https://picsum.photos/seed/cyberpunk/600/600",
					Prompt:     "Make it a cyberpunk city at night",
					CreatedAt:  now.Add(-80 * time.Minute),
					ParentID:   "p_sunset",
					Generation: 2,
				},
			},
		},
		{
			ID:         "p_coffee",
			AuthorID:   "u_casey",
			ImageURL:   "https://picsum.photos/seed/coffee/600/600",
			Caption:    "Morning brew. Inspire me.",
			CreatedAt:  now.Add(-30 * time.Minute),
			Likes:      12,
			IsLiked:    true,
			Generation: 1,
			Comments:   []domain.Comment{},
			Remixes:    []domain.Remix{},
		},
		{
			ID:         "p_abstract",
			AuthorID:   "u_alex",
			ImageURL:   "https://picsum.photos/seed/abstract/600/600",
			Caption:    "My latest digital abstract.",
			CreatedAt:  now.Add(-14 * time.Hour),
			Likes:      85,
			Generation: 1,
			Comments:   []domain.Comment{},
			Remixes:    []domain.Remix{},
		},
	}
}

// TrendingStyles is the curated catalog feeding the remix-into-new-post flow.
func TrendingStyles() []domain.TrendingStyle {
	return []domain.TrendingStyle{
		{ID: "t1", Title: "Cyberpunk", Prompt: "Futuristic cyberpunk city with neon lights, high tech, rain, night time, detailed, 8k", Image: "https://picsum.photos/seed/cyber/300/300"},
		{ID: "t2", Title: "Van Gogh", Prompt: "Oil painting in the style of Starry Night by Van Gogh, swirling clouds, thick brushstrokes, vibrant colors", Image: "https://picsum.photos/seed/vangogh/300/300"},
		{ID: "t3", Title: "Lego World", Prompt: "Made entirely of lego bricks, plastic texture, macro photography, tilt shift", Image: "https://picsum.photos/seed/lego/300/300"},
		{ID: "t4", Title: "Paper Cutout", Prompt: "Layered paper cutout art, shadow depth, origami style, pastel colors, minimalist", Image: "https://picsum.photos/seed/paper/300/300"},
		{ID: "t5", Title: "Vaporwave", Prompt: "Vaporwave aesthetic, pink and blue gradients, greek statues, glitch art, 1990s computer graphics", Image: "https://picsum.photos/seed/vapor/300/300"},
		{ID: "t6", Title: "Studio Ghibli", Prompt: "Anime style background art by Studio Ghibli, lush green nature, puffy clouds, detailed, peaceful", Image: "https://picsum.photos/seed/ghibli/300/300"},
	}
}
