package domain

// TrendingStyle is a curated prompt applied to fresh uploads via the
// remix-into-new-post flow.
type TrendingStyle struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}
