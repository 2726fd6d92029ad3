package generator

import (
	"context"
	"errors"
)

// ErrRateLimited marks a generation refused by the backend's quota. Callers
// should tell the user to wait and retry; the session keeps its prompt and
// source images.
var ErrRateLimited = errors.New("image generation rate limited")

// ErrGeneration marks any other generation failure. Recoverable by retrying
// or changing the prompt; local state is never corrupted.
var ErrGeneration = errors.New("image generation failed")

// DefaultSuggestions is the fallback prompt set when suggestion calls fail.
var DefaultSuggestions = []string{
	"Add a giant robot",
	"Change setting to Mars",
	"Place a dragon in the sky",
	"Make it underwater",
}

// DefaultCaption is the fallback for caption generation.
const DefaultCaption = "An interesting moment captured."

//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock.go
type Client interface {
	// Transform remixes the primary image according to the prompt,
	// blending in the secondary image when it is non-empty. Returns the
	// generated image URL. Fails with ErrRateLimited or a wrapped
	// ErrGeneration.
	Transform(ctx context.Context, primary, prompt, secondary string) (string, error)

	// Suggest returns exactly four remix prompt ideas for the image. It
	// never fails: on any error it returns DefaultSuggestions.
	Suggest(ctx context.Context, image string) []string

	// Enhance expands a rough prompt into a detailed one. On any failure
	// it returns the input unchanged.
	Enhance(ctx context.Context, prompt string) string

	// Caption writes a one-sentence caption for a new upload. On any
	// failure it returns DefaultCaption.
	Caption(ctx context.Context, image string) string
}
