package users

import (
	"context"
	"errors"

	"github.com/orgball2608/remixgram/internal/domain"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyFriend = errors.New("users are already friends")
	ErrSelfFriend    = errors.New("cannot befriend yourself")
)

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name   *string
	Handle *string
	Avatar *string
	Bio    *string
}

type Client interface {
	// Hydrate loads the user directory, seeding defaults on a fresh
	// install.
	Hydrate(ctx context.Context) error

	Get(id string) (domain.User, error)

	// All returns the directory keyed by user id.
	All() map[string]domain.User

	Signup(ctx context.Context, name, handle, avatar, bio string) (*domain.User, error)

	// AddFriend links two users. Friendship is symmetric and is added to
	// both sides atomically.
	AddFriend(ctx context.Context, userID, targetID string) error

	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
}
