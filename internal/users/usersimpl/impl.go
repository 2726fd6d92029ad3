package usersimpl

import (
	"context"
	"errors"
	"sync"

	"github.com/orgball2608/remixgram/internal/domain"
	usersrepo "github.com/orgball2608/remixgram/internal/repositories/users"
	"github.com/orgball2608/remixgram/internal/seed"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/internal/users"
	"github.com/orgball2608/remixgram/pkg/idgen"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	UsersRepo usersrepo.Repository
	Logger    logger.Logger
}

type UsersImpl struct {
	UsersRepo usersrepo.Repository
	Logger    logger.Logger

	mu    sync.Mutex
	users map[string]domain.User
}

func New(opts Opts) *UsersImpl {
	return &UsersImpl{
		UsersRepo: opts.UsersRepo,
		Logger:    opts.Logger.WithComponent("Users"),
		users:     map[string]domain.User{},
	}
}

var _ users.Client = (*UsersImpl)(nil)

func (u *UsersImpl) Hydrate(ctx context.Context) error {
	loaded, err := u.UsersRepo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrAbsent):
		u.Logger.Info("Users collection absent, seeding defaults")
		loaded = seed.Users()
	default:
		u.Logger.Error("Failed to load users, operating in-memory with defaults", "error", err)
		loaded = seed.Users()
	}

	u.mu.Lock()
	u.users = loaded
	u.mu.Unlock()
	return nil
}

func (u *UsersImpl) Get(id string) (domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.users[id]
	if !ok {
		return domain.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (u *UsersImpl) All() map[string]domain.User {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make(map[string]domain.User, len(u.users))
	for id, user := range u.users {
		out[id] = user
	}
	return out
}

func (u *UsersImpl) Signup(ctx context.Context, name, handle, avatar, bio string) (*domain.User, error) {
	user := domain.User{
		ID:      idgen.NewUser(),
		Name:    name,
		Handle:  handle,
		Avatar:  avatar,
		Bio:     bio,
		Friends: []string{},
	}

	u.mu.Lock()
	u.users[user.ID] = user
	u.UsersRepo.SaveAsync(u.users)
	u.mu.Unlock()

	u.Logger.Info("User signed up", "user_id", user.ID, "handle", handle)
	return &user, nil
}

// AddFriend updates both sides under one lock hold and persists once, so a
// half-linked friendship is never observable.
func (u *UsersImpl) AddFriend(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return users.ErrSelfFriend
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	a, ok := u.users[userID]
	if !ok {
		return users.ErrUserNotFound
	}
	b, ok := u.users[targetID]
	if !ok {
		return users.ErrUserNotFound
	}
	if a.HasFriend(targetID) {
		return users.ErrAlreadyFriend
	}

	a.Friends = append(append([]string(nil), a.Friends...), targetID)
	b.Friends = append(append([]string(nil), b.Friends...), userID)
	u.users[userID] = a
	u.users[targetID] = b
	u.UsersRepo.SaveAsync(u.users)
	return nil
}

func (u *UsersImpl) UpdateProfile(ctx context.Context, id string, update users.ProfileUpdate) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Handle != nil {
		user.Handle = *update.Handle
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}

	u.users[id] = user
	u.UsersRepo.SaveAsync(u.users)
	return &user, nil
}
