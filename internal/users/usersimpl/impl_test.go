package usersimpl

import (
	"context"
	"strings"
	"testing"

	usersrepo "github.com/orgball2608/remixgram/internal/repositories/users"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/internal/users"
	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsersFixture(t *testing.T) *UsersImpl {
	t.Helper()

	log := logger.New(logger.Opts{})
	mem := store.NewMemory()
	repo := usersrepo.NewSnapshot(mem, store.NewWriter(mem, log), log)

	client := New(Opts{UsersRepo: repo, Logger: log})
	require.NoError(t, client.Hydrate(context.Background()))
	return client
}

func TestHydrateSeedsDefaults(t *testing.T) {
	client := newUsersFixture(t)

	user, err := client.Get("u_alex")
	require.NoError(t, err)
	assert.Equal(t, "@alex_creates", user.Handle)
	assert.Len(t, client.All(), 3)

	_, err = client.Get("u_gone")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestSignup(t *testing.T) {
	client := newUsersFixture(t)

	user, err := client.Signup(context.Background(), "Riley", "@riley", "https://img/r", "hi")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ID, "u_"))
	assert.Empty(t, user.Friends)

	got, err := client.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "@riley", got.Handle)
}

func TestAddFriend(t *testing.T) {
	ctx := context.Background()
	client := newUsersFixture(t)

	require.NoError(t, client.AddFriend(ctx, "u_alex", "u_casey"))

	alex, err := client.Get("u_alex")
	require.NoError(t, err)
	casey, err := client.Get("u_casey")
	require.NoError(t, err)
	assert.True(t, alex.HasFriend("u_casey"))
	assert.True(t, casey.HasFriend("u_alex"), "friendship is symmetric")

	assert.ErrorIs(t, client.AddFriend(ctx, "u_alex", "u_casey"), users.ErrAlreadyFriend)
	assert.ErrorIs(t, client.AddFriend(ctx, "u_alex", "u_alex"), users.ErrSelfFriend)
	assert.ErrorIs(t, client.AddFriend(ctx, "u_alex", "u_gone"), users.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	client := newUsersFixture(t)

	bio := "New bio"
	updated, err := client.UpdateProfile(ctx, "u_alex", users.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "New bio", updated.Bio)
	assert.Equal(t, "Alex Creative", updated.Name, "unset fields stay unchanged")

	_, err = client.UpdateProfile(ctx, "u_gone", users.ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
