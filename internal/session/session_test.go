package session

import (
	"context"
	"testing"

	sessionrepo "github.com/orgball2608/remixgram/internal/repositories/session"
	usersrepo "github.com/orgball2608/remixgram/internal/repositories/users"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/internal/users"
	"github.com/orgball2608/remixgram/internal/users/usersimpl"
	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	manager *Manager
	repo    *sessionrepo.Snapshot
	writer  *store.Writer
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	log := logger.New(logger.Opts{})
	mem := store.NewMemory()
	writer := store.NewWriter(mem, log)

	usersClient := usersimpl.New(usersimpl.Opts{
		UsersRepo: usersrepo.NewSnapshot(mem, writer, log),
		Logger:    log,
	})
	require.NoError(t, usersClient.Hydrate(context.Background()))

	repo := sessionrepo.NewSnapshot(mem, writer, log)
	return &sessionFixture{
		manager: New(Opts{SessionRepo: repo, Users: usersClient, Logger: log}),
		repo:    repo,
		writer:  writer,
	}
}

func TestHydrateStartsLoggedOutOnFreshInstall(t *testing.T) {
	f := newSessionFixture(t)
	require.NoError(t, f.manager.Hydrate(context.Background()))

	_, ok := f.manager.Current()
	assert.False(t, ok)
}

func TestHydrateRestoresPersistedUser(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.repo.Save(ctx, "u_jordan"))

	require.NoError(t, f.manager.Hydrate(ctx))
	current, ok := f.manager.Current()
	require.True(t, ok)
	assert.Equal(t, "u_jordan", current)
}

func TestHydrateDiscardsUnknownUser(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.repo.Save(ctx, "u_deleted"))

	require.NoError(t, f.manager.Hydrate(ctx))
	_, ok := f.manager.Current()
	assert.False(t, ok)
}

func TestLoginAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.manager.Hydrate(ctx))

	user, err := f.manager.Login(ctx, "u_alex")
	require.NoError(t, err)
	assert.Equal(t, "u_alex", user.ID)

	current, ok := f.manager.Current()
	require.True(t, ok)
	assert.Equal(t, "u_alex", current)

	// The pointer is persisted for the next start.
	f.writer.Flush()
	persisted, err := f.repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u_alex", persisted)

	f.manager.Logout(ctx)
	_, ok = f.manager.Current()
	assert.False(t, ok)

	f.writer.Flush()
	persisted, err = f.repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted, "logged-out state persists as empty, not absent")
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.manager.Hydrate(ctx))

	_, err := f.manager.Login(ctx, "u_gone")
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, ok := f.manager.Current()
	assert.False(t, ok)
}
