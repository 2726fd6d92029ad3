package draftsimpl

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/remixgram/internal/domain"
	"github.com/orgball2608/remixgram/internal/drafts"
	draftsrepo "github.com/orgball2608/remixgram/internal/repositories/drafts"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/pkg/config"
	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftsFixture(t *testing.T) *DraftsImpl {
	t.Helper()

	log := logger.New(logger.Opts{})
	mem := store.NewMemory()
	repo := draftsrepo.NewSnapshot(mem, store.NewWriter(mem, log), log)

	client := New(Opts{DraftsRepo: repo, Logger: log, Config: &config.Config{}})
	require.NoError(t, client.Hydrate(context.Background()))
	return client
}

func TestSavePostDraft(t *testing.T) {
	ctx := context.Background()
	client := newDraftsFixture(t)

	_, err := client.SavePostDraft(ctx, "", "caption only")
	assert.ErrorIs(t, err, drafts.ErrMissingImage)

	first, err := client.SavePostDraft(ctx, "https://img/1", "first")
	require.NoError(t, err)
	second, err := client.SavePostDraft(ctx, "https://img/2", "second")
	require.NoError(t, err)

	list := client.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "most recent draft first")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestSaveRemixDraft(t *testing.T) {
	ctx := context.Background()
	client := newDraftsFixture(t)

	draft, err := client.SaveRemixDraft(ctx, drafts.RemixSession{
		RootPostID:     "p_sunset",
		SourceID:       "r_cyber",
		SourceImage:    "https://img/source",
		GeneratedImage: "https://img/generated",
		Prompt:         "Add rain",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DraftKindRemix, draft.Kind)
	require.NotNil(t, draft.Remix)
	assert.Equal(t, "p_sunset", draft.Remix.RootPostID)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("post draft round-trips", func(t *testing.T) {
		client := newDraftsFixture(t)
		draft, err := client.SavePostDraft(ctx, "https://img/1", "hello")
		require.NoError(t, err)

		session, err := client.Restore(draft.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DraftKindPost, session.Kind)
		require.NotNil(t, session.Post)
		assert.Equal(t, "https://img/1", session.Post.Image)
		assert.Equal(t, "hello", session.Post.Caption)

		// Restoring must not consume the draft.
		assert.Len(t, client.List(), 1)
	})

	t.Run("remix draft round-trips with blend context", func(t *testing.T) {
		client := newDraftsFixture(t)
		draft, err := client.SaveRemixDraft(ctx, drafts.RemixSession{
			RootPostID:        "p_sunset",
			SourceID:          "p_sunset",
			SourceImage:       "https://img/source",
			GeneratedImage:    "https://img/generated",
			Prompt:            "Blend",
			SecondaryImage:    "https://img/secondary",
			SecondaryParentID: "r_cyber",
		})
		require.NoError(t, err)

		session, err := client.Restore(draft.ID)
		require.NoError(t, err)
		require.NotNil(t, session.Remix)
		assert.Equal(t, "https://img/generated", session.Remix.GeneratedImage)
		assert.Equal(t, "r_cyber", session.Remix.SecondaryParentID)
	})

	t.Run("unknown id", func(t *testing.T) {
		client := newDraftsFixture(t)
		_, err := client.Restore("d_gone")
		assert.ErrorIs(t, err, drafts.ErrDraftNotFound)
	})

	t.Run("remix draft missing its source context is inert", func(t *testing.T) {
		client := newDraftsFixture(t)
		draft, err := client.SaveRemixDraft(ctx, drafts.RemixSession{
			RootPostID: "p_sunset",
			// No SourceID or SourceImage: nothing to resume against.
			GeneratedImage: "https://img/generated",
		})
		require.NoError(t, err)

		_, err = client.Restore(draft.ID)
		assert.ErrorIs(t, err, drafts.ErrNotRestorable)
		assert.Len(t, client.List(), 1, "inert draft stays until explicitly deleted")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	client := newDraftsFixture(t)

	draft, err := client.SavePostDraft(ctx, "https://img/1", "")
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, draft.ID))
	assert.Empty(t, client.List())

	// Deleting again is a no-op, not an error.
	require.NoError(t, client.Delete(ctx, draft.ID))
	require.NoError(t, client.Delete(ctx, "d_gone"))
}

func TestCleanupOlderThan(t *testing.T) {
	ctx := context.Background()
	client := newDraftsFixture(t)

	fresh, err := client.SavePostDraft(ctx, "https://img/fresh", "")
	require.NoError(t, err)

	stale, err := client.SavePostDraft(ctx, "https://img/stale", "")
	require.NoError(t, err)

	// Age the second draft past the cutoff.
	client.mu.Lock()
	for i := range client.drafts {
		if client.drafts[i].ID == stale.ID {
			client.drafts[i].CreatedAt = time.Now().Add(-31 * 24 * time.Hour)
		}
	}
	client.mu.Unlock()

	removed, err := client.CleanupOlderThan(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	list := client.List()
	require.Len(t, list, 1)
	assert.Equal(t, fresh.ID, list[0].ID)
}
