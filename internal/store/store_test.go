package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, err := mem.Load(ctx, CollectionPosts)
	assert.ErrorIs(t, err, ErrAbsent, "never-written collection reports absent")

	require.NoError(t, mem.Save(ctx, CollectionPosts, []byte(`[]`)))
	data, err := mem.Load(ctx, CollectionPosts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data, "an explicitly saved empty collection is not absent")

	require.NoError(t, mem.Save(ctx, CollectionUsers, []byte(`{}`)))
	require.NoError(t, mem.ResetAll(ctx))

	_, err = mem.Load(ctx, CollectionPosts)
	assert.ErrorIs(t, err, ErrAbsent)
	_, err = mem.Load(ctx, CollectionUsers)
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestWriterAppliesSavesInOrder(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	writer := NewWriter(mem, logger.New(logger.Opts{}))

	for i := 0; i < 50; i++ {
		writer.Enqueue(CollectionPosts, []byte(fmt.Sprintf(`["v%d"]`, i)))
	}
	writer.Flush()

	data, err := mem.Load(ctx, CollectionPosts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["v49"]`), data, "last queued snapshot wins")
}

func TestWriterCollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	writer := NewWriter(mem, logger.New(logger.Opts{}))

	writer.Enqueue(CollectionPosts, []byte(`["posts"]`))
	writer.Enqueue(CollectionDrafts, []byte(`["drafts"]`))
	writer.Enqueue(CollectionSession, []byte(`"u_alex"`))
	writer.Flush()

	posts, err := mem.Load(ctx, CollectionPosts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["posts"]`), posts)

	drafts, err := mem.Load(ctx, CollectionDrafts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["drafts"]`), drafts)

	session, err := mem.Load(ctx, CollectionSession)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"u_alex"`), session)
}
