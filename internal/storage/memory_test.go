package storage_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/storage"
)

func TestMemoryStorage_CreateUser(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	u, err := mem.CreateUser(ctx, storage.UserRecord{Username: "a@x.com", Password: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	// Same username again - should fail
	_, err = mem.CreateUser(ctx, storage.UserRecord{Username: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	found, err := mem.FindUserByUsername(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash", found.Password)

	byID, err := mem.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Username)

	_, err = mem.FindUserByUsername(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = mem.FindUserByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStorage_ContentIsScopedByOwner(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	a1, err := mem.CreateContent(ctx, storage.ContentRecord{Title: "a1", Type: "article", Link: "https://a.com/1", UserID: "userA"})
	require.NoError(t, err)
	_, err = mem.CreateContent(ctx, storage.ContentRecord{Title: "a2", Type: "video", Link: "https://a.com/2", UserID: "userA"})
	require.NoError(t, err)
	b1, err := mem.CreateContent(ctx, storage.ContentRecord{Title: "b1", Type: "audio", Link: "https://b.com/1", UserID: "userB"})
	require.NoError(t, err)

	own, err := mem.FindContentByUserID(ctx, "userA")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "a1", own[0].Title)
	assert.Equal(t, "a2", own[1].Title)

	none, err := mem.FindContentByUserID(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Len(t, none, 0)

	// userA cannot delete userB's content even knowing its id
	err = mem.DeleteContent(ctx, b1.ID, "userA")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = mem.FindContentByID(ctx, b1.ID)
	assert.NoError(t, err)

	require.NoError(t, mem.DeleteContent(ctx, a1.ID, "userA"))
	_, err = mem.FindContentByID(ctx, a1.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	own, _ = mem.FindContentByUserID(ctx, "userA")
	assert.Len(t, own, 1)
}

func TestMemoryStorage_ContentTagsAreCopied(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	tags := []string{"t1"}
	c, err := mem.CreateContent(ctx, storage.ContentRecord{Title: "x", UserID: "u", Tags: tags})
	require.NoError(t, err)

	tags[0] = "mutated"
	c.Tags[0] = "mutated"

	found, err := mem.FindContentByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, found.Tags)
}

func TestMemoryStorage_Tags(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	go1, err := mem.FindOrCreateTag(ctx, "go")
	require.NoError(t, err)
	go2, err := mem.FindOrCreateTag(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, go1.ID, go2.ID)

	rust, err := mem.FindOrCreateTag(ctx, "rust")
	require.NoError(t, err)

	found, err := mem.FindTagsByIDs(ctx, []string{rust.ID, "unknown", go1.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "rust", found[0].Name)
	assert.Equal(t, "go", found[1].Name)
}

func TestMemoryStorage_ShareLinks(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	first, err := mem.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{Hash: "h1", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "h1", first.Hash)

	// a second attempt for the same owner returns the stored link
	second, err := mem.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{Hash: "h2", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "h1", second.Hash)

	// hash collision with another owner
	_, err = mem.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{Hash: "h1", UserID: "u2"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	l, err := mem.FindShareLinkByHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "u1", l.UserID)

	require.NoError(t, mem.DeleteShareLinkByUserID(ctx, "u1"))
	_, err = mem.FindShareLinkByHash(ctx, "h1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, mem.DeleteShareLinkByUserID(ctx, "u1"))
	assert.NoError(t, mem.DeleteShareLinkByUserID(ctx, "never-shared"))
}

func TestMemoryStorage_ConcurrentShareLinkCreation(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	const workers = 32
	hashes := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l, err := mem.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{
				Hash:   "hash-" + string(rune('a'+i)),
				UserID: "owner",
			})
			if err == nil {
				hashes[i] = l.Hash
			}
		}(i)
	}
	wg.Wait()

	for _, h := range hashes {
		assert.Equal(t, hashes[0], h)
	}

	stats, err := mem.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ShareLinks)
}

func TestMemoryStorage_GetStats(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	_, _ = mem.CreateUser(ctx, storage.UserRecord{Username: "a@x.com"})
	_, _ = mem.CreateUser(ctx, storage.UserRecord{Username: "b@x.com"})
	_, _ = mem.CreateContent(ctx, storage.ContentRecord{Title: "a", UserID: "u"})

	stats, err := mem.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.Contents)
	assert.Equal(t, 0, stats.ShareLinks)
}

func TestMemoryStorage_PingContext(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	assert.NoError(t, mem.PingContext(context.Background()))
	assert.NoError(t, mem.Close())
}

func TestFileBackedStorage_Restore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "brain.log")
	ctx := context.Background()

	mem, err := storage.NewFileBackedStorage(path, zap.NewNop())
	require.NoError(t, err)

	u, err := mem.CreateUser(ctx, storage.UserRecord{Username: "a@x.com", Password: "hash"})
	require.NoError(t, err)
	tag, err := mem.FindOrCreateTag(ctx, "go")
	require.NoError(t, err)
	keep, err := mem.CreateContent(ctx, storage.ContentRecord{Title: "keep", Type: "article", Link: "https://k.com", Tags: []string{tag.ID}, UserID: u.ID})
	require.NoError(t, err)
	drop, err := mem.CreateContent(ctx, storage.ContentRecord{Title: "drop", Type: "article", Link: "https://d.com", UserID: u.ID})
	require.NoError(t, err)
	require.NoError(t, mem.DeleteContent(ctx, drop.ID, u.ID))
	_, err = mem.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{Hash: "old", UserID: u.ID})
	require.NoError(t, err)
	require.NoError(t, mem.DeleteShareLinkByUserID(ctx, u.ID))
	_, err = mem.FindOrCreateShareLink(ctx, storage.ShareLinkRecord{Hash: "new", UserID: u.ID})
	require.NoError(t, err)
	require.NoError(t, mem.Close())

	restored, err := storage.NewFileBackedStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer restored.Close()

	found, err := restored.FindUserByUsername(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	contents, err := restored.FindContentByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, keep.ID, contents[0].ID)
	assert.Equal(t, []string{tag.ID}, contents[0].Tags)

	_, err = restored.FindShareLinkByHash(ctx, "old")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	l, err := restored.FindShareLinkByHash(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, u.ID, l.UserID)

	again, err := restored.FindOrCreateTag(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, again.ID)
}
