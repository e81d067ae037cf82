package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"content_studio/internal/domain"
	"content_studio/internal/storage"
	"content_studio/internal/storage/memory"
	"content_studio/internal/storage/storetest"
	"content_studio/testdata/utils"
)

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &storetest.Suite{
		NewStores: func() *storage.Stores {
			return storage.FromMemory(memory.New())
		},
	})
}

func TestMemoryStore_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return fixed }))

	video, err := store.Videos().Create(context.Background(), domain.Video{Title: "clocked"})
	require.NoError(t, err)
	assert.Equal(t, fixed, video.GeneratedAt)

	script, err := store.Scripts().Create(context.Background(), domain.Script{Title: "clocked"})
	require.NoError(t, err)
	assert.Equal(t, fixed, script.CreatedAt)
	assert.Equal(t, fixed, script.UpdatedAt)
}

func TestMemoryStore_EqualTimestampsOrderByID(t *testing.T) {
	fixed := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return fixed })).ViralVideos()
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, domain.ViralVideo{Title: title, Platform: "tiktok"})
		require.NoError(t, err)
	}

	videos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{videos[0].ID, videos[1].ID, videos[2].ID})
}

func TestMemoryStore_UpdateRestampsUpdatedAt(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return now })).Scripts()
	ctx := context.Background()

	created, err := store.Create(ctx, domain.Script{Title: "t"})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	updated, err := store.Update(ctx, created.ID, domain.ScriptPatch{Status: utils.Ptr(domain.ScriptUsed)})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestMemoryStore_ReturnedRecordsAreCopies(t *testing.T) {
	store := memory.New().Scripts()
	ctx := context.Background()

	created, err := store.Create(ctx, domain.Script{Title: "original"})
	require.NoError(t, err)
	created.Title = "mutated"

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestMemoryStore_PointerFieldsAreNotShared(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	videos := store.ViralVideos()

	captions := utils.Ptr("original captions")
	created, err := videos.Create(ctx, domain.ViralVideo{Title: "t", Captions: captions})
	require.NoError(t, err)

	*captions = "caller input changed"
	*created.Captions = "create result changed"

	got, err := videos.Get(ctx, created.ID)
	require.NoError(t, err)
	*got.Captions = "get result changed"

	listed, err := videos.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "original captions", *listed[0].Captions)
	*listed[0].Captions = "list result changed"

	posts := store.ScheduledPosts()
	post, err := posts.Create(ctx, domain.ScheduledPost{Platform: "tiktok", VideoID: utils.Ptr(int64(4))})
	require.NoError(t, err)
	updated, err := posts.Update(ctx, post.ID, domain.ScheduledPostPatch{Caption: utils.Ptr("c")})
	require.NoError(t, err)
	*updated.VideoID = 99
	*updated.Caption = "changed"

	again, err := posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *again.VideoID)
	assert.Equal(t, "c", *again.Caption)

	got, err = videos.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original captions", *got.Captions)
}

func TestMemoryStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	store := memory.New().Analytics()
	ctx := context.Background()

	const workers = 50
	ids := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			row, err := store.Create(ctx, domain.Analytics{Platform: "tiktok"})
			if err == nil {
				ids <- row.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	for id := int64(1); id <= workers; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
