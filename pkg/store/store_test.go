package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

func TestStore_Add(t *testing.T) {
	s := New()

	added := s.Add(
		domain.AssetRecord{ID: "b", Name: "second", Style: "bogus", AspectRatio: "21:9", Status: domain.StatusCompleted, ImageData: []byte("x")},
		domain.AssetRecord{Name: "generated id", Style: domain.StyleTile},
	)

	require.Len(t, added, 2)
	assert.Equal(t, "b", added[0].ID)
	assert.Equal(t, domain.DefaultStyle, added[0].Style)
	assert.Equal(t, domain.AspectSquare, added[0].AspectRatio)
	assert.Equal(t, domain.StatusPending, added[0].Status, "追加時は常に pending")
	assert.Nil(t, added[0].ImageData)
	assert.NotEmpty(t, added[1].ID)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "挿入順が保たれること")
}

func TestStore_Lifecycle(t *testing.T) {
	s := New()
	s.Add(domain.AssetRecord{ID: "a", Prompt: "p"})

	r, err := s.MarkGenerating("a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerating, r.Status)

	r, err = s.MarkCompleted("a", []byte("img"), "image/png", "enhanced")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, r.Status)
	assert.Equal(t, []byte("img"), r.ImageData)
	assert.Equal(t, "enhanced", r.EnhancedPrompt)

	r, err = s.MarkGenerating("a")
	require.NoError(t, err)
	assert.Nil(t, r.ImageData, "再生成開始時に古い画像は破棄されること")

	r, err = s.MarkFailed("a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, r.Status)
	assert.Nil(t, r.ImageData)

	_, err = s.MarkFailed("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := New()
	s.Add(domain.AssetRecord{ID: "a"})
	_, err := s.MarkCompleted("a", []byte("img"), "image/png", "")
	require.NoError(t, err)

	r, err := s.Get("a")
	require.NoError(t, err)
	r.ImageData[0] = 'X'
	r.Status = domain.StatusFailed

	again, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), again.ImageData)
	assert.Equal(t, domain.StatusCompleted, again.Status)
}

func TestStore_RemoveClearCounts(t *testing.T) {
	s := New()
	s.Add(domain.AssetRecord{ID: "a"}, domain.AssetRecord{ID: "b"}, domain.AssetRecord{ID: "c"})
	_, _ = s.MarkFailed("b")

	assert.Equal(t, []string{"b"}, s.IDsWithStatus(domain.StatusFailed))
	assert.Equal(t, 2, s.Counts()[domain.StatusPending])

	require.NoError(t, s.Remove("a"))
	assert.ErrorIs(t, s.Remove("a"), ErrNotFound)
	assert.Len(t, s.List(), 2)

	s.Clear()
	assert.Empty(t, s.List())
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := New()
	s.Add(domain.AssetRecord{ID: "a"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.MarkCompleted("a", []byte("img"), "image/png", "")
			} else {
				_, _ = s.MarkFailed("a")
			}
		}(i)
	}
	wg.Wait()

	r, err := s.Get("a")
	require.NoError(t, err)
	if r.Status == domain.StatusCompleted {
		assert.NotEmpty(t, r.ImageData)
	} else {
		assert.Equal(t, domain.StatusFailed, r.Status)
		assert.Nil(t, r.ImageData)
	}
}

func TestStore_Restore(t *testing.T) {
	s := New()
	s.Add(domain.AssetRecord{ID: "old"})

	restored := s.Restore([]domain.AssetRecord{
		{ID: "done", Status: domain.StatusCompleted, ImageData: []byte("img")},
		{ID: "empty", Status: domain.StatusCompleted},
		{ID: "stuck", Status: domain.StatusGenerating},
		{ID: "bad", Status: domain.StatusFailed, ImageData: []byte("x")},
	})

	require.Len(t, restored, 4)
	assert.Equal(t, domain.StatusCompleted, restored[0].Status)
	assert.Equal(t, domain.StatusPending, restored[1].Status)
	assert.Equal(t, domain.StatusPending, restored[2].Status)
	assert.Equal(t, domain.StatusFailed, restored[3].Status)
	assert.Nil(t, restored[3].ImageData)

	_, err := s.Get("old")
	assert.ErrorIs(t, err, ErrNotFound, "既存のレコードは置き換えられること")
}
