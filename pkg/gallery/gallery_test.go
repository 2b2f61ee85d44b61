package gallery

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

func TestGallery_AddNewestFirstAndCap(t *testing.T) {
	g := New(3)
	for i := 0; i < 5; i++ {
		g.Add(domain.GalleryEntry{Prompt: fmt.Sprintf("p%d", i), ImageData: []byte{byte(i)}})
	}

	list := g.List()
	require.Len(t, list, 3)
	assert.Equal(t, "p4", list[0].Prompt)
	assert.Equal(t, "p2", list[2].Prompt)
	for _, e := range list {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	}
}

func TestGallery_DefaultLimit(t *testing.T) {
	g := New(0)
	for i := 0; i < DefaultLimit+5; i++ {
		g.Add(domain.GalleryEntry{Prompt: "p"})
	}
	assert.Equal(t, DefaultLimit, g.Len())
}

func TestGallery_GetRemoveClear(t *testing.T) {
	g := New(10)
	a := g.Add(domain.GalleryEntry{Prompt: "a"})
	g.Add(domain.GalleryEntry{Prompt: "b"})

	got, err := g.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Prompt)

	require.NoError(t, g.Remove(a.ID))
	_, err = g.Get(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, g.Remove(a.ID), ErrNotFound)

	g.Clear()
	assert.Zero(t, g.Len())
}

func TestGallery_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gallery.json")

	g := New(10)
	g.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	g.Add(domain.GalleryEntry{Prompt: "old", Style: domain.StyleIcon, ImageData: []byte("png1")})
	g.Add(domain.GalleryEntry{Prompt: "new", Style: domain.StyleTile, ImageData: []byte("png2"), AspectRatio: domain.AspectWide})
	require.NoError(t, g.Save(path))

	loaded := New(1)
	require.NoError(t, loaded.Load(path))
	list := loaded.List()
	require.Len(t, list, 1, "読み込み時も上限が適用されること")
	assert.Equal(t, "new", list[0].Prompt)
	assert.Equal(t, []byte("png2"), list[0].ImageData)
	assert.Equal(t, domain.AspectWide, list[0].AspectRatio)
}

func TestGallery_LoadMissingFile(t *testing.T) {
	g := New(10)
	require.NoError(t, g.Load(filepath.Join(t.TempDir(), "missing.json")))
	assert.Zero(t, g.Len())
}
