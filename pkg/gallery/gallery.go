package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

// DefaultLimit は保持する履歴の既定の上限です。
const DefaultLimit = 50

// ErrNotFound は指定 ID のエントリが存在しないことを示します。
var ErrNotFound = errors.New("gallery entry not found")

// Gallery は生成結果の履歴を新しい順に保持します。上限を超えた古いエントリは捨てます。
type Gallery struct {
	mu      sync.RWMutex
	limit   int
	entries []domain.GalleryEntry
	now     func() time.Time
}

// New は上限 limit の Gallery を生成します。limit が0以下なら DefaultLimit を使います。
func New(limit int) *Gallery {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Gallery{limit: limit, now: time.Now}
}

// Add はエントリを先頭に追加し、確定したエントリを返します。
// ID と作成時刻が空ならここで埋めます。
func (g *Gallery) Add(entry domain.GalleryEntry) domain.GalleryEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = g.now()
	}
	entry.ImageData = append([]byte(nil), entry.ImageData...)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries = append([]domain.GalleryEntry{entry}, g.entries...)
	if len(g.entries) > g.limit {
		g.entries = g.entries[:g.limit]
	}
	return entry
}

// List は全エントリを新しい順で返します。
func (g *Gallery) List() []domain.GalleryEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]domain.GalleryEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Get は指定 ID のエントリを返します。
func (g *Gallery) Get(id string) (domain.GalleryEntry, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.GalleryEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove は指定 ID のエントリを削除します。
func (g *Gallery) Remove(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, e := range g.entries {
		if e.ID == id {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Clear は履歴をすべて消去します。
func (g *Gallery) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = nil
}

// Len は保持件数を返します。
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}

// Save は履歴を JSON としてファイルへ書き出します。
// 一時ファイルに書いてから置き換えるため、途中で失敗しても既存ファイルは壊れません。
func (g *Gallery) Save(path string) error {
	data, err := json.MarshalIndent(g.List(), "", "  ")
	if err != nil {
		return fmt.Errorf("ギャラリーのエンコードに失敗しました: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("ギャラリーの書き込みに失敗しました: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("ギャラリーファイルの置き換えに失敗しました: %w", err)
	}
	return nil
}

// Load はファイルから履歴を読み込み、現在の内容を置き換えます。
// ファイルが存在しない場合は空のまま正常終了します。
func (g *Gallery) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ギャラリーの読み込みに失敗しました: %w", err)
	}

	var entries []domain.GalleryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("ギャラリーのデコードに失敗しました: %w", err)
	}
	if len(entries) > g.limit {
		entries = entries[:g.limit]
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = entries
	return nil
}
