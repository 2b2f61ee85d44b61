package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

// ErrNotFound は指定 ID のレコードが存在しないことを示します。
var ErrNotFound = errors.New("asset record not found")

// Store は1セッション分の AssetRecord を所有します。
// 更新はレコード単位でアトミックで、同じ ID への書き込みは後勝ちです。
type Store struct {
	mu      sync.RWMutex
	records map[string]*domain.AssetRecord
	order   []string
}

// New は空の Store を生成します。
func New() *Store {
	return &Store{records: make(map[string]*domain.AssetRecord)}
}

// Add はレコードを挿入順で追加し、追加後のレコードを返します。
// ID が空なら採番し、列挙値は強制変換し、状態は pending に初期化します。
func (s *Store) Add(records ...domain.AssetRecord) []domain.AssetRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]domain.AssetRecord, 0, len(records))
	for _, r := range records {
		r = r.Normalize()
		if r.ID == "" {
			r.ID = "asset-" + uuid.NewString()
		}
		r.Status = domain.StatusPending
		r.ImageData = nil
		r.MimeType = ""

		if _, exists := s.records[r.ID]; !exists {
			s.order = append(s.order, r.ID)
		}
		rec := r.Clone()
		s.records[r.ID] = &rec
		added = append(added, r.Clone())
	}
	return added
}

// Restore は保存済みのレコードを状態ごと読み込みます。
// generating のまま残ったものと画像のない completed は pending に戻します。
func (s *Store) Restore(records []domain.AssetRecord) []domain.AssetRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*domain.AssetRecord, len(records))
	s.order = nil
	out := make([]domain.AssetRecord, 0, len(records))
	for _, r := range records {
		r = r.Normalize()
		if r.ID == "" {
			r.ID = "asset-" + uuid.NewString()
		}
		switch {
		case r.Status == domain.StatusCompleted && len(r.ImageData) > 0:
		case r.Status == domain.StatusFailed:
			r.ImageData = nil
			r.MimeType = ""
		default:
			r.Status = domain.StatusPending
			r.ImageData = nil
			r.MimeType = ""
		}
		if _, exists := s.records[r.ID]; !exists {
			s.order = append(s.order, r.ID)
		}
		rec := r.Clone()
		s.records[r.ID] = &rec
		out = append(out, r.Clone())
	}
	return out
}

// Replace は全レコードを入れ替えます。分析結果を読み込み直すときに使います。
func (s *Store) Replace(records []domain.AssetRecord) []domain.AssetRecord {
	s.Clear()
	return s.Add(records...)
}

// Get は指定 ID のレコードのコピーを返します。
func (s *Store) Get(id string) (domain.AssetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return domain.AssetRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.Clone(), nil
}

// List は全レコードのコピーを挿入順で返します。
func (s *Store) List() []domain.AssetRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AssetRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].Clone())
	}
	return out
}

// Update は fn をロック下で適用し、更新後のコピーを返します。
// ID は変更できません。
func (s *Store) Update(id string, fn func(r *domain.AssetRecord)) (domain.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return domain.AssetRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	fn(r)
	r.ID = id
	return r.Clone(), nil
}

// MarkGenerating は状態を generating にし、古い画像を破棄します。
func (s *Store) MarkGenerating(id string) (domain.AssetRecord, error) {
	return s.Update(id, func(r *domain.AssetRecord) {
		r.Status = domain.StatusGenerating
		r.ImageData = nil
		r.MimeType = ""
	})
}

// MarkCompleted は生成結果を保存し、状態を completed にします。
func (s *Store) MarkCompleted(id string, data []byte, mimeType, enhancedPrompt string) (domain.AssetRecord, error) {
	return s.Update(id, func(r *domain.AssetRecord) {
		r.Status = domain.StatusCompleted
		r.ImageData = append([]byte(nil), data...)
		r.MimeType = mimeType
		r.EnhancedPrompt = enhancedPrompt
	})
}

// MarkFailed は状態を failed にします。画像は保持しません。
func (s *Store) MarkFailed(id string) (domain.AssetRecord, error) {
	return s.Update(id, func(r *domain.AssetRecord) {
		r.Status = domain.StatusFailed
		r.ImageData = nil
		r.MimeType = ""
	})
}

// EditPrompt はリトライ前にプロンプトを書き換えます。
func (s *Store) EditPrompt(id, prompt string) (domain.AssetRecord, error) {
	return s.Update(id, func(r *domain.AssetRecord) {
		r.Prompt = prompt
	})
}

// Remove は指定 ID のレコードを削除します。
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear は全レコードを削除します。
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*domain.AssetRecord)
	s.order = nil
}

// IDsWithStatus は指定状態のレコード ID を挿入順で返します。
func (s *Store) IDsWithStatus(status domain.Status) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, id := range s.order {
		if s.records[id].Status == status {
			ids = append(ids, id)
		}
	}
	return ids
}

// Counts は状態ごとの件数を返します。
func (s *Store) Counts() map[domain.Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Status]int, 4)
	for _, r := range s.records {
		counts[r.Status]++
	}
	return counts
}
