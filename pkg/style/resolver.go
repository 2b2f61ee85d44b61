package style

import (
	"fmt"

	"github.com/shouni/go-asset-kit/pkg/domain"
)

// Resolver はスタイル ID から Descriptor を引く読み取り専用のテーブルです。
// プロセス起動時に NewResolver で一度だけ生成し、依存として渡してください。
type Resolver struct {
	byID       map[domain.Style]Descriptor
	order      []domain.Style
	categories []Category
	fallback   domain.Style
}

// NewResolver は組み込みテーブルから Resolver を生成します。
func NewResolver() *Resolver {
	r, err := NewResolverFrom(builtinDescriptors(), builtinCategories(), domain.DefaultStyle)
	if err != nil {
		// 組み込みテーブルは常にフォールバックを含む
		panic(err)
	}
	return r
}

// NewResolverFrom は任意のテーブルから Resolver を生成します。
// fallback が descriptors に含まれていない場合はエラーを返します。
func NewResolverFrom(descriptors []Descriptor, categories []Category, fallback domain.Style) (*Resolver, error) {
	r := &Resolver{
		byID:     make(map[domain.Style]Descriptor, len(descriptors)),
		order:    make([]domain.Style, 0, len(descriptors)),
		fallback: fallback,
	}
	for _, d := range descriptors {
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("スタイル '%s' が重複しています", d.ID)
		}
		if !d.AspectRatio.IsValid() {
			d.AspectRatio = domain.DefaultAspectRatio
		}
		r.byID[d.ID] = d.clone()
		r.order = append(r.order, d.ID)
	}
	if _, ok := r.byID[fallback]; !ok {
		return nil, fmt.Errorf("フォールバックスタイル '%s' がテーブルに存在しません", fallback)
	}
	for _, c := range categories {
		c.Styles = append([]domain.Style(nil), c.Styles...)
		r.categories = append(r.categories, c)
	}
	return r, nil
}

// Resolve は styleID に対応する Descriptor を返します。
// 未知の ID はフォールバックの Descriptor に解決され、失敗することはありません。
func (r *Resolver) Resolve(styleID domain.Style) Descriptor {
	if d, ok := r.byID[styleID]; ok {
		return d.clone()
	}
	return r.byID[r.fallback].clone()
}

// ResolveString は外部入力の文字列をそのまま受け付ける Resolve です。
func (r *Resolver) ResolveString(raw string) Descriptor {
	return r.Resolve(domain.CoerceStyle(raw))
}

// Fallback はフォールバックに使われるスタイル ID を返します。
func (r *Resolver) Fallback() domain.Style {
	return r.fallback
}

// All は全スタイルを定義順で返します。
func (r *Resolver) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out
}

// Categories はカテゴリ一覧を返します。
func (r *Resolver) Categories() []Category {
	out := make([]Category, len(r.categories))
	for i, c := range r.categories {
		c.Styles = append([]domain.Style(nil), c.Styles...)
		out[i] = c
	}
	return out
}

// ByCategory は指定カテゴリに属するスタイルの Descriptor を返します。
// 未知のカテゴリでは空スライスを返します。
func (r *Resolver) ByCategory(categoryID string) []Descriptor {
	for _, c := range r.categories {
		if c.ID != categoryID {
			continue
		}
		out := make([]Descriptor, 0, len(c.Styles))
		for _, id := range c.Styles {
			if d, ok := r.byID[id]; ok {
				out = append(out, d.clone())
			}
		}
		return out
	}
	return []Descriptor{}
}
