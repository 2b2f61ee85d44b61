package domain

import "strings"

var (
	validStyles = func() map[Style]struct{} {
		m := make(map[Style]struct{}, len(AllStyles))
		for _, s := range AllStyles {
			m[s] = struct{}{}
		}
		return m
	}()

	validAspectRatios = map[AspectRatio]struct{}{
		AspectSquare: {}, AspectWide: {}, AspectTall: {}, AspectLandscape: {}, AspectPortrait: {},
	}

	validPriorities = map[Priority]struct{}{
		PriorityEssential: {}, PriorityRecommended: {}, PriorityOptional: {},
	}
)

// CoerceStyle は外部入力のスタイル文字列を既知の Style に変換します。
// 未知の値はエラーにせず DefaultStyle に置き換えます。
func CoerceStyle(raw string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validStyles[s]; ok {
		return s
	}
	return DefaultStyle
}

// CoerceAspectRatio は未対応の比率を DefaultAspectRatio に置き換えます。
func CoerceAspectRatio(raw string) AspectRatio {
	a := AspectRatio(strings.TrimSpace(raw))
	if _, ok := validAspectRatios[a]; ok {
		return a
	}
	return DefaultAspectRatio
}

// CoercePriority は未知の優先度を DefaultPriority に置き換えます。
func CoercePriority(raw string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validPriorities[p]; ok {
		return p
	}
	return DefaultPriority
}

// IsValid は Style が定義済みかどうかを返します。
func (s Style) IsValid() bool {
	_, ok := validStyles[s]
	return ok
}

// IsValid は AspectRatio が定義済みかどうかを返します。
func (a AspectRatio) IsValid() bool {
	_, ok := validAspectRatios[a]
	return ok
}

// Normalize は外部から受け取ったレコードの列挙値をすべて強制変換します。
// ID やステータスには触れません。
func (r AssetRecord) Normalize() AssetRecord {
	r.Style = CoerceStyle(string(r.Style))
	r.AspectRatio = CoerceAspectRatio(string(r.AspectRatio))
	r.Priority = CoercePriority(string(r.Priority))
	return r
}
