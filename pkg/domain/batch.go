package domain

import "time"

const (
	// LabelDone は通常バッチ完了時の currentLabel です。
	LabelDone = "done"
	// LabelRetryDone はリトライ実行完了時の currentLabel です。
	LabelRetryDone = "retry done"
)

// BatchProgress は実行中バッチのスナップショットです。永続化はしません。
type BatchProgress struct {
	Total          int    `json:"total"`
	CompletedCount int    `json:"completed"`
	FailedCount    int    `json:"failed"`
	CurrentLabel   string `json:"current"`
	Done           bool   `json:"done"`
}

// BatchSummary はバッチ実行の最終結果です。
type BatchSummary struct {
	Total          int  `json:"total"`
	CompletedCount int  `json:"successful"`
	FailedCount    int  `json:"failed"`
	Remaining      int  `json:"remaining"`
	Cancelled      bool `json:"cancelled,omitempty"`
}

// GalleryEntry はギャラリーへ送られる生成結果の1件です。
// ID は AssetRecord の ID とは別に採番されます。
type GalleryEntry struct {
	ID          string      `json:"id"`
	Prompt      string      `json:"prompt"`
	Style       Style       `json:"style"`
	ImageData   []byte      `json:"imageData"`
	MimeType    string      `json:"mimeType,omitempty"`
	AspectRatio AspectRatio `json:"aspectRatio,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
