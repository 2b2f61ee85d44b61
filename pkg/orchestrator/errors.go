package orchestrator

import "errors"

var (
	// ErrEmptySelection は選択 ID が1件もないことを示します。
	ErrEmptySelection = errors.New("selection is empty")
	// ErrUnknownRecord は Store に存在しない ID が指定されたことを示します。
	ErrUnknownRecord = errors.New("unknown asset record")
	// ErrRecordBusy は対象レコードが別の実行で処理中であることを示します。
	ErrRecordBusy = errors.New("asset record is being generated")
	// ErrEmptyPrompt はアドホック生成のプロンプトが空であることを示します。
	ErrEmptyPrompt = errors.New("prompt is empty")
)
