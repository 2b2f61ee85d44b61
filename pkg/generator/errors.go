package generator

import "errors"

var (
	// ErrService は外部画像生成サービスの呼び出し自体が失敗したことを示します。
	ErrService = errors.New("image generation service error")
	// ErrEmptyResult は呼び出しは成功したが画像が1枚も返らなかったことを示します。
	ErrEmptyResult = errors.New("image generation returned no images")
)

var (
	errNoTextModel      = errors.New("text model is not configured")
	errEmptyEnhancement = errors.New("text model returned empty text")
)
