package adapters

import (
	"context"

	"github.com/shouni/gemini-image-kit/ports"
)

// TextRequest はテキスト生成 API への1回分の要求です。
type TextRequest struct {
	SystemInstruction string
	UserText          string
	Temperature       float32
	MaxOutputTokens   int32
}

// TextModel は外部のテキスト生成機能を隠蔽する狭いインターフェースです。
type TextModel interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// ImageModel は外部の画像生成機能を隠蔽する狭いインターフェースです。
// 返り値は0枚以上の画像で、0枚は呼び出し側で失敗として扱います。
type ImageModel interface {
	GenerateImages(ctx context.Context, req ports.GenerationOptions, count int) ([]*ports.ImageResponse, error)
}
