package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/gemini-image-kit/ports"
	"golang.org/x/time/rate"

	"github.com/shouni/go-asset-kit/pkg/adapters"
	"github.com/shouni/go-asset-kit/pkg/domain"
)

// ImageResult は1回の生成で得られた画像と、実際に使われたプロンプトです。
type ImageResult struct {
	Data       []byte
	MimeType   string
	PromptUsed string
}

// ImageGenerator は1回の外部呼び出しで画像を1枚生成する契約です。
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (*ImageResult, error)
}

// ImageClient は ImageModel への単発呼び出しをラップします。内部でのリトライは行いません。
type ImageClient struct {
	model   adapters.ImageModel
	limiter *rate.Limiter
	timeout time.Duration
}

// NewImageClient は ImageClient を生成します。
// limiter はバッチと単発再生成の両経路で共有される流量制限で、nil の場合は制限しません。
func NewImageClient(model adapters.ImageModel, limiter *rate.Limiter, timeout time.Duration) *ImageClient {
	return &ImageClient{
		model:   model,
		limiter: limiter,
		timeout: timeout,
	}
}

// Generate は画像を1枚要求します。
// サービスエラーは ErrService、画像0枚は ErrEmptyResult でラップして返します。
func (c *ImageClient) Generate(ctx context.Context, prompt string, aspectRatio domain.AspectRatio) (*ImageResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: リミッター待機中にエラーが発生しました: %v", ErrService, err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	images, err := c.model.GenerateImages(ctx, ports.GenerationOptions{
		Prompt:      prompt,
		AspectRatio: string(domain.CoerceAspectRatio(string(aspectRatio))),
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	for _, img := range images {
		if img != nil && len(img.Data) > 0 {
			return &ImageResult{
				Data:       img.Data,
				MimeType:   img.MimeType,
				PromptUsed: prompt,
			}, nil
		}
	}
	return nil, ErrEmptyResult
}
