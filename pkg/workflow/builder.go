package workflow

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/shouni/go-asset-kit/pkg/adapters"
	"github.com/shouni/go-asset-kit/pkg/analyzer"
	"github.com/shouni/go-asset-kit/pkg/config"
	"github.com/shouni/go-asset-kit/pkg/generator"
	"github.com/shouni/go-asset-kit/pkg/prompts"
)

// models は Manager が使う外部モデルの組です。
type models struct {
	text     adapters.TextModel
	analyzer adapters.TextModel
	image    adapters.ImageModel
}

// initializeModels は未指定のモデルを補います。
// 画像とプロンプト強化は genai、コンセプト分析は go-gemini-client を使います。
func initializeModels(ctx context.Context, args ManagerArgs) (models, error) {
	m := models{text: args.TextModel, analyzer: args.AnalyzerModel, image: args.ImageModel}
	if m.analyzer == nil && m.text != nil {
		m.analyzer = m.text
	}
	if m.text != nil && m.analyzer != nil && m.image != nil {
		return m, nil
	}

	if err := args.Config.Validate(); err != nil {
		return models{}, err
	}

	if m.text == nil || m.image == nil {
		client, err := adapters.NewGenAIClient(ctx, args.Config.GeminiAPIKey)
		if err != nil {
			return models{}, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
		}
		if m.text == nil {
			m.text = adapters.NewGeminiText(client, args.Config.GeminiModel)
		}
		if m.image == nil {
			m.image = adapters.NewGeminiImage(client, args.Config.ImageModel)
		}
	}

	if m.analyzer == nil {
		client, err := adapters.NewGeminiClient(ctx, args.Config.GeminiAPIKey, analyzer.Temperature)
		if err != nil {
			return models{}, err
		}
		m.analyzer = adapters.NewGeminiClientText(client, args.Config.GeminiModel)
	}
	return m, nil
}

// initializePromptBuilder は引数として既存のビルダーが渡された場合はそれを返し、nil の場合は新規作成します。
func initializePromptBuilder(pb prompts.Builder) (prompts.Builder, error) {
	if pb != nil {
		return pb, nil
	}
	built, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("TextPromptBuilder の新規作成に失敗しました: %w", err)
	}
	return built, nil
}

func buildEnhancer(cfg config.Config, model adapters.TextModel, pb prompts.Builder) *generator.Enhancer {
	var c *cache.Cache
	if cfg.EnhanceTTL > 0 {
		c = cache.New(cfg.EnhanceTTL, 2*cfg.EnhanceTTL)
	}
	return generator.NewEnhancer(model, pb, cfg.EnhanceTimeout, c)
}

// buildImageClient は全経路で共有するリミッター付きの画像クライアントを作ります。
func buildImageClient(cfg config.Config, model adapters.ImageModel) *generator.ImageClient {
	var limiter *rate.Limiter
	if cfg.RateInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.RateInterval), 1)
	}
	return generator.NewImageClient(model, limiter, cfg.RequestTimeout)
}
