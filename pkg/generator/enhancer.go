package generator

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-asset-kit/pkg/adapters"
	"github.com/shouni/go-asset-kit/pkg/prompts"
	"github.com/shouni/go-asset-kit/pkg/style"
)

const (
	enhanceTemperature     = float32(0.7)
	enhanceMaxOutputTokens = int32(200)
)

var codeFenceRegex = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// PromptEnhancer は短い記述を画像生成向けのプロンプトに書き換えます。
type PromptEnhancer interface {
	Enhance(ctx context.Context, rawPrompt string, desc style.Descriptor) string
}

// Enhancer はテキスト生成モデルを使う PromptEnhancer の実装です。
// 失敗は呼び出し側へ伝播させず、決定論的なフォールバックに置き換えます。
type Enhancer struct {
	model   adapters.TextModel
	builder prompts.Builder
	timeout time.Duration
	cache   *cache.Cache
}

// NewEnhancer は Enhancer を生成します。c が nil の場合はキャッシュしません。
func NewEnhancer(model adapters.TextModel, builder prompts.Builder, timeout time.Duration, c *cache.Cache) *Enhancer {
	return &Enhancer{
		model:   model,
		builder: builder,
		timeout: timeout,
		cache:   c,
	}
}

// Enhance は rawPrompt を強化したプロンプトを返します。常に空でない文字列を返します。
func (e *Enhancer) Enhance(ctx context.Context, rawPrompt string, desc style.Descriptor) string {
	key := string(desc.ID) + "\x00" + rawPrompt
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}

	enhanced, err := e.callModel(ctx, rawPrompt, desc)
	if err != nil {
		slog.WarnContext(ctx, "Prompt enhancement failed, using fallback",
			"style", desc.ID,
			"error", err,
		)
		return prompts.FallbackPrompt(desc.PromptPrefix, rawPrompt)
	}

	if e.cache != nil {
		e.cache.Set(key, enhanced, cache.DefaultExpiration)
	}
	return enhanced
}

func (e *Enhancer) callModel(ctx context.Context, rawPrompt string, desc style.Descriptor) (string, error) {
	if e.model == nil {
		return "", errNoTextModel
	}

	system, err := e.builder.Build(prompts.ModeEnhance, prompts.TemplateData{
		StyleName:    desc.LocalizedName,
		PromptPrefix: desc.PromptPrefix,
	})
	if err != nil {
		return "", err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	text, err := e.model.GenerateText(ctx, adapters.TextRequest{
		SystemInstruction: system,
		UserText:          prompts.EnhanceUserPrompt(rawPrompt),
		Temperature:       enhanceTemperature,
		MaxOutputTokens:   enhanceMaxOutputTokens,
	})
	if err != nil {
		return "", err
	}

	cleaned := CleanModelText(text)
	if cleaned == "" {
		return "", errEmptyEnhancement
	}
	return cleaned, nil
}

// CleanModelText はモデル出力の前後の空白とマークダウンのコードフェンスを取り除きます。
func CleanModelText(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFenceRegex.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}
	return strings.TrimSpace(text)
}
