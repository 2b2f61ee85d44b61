package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// NewGeminiClient は go-gemini-client のクライアントを初期化します。
// サンプリング温度はクライアント単位で固定されます。
func NewGeminiClient(ctx context.Context, apiKey string, temperature float32) (gemini.GenerativeModel, error) {
	if apiKey == "" {
		return nil, errors.New("APIキーが設定されていません")
	}
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(temperature),
	}
	client, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return client, nil
}

// GeminiClientText は go-gemini-client の GenerateContent を TextModel として公開します。
// Temperature と MaxOutputTokens はクライアント側の設定が使われます。
type GeminiClientText struct {
	client gemini.GenerativeModel
	model  string
}

// NewGeminiClientText は GeminiClientText を生成します。
func NewGeminiClientText(client gemini.GenerativeModel, model string) *GeminiClientText {
	return &GeminiClientText{client: client, model: model}
}

// GenerateText はシステム指示と本文を1つのプロンプトにまとめて送信します。
func (g *GeminiClientText) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	resp, err := g.client.GenerateContent(ctx, JoinPrompt(req), g.model)
	if err != nil {
		return "", fmt.Errorf("GenerateContent の呼び出しに失敗しました (model: %s): %w", g.model, err)
	}
	return resp.Text, nil
}

// JoinPrompt はシステム指示を先頭に置いた単一のプロンプトを返します。
func JoinPrompt(req TextRequest) string {
	system := strings.TrimSpace(req.SystemInstruction)
	if system == "" {
		return req.UserText
	}
	return system + "\n\n" + req.UserText
}
