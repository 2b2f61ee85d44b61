package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/shouni/gemini-image-kit/ports"
	"google.golang.org/genai"
)

const defaultOutputMIMEType = "image/png"

// NewGenAIClient は Gemini API 用の genai クライアントを初期化します。
func NewGenAIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, errors.New("APIキーが設定されていません")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの初期化に失敗しました: %w", err)
	}
	return client, nil
}

// GeminiText は genai の GenerateContent を TextModel として公開します。
type GeminiText struct {
	client *genai.Client
	model  string
}

// NewGeminiText は GeminiText を生成します。
func NewGeminiText(client *genai.Client, model string) *GeminiText {
	return &GeminiText{client: client, model: model}
}

// GenerateText はシステム指示付きでテキストを生成します。
func (g *GeminiText) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.UserText), cfg)
	if err != nil {
		return "", fmt.Errorf("GenerateContent の呼び出しに失敗しました (model: %s): %w", g.model, err)
	}
	if resp == nil {
		return "", errors.New("GenerateContent が空の応答を返しました")
	}
	return resp.Text(), nil
}

// GeminiImage は genai の GenerateImages を ImageModel として公開します。
type GeminiImage struct {
	client *genai.Client
	model  string
}

// NewGeminiImage は GeminiImage を生成します。
func NewGeminiImage(client *genai.Client, model string) *GeminiImage {
	return &GeminiImage{client: client, model: model}
}

// GenerateImages は画像を生成し、画像バイトを持つものだけを返します。
func (g *GeminiImage) GenerateImages(ctx context.Context, req ports.GenerationOptions, count int) ([]*ports.ImageResponse, error) {
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
		AspectRatio:    req.AspectRatio,
		OutputMIMEType: defaultOutputMIMEType,
	}
	if req.NegativePrompt != "" {
		cfg.NegativePrompt = req.NegativePrompt
	}

	resp, err := g.client.Models.GenerateImages(ctx, g.model, req.Prompt, cfg)
	if err != nil {
		return nil, fmt.Errorf("GenerateImages の呼び出しに失敗しました (model: %s): %w", g.model, err)
	}
	if resp == nil {
		return nil, nil
	}

	images := make([]*ports.ImageResponse, 0, len(resp.GeneratedImages))
	for _, gi := range resp.GeneratedImages {
		if gi == nil || gi.Image == nil || len(gi.Image.ImageBytes) == 0 {
			continue
		}
		mime := gi.Image.MIMEType
		if mime == "" {
			mime = defaultOutputMIMEType
		}
		images = append(images, &ports.ImageResponse{
			Data:     gi.Image.ImageBytes,
			MimeType: mime,
		})
	}
	return images, nil
}
