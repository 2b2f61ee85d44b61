package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/shouni/go-asset-kit/pkg/adapters"
	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/generator"
	"github.com/shouni/go-asset-kit/pkg/prompts"
	"github.com/shouni/go-asset-kit/pkg/style"
)

const (
	// MinConceptLength はコンセプト文の最小文字数です。
	MinConceptLength = 10

	// Temperature は分析時のサンプリング温度です。
	Temperature = float32(0.8)

	analyzeMaxOutputTokens = int32(4000)
	minAssets              = 10
	maxAssets              = 20

	defaultGameName = "分析されたゲーム"
	defaultGenre    = "未定"
	defaultArtStyle = "2D ゲームアート"
)

var (
	// ErrConceptTooShort はコンセプト文が短すぎることを示します。
	ErrConceptTooShort = errors.New("concept is too short")
	// ErrInvalidResponse はモデルの応答を JSON として解釈できないことを示します。
	ErrInvalidResponse = errors.New("invalid analysis response")
)

// Analysis はコンセプト分析の結果です。Assets は pending 状態で返します。
type Analysis struct {
	GameName         string               `json:"gameName"`
	Genre            string               `json:"genre"`
	ArtStyle         string               `json:"artStyle"`
	Assets           []domain.AssetRecord `json:"assets"`
	EstimatedMinutes int                  `json:"estimatedMinutes"`
}

type rawAsset struct {
	Name        string `json:"name"`
	NameKo      string `json:"nameKo"`
	Description string `json:"description"`
	Style       string `json:"style"`
	Prompt      string `json:"prompt"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	AspectRatio string `json:"aspectRatio"`
}

type rawAnalysis struct {
	GameName string     `json:"gameName"`
	Genre    string     `json:"genre"`
	ArtStyle string     `json:"artStyle"`
	Assets   []rawAsset `json:"assets"`
}

// Analyzer はゲームコンセプトから必要なアセットの一覧を作ります。
type Analyzer struct {
	model    adapters.TextModel
	builder  prompts.Builder
	resolver *style.Resolver
	timeout  time.Duration
}

// New は Analyzer を生成します。
func New(model adapters.TextModel, builder prompts.Builder, resolver *style.Resolver, timeout time.Duration) *Analyzer {
	return &Analyzer{
		model:    model,
		builder:  builder,
		resolver: resolver,
		timeout:  timeout,
	}
}

// Analyze はコンセプト文を分析します。
// 列挙値はここで強制変換し、各アセットには新しい ID を振ります。
func (a *Analyzer) Analyze(ctx context.Context, concept string) (*Analysis, error) {
	concept = strings.TrimSpace(concept)
	if utf8.RuneCountInString(concept) < MinConceptLength {
		return nil, fmt.Errorf("%w: %d文字以上必要です", ErrConceptTooShort, MinConceptLength)
	}

	system, err := a.builder.Build(prompts.ModeAnalyze, prompts.TemplateData{
		StyleList:  a.styleList(),
		AspectList: aspectList(),
		MinAssets:  minAssets,
		MaxAssets:  maxAssets,
	})
	if err != nil {
		return nil, fmt.Errorf("システム指示の構築に失敗しました: %w", err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := a.model.GenerateText(ctx, adapters.TextRequest{
		SystemInstruction: system,
		UserText:          prompts.AnalyzeUserPrompt(concept),
		Temperature:       Temperature,
		MaxOutputTokens:   analyzeMaxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("コンセプト分析に失敗しました: %w", err)
	}

	analysis, err := Parse(text)
	if err != nil {
		slog.WarnContext(ctx, "Analysis response could not be parsed", "response", truncate(text, 500))
		return nil, err
	}
	slog.InfoContext(ctx, "Concept analyzed", "game", analysis.GameName, "assets", len(analysis.Assets))
	return analysis, nil
}

// Parse はモデル応答の JSON を Analysis に変換します。コードフェンスは取り除きます。
func Parse(text string) (*Analysis, error) {
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(generator.CleanModelText(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	batch := uuid.NewString()[:8]
	assets := make([]domain.AssetRecord, 0, len(raw.Assets))
	for i, ra := range raw.Assets {
		rec := domain.AssetRecord{
			ID:            fmt.Sprintf("asset-%s-%d", batch, i),
			Name:          ra.Name,
			LocalizedName: ra.NameKo,
			Description:   ra.Description,
			Category:      ra.Category,
			Style:         domain.Style(ra.Style),
			Prompt:        ra.Prompt,
			Priority:      domain.Priority(ra.Priority),
			AspectRatio:   domain.AspectRatio(ra.AspectRatio),
			Status:        domain.StatusPending,
		}
		assets = append(assets, rec.Normalize())
	}

	return &Analysis{
		GameName:         orDefault(raw.GameName, defaultGameName),
		Genre:            orDefault(raw.Genre, defaultGenre),
		ArtStyle:         orDefault(raw.ArtStyle, defaultArtStyle),
		Assets:           assets,
		EstimatedMinutes: int(math.Ceil(float64(len(assets)) * 0.5)),
	}, nil
}

func (a *Analyzer) styleList() string {
	descs := a.resolver.All()
	ids := make([]string, 0, len(descs))
	for _, d := range descs {
		ids = append(ids, string(d.ID))
	}
	return strings.Join(ids, ", ")
}

func aspectList() string {
	ratios := []domain.AspectRatio{
		domain.AspectSquare, domain.AspectWide, domain.AspectTall,
		domain.AspectLandscape, domain.AspectPortrait,
	}
	parts := make([]string, 0, len(ratios))
	for _, r := range ratios {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ", ")
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
