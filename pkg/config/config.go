package config

import (
	"errors"
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel    = "gemini-3-flash-preview"
	DefaultImageModel     = "imagen-4.0-generate-001"
	DefaultRateInterval   = 2 * time.Second
	DefaultPacingDelay    = 500 * time.Millisecond
	DefaultRequestTimeout = 60 * time.Second
	DefaultEnhanceTimeout = 15 * time.Second
	DefaultEnhanceTTL     = 30 * time.Minute
	DefaultMaxBatchSize   = 0 // 0 は上限なし
	DefaultGalleryLimit   = 50
)

// ErrMissingAPIKey は API キーが設定されていないことを示します。
// 外部呼び出しを一切行う前に返す致命的な設定エラーです。
var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// Config は Go Asset Kit の各コンポーネントを動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string // プロンプト強化・コンセプト分析
	ImageModel  string // 画像生成

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Generation Settings ---
	RateInterval time.Duration // 画像生成リクエストの最小間隔
	PacingDelay  time.Duration // バッチ内の項目間の待機
	MaxBatchSize int           // 1回のバッチの上限件数。0 なら選択された pending を全件処理

	// --- Gallery Settings ---
	GalleryLimit int
	GalleryFile  string // 空なら永続化しない

	// --- Timeout & Cache ---
	RequestTimeout time.Duration
	EnhanceTimeout time.Duration
	EnhanceTTL     time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		ImageModel:     DefaultImageModel,
		RateInterval:   DefaultRateInterval,
		PacingDelay:    DefaultPacingDelay,
		MaxBatchSize:   DefaultMaxBatchSize,
		GalleryLimit:   DefaultGalleryLimit,
		RequestTimeout: DefaultRequestTimeout,
		EnhanceTimeout: DefaultEnhanceTimeout,
		EnhanceTTL:     DefaultEnhanceTTL,
	}
}

// Validate は致命的な設定不備を検出します。
func (c Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
