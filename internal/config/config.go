package config

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shouni/go-utils/envutil"

	libconfig "github.com/shouni/go-asset-kit/pkg/config"
)

// デフォルト値の定義なのだ
const (
	DefaultAddr        = ":8080"
	DefaultGalleryFile = "output/gallery.json" // ギャラリー履歴の保存先なのだ
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	Addr        string
	CORSOrigins []string      // 空なら CORS ヘッダーを付けないのだ
	BatchTTL    time.Duration // 終了したバッチの状態を保持する期間なのだ
	Kit         libconfig.Config
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	kit := libconfig.DefaultConfig()

	kit.GeminiAPIKey = envutil.GetEnv("GEMINI_API_KEY", envutil.GetEnv("GOOGLE_API_KEY", ""))
	kit.GeminiModel = envutil.GetEnv("GEMINI_MODEL", kit.GeminiModel)
	kit.ImageModel = envutil.GetEnv("IMAGE_MODEL", kit.ImageModel)
	kit.GalleryFile = envutil.GetEnv("GALLERY_FILE", DefaultGalleryFile)
	kit.PacingDelay = durationEnv("ASSET_PACING_DELAY", kit.PacingDelay)
	kit.RateInterval = durationEnv("ASSET_RATE_INTERVAL", kit.RateInterval)
	kit.RequestTimeout = durationEnv("ASSET_REQUEST_TIMEOUT", kit.RequestTimeout)
	kit.GalleryLimit = intEnv("GALLERY_LIMIT", kit.GalleryLimit)
	kit.MaxBatchSize = intEnv("ASSET_MAX_BATCH", kit.MaxBatchSize)

	return &Config{
		Addr:        envutil.GetEnv("ADDR", DefaultAddr),
		CORSOrigins: splitList(envutil.GetEnv("CORS_ORIGINS", "")),
		BatchTTL:    durationEnv("BATCH_TTL", 0),
		Kit:         kit,
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	ConceptFile string // --concept-file
	Concept     string // --concept
	RecordsFile string // --records
	OutputDir   string // --output-dir
	Select      []string
	Limit       int
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("環境変数の期間指定が不正なため既定値を使うのだ", "key", key, "value", raw)
		return def
	}
	return d
}

func intEnv(key string, def int) int {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("環境変数の数値指定が不正なため既定値を使うのだ", "key", key, "value", raw)
		return def
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
