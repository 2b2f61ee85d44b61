package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	libconfig "github.com/shouni/go-asset-kit/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ASSET_PACING_DELAY", "250ms")
	t.Setenv("GALLERY_LIMIT", "abc")
	t.Setenv("ASSET_MAX_BATCH", "3")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, ,https://example.com")

	cfg := LoadConfig()

	assert.Equal(t, "test-key", cfg.Kit.GeminiAPIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Kit.PacingDelay)
	assert.Equal(t, libconfig.DefaultGalleryLimit, cfg.Kit.GalleryLimit, "不正な値は既定値になる")
	assert.Equal(t, 3, cfg.Kit.MaxBatchSize)
	assert.Equal(t, libconfig.DefaultGeminiModel, cfg.Kit.GeminiModel)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
}
