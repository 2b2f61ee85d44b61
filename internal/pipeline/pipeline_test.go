package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shouni/gemini-image-kit/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-asset-kit/internal/config"
	"github.com/shouni/go-asset-kit/pkg/adapters"
	libconfig "github.com/shouni/go-asset-kit/pkg/config"
	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/workflow"
)

const analysisJSON = `{"gameName":"Coin Run","assets":[
 {"name":"hero","style":"character","prompt":"hero","priority":"essential","aspectRatio":"3:4"},
 {"name":"coin","style":"item","prompt":"coin","priority":"optional","aspectRatio":"1:1"}]}`

type stubText struct{}

func (stubText) GenerateText(context.Context, adapters.TextRequest) (string, error) {
	return analysisJSON, nil
}

// flakyImage は fail が true の間だけ失敗するのだ。
type flakyImage struct {
	mu   sync.Mutex
	fail bool
}

func (f *flakyImage) GenerateImages(context.Context, ports.GenerationOptions, int) ([]*ports.ImageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("service unavailable")
	}
	return []*ports.ImageResponse{{Data: []byte("png"), MimeType: "image/png"}}, nil
}

func newManager(t *testing.T, image adapters.ImageModel) *workflow.Manager {
	t.Helper()
	cfg := libconfig.DefaultConfig()
	cfg.PacingDelay = 0
	cfg.RateInterval = 0
	cfg.EnhanceTTL = 0
	m, err := workflow.New(context.Background(), workflow.ManagerArgs{
		Config:     cfg,
		TextModel:  stubText{},
		ImageModel: image,
	})
	require.NoError(t, err)
	return m
}

func TestAnalyzeGenerateRetry(t *testing.T) {
	dir := t.TempDir()
	opts := config.GenerateOptions{
		Concept:     "コインを集めて走るアクションゲーム",
		RecordsFile: filepath.Join(dir, "assets.json"),
		OutputDir:   filepath.Join(dir, "images"),
	}
	ctx := context.Background()
	image := &flakyImage{fail: true}

	_, err := ExecuteAnalyze(ctx, newManager(t, image), opts)
	require.NoError(t, err)
	f, err := readRecords(opts.RecordsFile)
	require.NoError(t, err)
	require.Len(t, f.Assets, 2)
	assert.Equal(t, "Coin Run", f.GameName)

	summary, err := ExecuteGenerate(ctx, newManager(t, image), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.FailedCount)

	image.mu.Lock()
	image.fail = false
	image.mu.Unlock()

	summary, err = ExecuteRetry(ctx, newManager(t, image), opts)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchSummary{Total: 2, CompletedCount: 2}, *summary)

	f, err = readRecords(opts.RecordsFile)
	require.NoError(t, err)
	for _, r := range f.Assets {
		assert.Equal(t, domain.StatusCompleted, r.Status)
	}
	files, err := os.ReadDir(filepath.Join(opts.OutputDir, "images"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.FileExists(t, filepath.Join(opts.OutputDir, "catalog.md"))
}

func TestReadConcept(t *testing.T) {
	_, err := readConcept(config.GenerateOptions{})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "concept.txt")
	require.NoError(t, os.WriteFile(path, []byte("a long enough concept"), 0o644))
	got, err := readConcept(config.GenerateOptions{ConceptFile: path})
	require.NoError(t, err)
	assert.Equal(t, "a long enough concept", got)
}
