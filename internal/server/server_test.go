package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shouni/gemini-image-kit/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-asset-kit/pkg/adapters"
	"github.com/shouni/go-asset-kit/pkg/config"
	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/style"
	"github.com/shouni/go-asset-kit/pkg/workflow"
)

type stubText struct{}

func (stubText) GenerateText(context.Context, adapters.TextRequest) (string, error) {
	return "enhanced prompt", nil
}

type stubImage struct{}

func (stubImage) GenerateImages(context.Context, ports.GenerationOptions, int) ([]*ports.ImageResponse, error) {
	return []*ports.ImageResponse{{Data: []byte("png"), MimeType: "image/png"}}, nil
}

// ctxImage は呼び出し時点で ctx が終わっていれば失敗します。
type ctxImage struct{}

func (ctxImage) GenerateImages(ctx context.Context, _ ports.GenerationOptions, _ int) ([]*ports.ImageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []*ports.ImageResponse{{Data: []byte("png"), MimeType: "image/png"}}, nil
}

func newTestServer(t *testing.T) (*Server, *workflow.Manager) {
	t.Helper()
	return newTestServerWith(t, stubImage{}, Options{CORSOrigins: []string{"http://localhost:3000"}})
}

func newTestServerWith(t *testing.T, image adapters.ImageModel, opts Options) (*Server, *workflow.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultConfig()
	cfg.PacingDelay = 0
	cfg.RateInterval = 0

	reg := prometheus.NewRegistry()
	m, err := workflow.New(context.Background(), workflow.ManagerArgs{
		Config:     cfg,
		TextModel:  stubText{},
		ImageModel: image,
		Registerer: reg,
	})
	require.NoError(t, err)
	opts.Gatherer = reg
	return New(m, opts), m
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestStyles(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/styles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []style.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, len(domain.AllStyles))

	w = do(t, s, http.MethodGet, "/api/styles?category=unknown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestBatchLifecycle(t *testing.T) {
	s, m := newTestServer(t)
	m.Store().Add(
		domain.AssetRecord{ID: "a", Name: "a", Prompt: "sword"},
		domain.AssetRecord{ID: "b", Name: "b", Prompt: "shield"},
	)

	w := do(t, s, http.MethodPost, "/api/batches", batchRequest{IDs: []string{"a", "b"}})
	require.Equal(t, http.StatusAccepted, w.Code)
	var started batchView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	require.NotEmpty(t, started.ID)

	var view batchView
	require.Eventually(t, func() bool {
		w := do(t, s, http.MethodGet, "/api/batches/"+started.ID, nil)
		if w.Code != http.StatusOK {
			return false
		}
		view = batchView{}
		return json.Unmarshal(w.Body.Bytes(), &view) == nil && view.Summary != nil
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 2, view.Summary.CompletedCount)
	assert.Equal(t, domain.LabelDone, view.Progress.CurrentLabel)
	assert.Equal(t, 2, m.Gallery().Len())

	w = do(t, s, http.MethodGet, "/api/gallery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []domain.GalleryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 2)

	w = do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "asset_kit_records_total"))
}

func TestBatchErrors(t *testing.T) {
	s, m := newTestServer(t)
	m.Store().Add(domain.AssetRecord{ID: "a", Prompt: "sword"})

	w := do(t, s, http.MethodPost, "/api/batches", batchRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/api/batches", batchRequest{IDs: []string{"missing"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/api/batches/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegenerateAndGenerate(t *testing.T) {
	s, m := newTestServer(t)
	m.Store().Add(domain.AssetRecord{ID: "a", Prompt: "sword"})

	w := do(t, s, http.MethodPost, "/api/assets/a/regenerate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rec domain.AssetRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, domain.StatusCompleted, rec.Status)
	assert.Equal(t, "enhanced prompt", rec.EnhancedPrompt)

	w = do(t, s, http.MethodPost, "/api/assets/missing/regenerate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/api/generate", generateRequest{Prompt: "castle", Style: "building"})
	require.Equal(t, http.StatusOK, w.Code)
	var entry domain.GalleryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, domain.StyleBuilding, entry.Style)
	assert.Equal(t, domain.AspectLandscape, entry.AspectRatio)

	w = do(t, s, http.MethodPost, "/api/generate", generateRequest{Prompt: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetEditing(t *testing.T) {
	s, m := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/assets", []domain.AssetRecord{{ID: "a", Prompt: "old", Style: "weird"}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, s, http.MethodPatch, "/api/assets/a", editRequest{Prompt: "new"})
	require.Equal(t, http.StatusOK, w.Code)
	rec, err := m.Store().Get("a")
	require.NoError(t, err)
	assert.Equal(t, "new", rec.Prompt)
	assert.Equal(t, domain.DefaultStyle, rec.Style)

	w = do(t, s, http.MethodDelete, "/api/assets/a", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, s, http.MethodDelete, "/api/assets/a", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/styles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegenerate_ClientDisconnect(t *testing.T) {
	s, m := newTestServerWith(t, ctxImage{}, Options{})
	m.Store().Add(domain.AssetRecord{ID: "a", Prompt: "sword"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/assets/a/regenerate", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	rec, err := m.Store().Get("a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, rec.Status, "切断されても生成は完了すること")
	assert.NotEmpty(t, rec.ImageData)
}

func TestFinishedBatchExpires(t *testing.T) {
	s, m := newTestServerWith(t, stubImage{}, Options{TaskTTL: 50 * time.Millisecond})
	m.Store().Add(domain.AssetRecord{ID: "a", Prompt: "sword"})

	w := do(t, s, http.MethodPost, "/api/batches", batchRequest{IDs: []string{"a"}})
	require.Equal(t, http.StatusAccepted, w.Code)
	var started batchView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	task, err := s.task(started.ID)
	require.NoError(t, err)
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("バッチが終了しない")
	}

	assert.Eventually(t, func() bool {
		return do(t, s, http.MethodGet, "/api/batches/"+started.ID, nil).Code == http.StatusNotFound
	}, 5*time.Second, 10*time.Millisecond, "終了したバッチは期限後に参照できなくなること")
	assert.Eventually(t, func() bool {
		return s.tasks.ItemCount() == 0
	}, 5*time.Second, 10*time.Millisecond, "期限切れのタスクがメモリから消えること")
}
