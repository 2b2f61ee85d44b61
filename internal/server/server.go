package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/orchestrator"
	"github.com/shouni/go-asset-kit/pkg/workflow"
)

// DefaultTaskTTL は終了したバッチの状態を参照できる既定の期間なのだ。
const DefaultTaskTTL = time.Hour

// Server は Manager を HTTP で公開する薄い層なのだ。
type Server struct {
	manager *workflow.Manager
	engine  *gin.Engine

	// 実行中のタスクは期限なし、終了後は taskTTL で消えるのだ。
	tasks   *cache.Cache
	taskTTL time.Duration
}

// Options はサーバーの公開設定なのだ。
type Options struct {
	// Gatherer が nil なら /metrics は公開しないのだ。
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
	// TaskTTL が0以下なら DefaultTaskTTL を使うのだ。
	TaskTTL time.Duration
}

// New はルーティングを設定した Server を返すのだ。
func New(m *workflow.Manager, opts Options) *Server {
	ttl := opts.TaskTTL
	if ttl <= 0 {
		ttl = DefaultTaskTTL
	}
	s := &Server{
		manager: m,
		engine:  gin.New(),
		tasks:   cache.New(cache.NoExpiration, ttl),
		taskTTL: ttl,
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	if len(opts.CORSOrigins) > 0 {
		s.engine.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}
	s.routes(opts.Gatherer)
	return s
}

// Handler は http.Handler を返すのだ。
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(gatherer prometheus.Gatherer) {
	if gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	s.engine.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := s.engine.Group("/api")
	api.GET("/styles", s.listStyles)
	api.GET("/styles/categories", s.listCategories)
	api.POST("/analyze", s.analyze)

	api.GET("/assets", s.listAssets)
	api.POST("/assets", s.addAssets)
	api.PATCH("/assets/:id", s.editAsset)
	api.DELETE("/assets/:id", s.removeAsset)
	api.POST("/assets/:id/regenerate", s.regenerate)

	api.POST("/batches", s.startBatch)
	api.POST("/batches/retry", s.retryFailed)
	api.GET("/batches/:id", s.batchStatus)
	api.POST("/batches/:id/cancel", s.cancelBatch)

	api.POST("/generate", s.generate)

	api.GET("/gallery", s.listGallery)
	api.DELETE("/gallery/:id", s.removeGalleryEntry)
	api.DELETE("/gallery", s.clearGallery)
}

// track はタスクを登録し、終了後にギャラリーを保存して期限を付けるのだ。
func (s *Server) track(task *orchestrator.Task) string {
	id := uuid.NewString()
	s.tasks.Set(id, task, cache.NoExpiration)

	go func() {
		<-task.Done()
		s.tasks.Set(id, task, s.taskTTL)
		if err := s.manager.SaveGallery(); err != nil {
			slog.Error("ギャラリーの保存に失敗したのだ", "batch_id", id, "error", err)
		}
	}()
	return id
}

func (s *Server) task(id string) (*orchestrator.Task, error) {
	v, ok := s.tasks.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errBatchNotFound, id)
	}
	return v.(*orchestrator.Task), nil
}

type batchView struct {
	ID       string               `json:"id"`
	Progress domain.BatchProgress `json:"progress"`
	Summary  *domain.BatchSummary `json:"summary,omitempty"`
}

func (s *Server) viewOf(ctx context.Context, id string, t *orchestrator.Task) batchView {
	v := batchView{ID: id, Progress: t.Snapshot()}
	select {
	case <-t.Done():
		if summary, err := t.Wait(ctx); err == nil {
			v.Summary = &summary
		}
	default:
	}
	return v
}
