package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-asset-kit/pkg/analyzer"
	"github.com/shouni/go-asset-kit/pkg/config"
	"github.com/shouni/go-asset-kit/pkg/gallery"
	"github.com/shouni/go-asset-kit/pkg/orchestrator"
	"github.com/shouni/go-asset-kit/pkg/store"
	"github.com/shouni/go-asset-kit/pkg/style"
)

// Manager は、1セッション分のストア、ギャラリー、オーケストレーターを構築・管理します。
// グローバル状態は持たず、呼び出し側が Manager を所有します。
type Manager struct {
	cfg          config.Config
	styles       *style.Resolver
	store        *store.Store
	gallery      *gallery.Gallery
	analyzer     *analyzer.Analyzer
	orchestrator *orchestrator.Orchestrator
}

// New は、設定を基に新しい Manager を初期化します。
// GalleryFile が設定されていれば既存の履歴を読み込みます。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	cfg := args.Config

	ms, err := initializeModels(ctx, args)
	if err != nil {
		return nil, err
	}

	pb, err := initializePromptBuilder(args.PromptBuilder)
	if err != nil {
		return nil, err
	}

	styles := style.NewResolver()
	st := store.New()
	gal := gallery.New(cfg.GalleryLimit)
	if cfg.GalleryFile != "" {
		if err := gal.Load(cfg.GalleryFile); err != nil {
			return nil, fmt.Errorf("ギャラリー履歴の読み込みに失敗しました: %w", err)
		}
	}

	var metrics *orchestrator.Metrics
	if args.Registerer != nil {
		metrics = orchestrator.NewMetrics(args.Registerer)
	}

	orch := orchestrator.New(
		st,
		styles,
		buildEnhancer(cfg, ms.text, pb),
		buildImageClient(cfg, ms.image),
		gal,
		orchestrator.Config{
			PacingDelay:  cfg.PacingDelay,
			MaxBatchSize: cfg.MaxBatchSize,
			Metrics:      metrics,
		},
	)

	return &Manager{
		cfg:          cfg,
		styles:       styles,
		store:        st,
		gallery:      gal,
		analyzer:     analyzer.New(ms.analyzer, pb, styles, cfg.RequestTimeout),
		orchestrator: orch,
	}, nil
}

// Styles はスタイル定義を返します。
func (m *Manager) Styles() *style.Resolver { return m.styles }

// Store はアセットレコードのストアを返します。
func (m *Manager) Store() *store.Store { return m.store }

// Gallery は生成履歴を返します。
func (m *Manager) Gallery() *gallery.Gallery { return m.gallery }

// Orchestrator はバッチ生成を担うオーケストレーターを返します。
func (m *Manager) Orchestrator() *orchestrator.Orchestrator { return m.orchestrator }

// Analyze はコンセプトを分析し、結果のアセットでストアを置き換えます。
func (m *Manager) Analyze(ctx context.Context, concept string) (*analyzer.Analysis, error) {
	analysis, err := m.analyzer.Analyze(ctx, concept)
	if err != nil {
		return nil, err
	}
	analysis.Assets = m.store.Replace(analysis.Assets)
	return analysis, nil
}

// SaveGallery は GalleryFile が設定されていれば履歴を書き出します。
func (m *Manager) SaveGallery() error {
	if m.cfg.GalleryFile == "" {
		return nil
	}
	if err := m.gallery.Save(m.cfg.GalleryFile); err != nil {
		return err
	}
	slog.Info("Gallery saved", "path", m.cfg.GalleryFile, "entries", m.gallery.Len())
	return nil
}
