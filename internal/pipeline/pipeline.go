package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-asset-kit/internal/config"
	"github.com/shouni/go-asset-kit/pkg/domain"
	"github.com/shouni/go-asset-kit/pkg/orchestrator"
	"github.com/shouni/go-asset-kit/pkg/publisher"
	"github.com/shouni/go-asset-kit/pkg/workflow"
)

// ExecuteAnalyze はコンセプトを分析し、アセット一覧をファイルに保存するのだ。
func ExecuteAnalyze(ctx context.Context, m *workflow.Manager, opts config.GenerateOptions) (*domain.BatchSummary, error) {
	concept, err := readConcept(opts)
	if err != nil {
		return nil, err
	}

	analysis, err := m.Analyze(ctx, concept)
	if err != nil {
		return nil, err
	}

	if err := writeRecords(opts.RecordsFile, &recordsFile{
		GameName: analysis.GameName,
		Genre:    analysis.Genre,
		ArtStyle: analysis.ArtStyle,
		Assets:   analysis.Assets,
	}); err != nil {
		return nil, err
	}

	slog.Info("アセット一覧を保存したのだ！",
		"game", analysis.GameName,
		"assets", len(analysis.Assets),
		"estimated_minutes", analysis.EstimatedMinutes,
		"path", opts.RecordsFile)
	return &domain.BatchSummary{Total: len(analysis.Assets)}, nil
}

// ExecuteGenerate はアセット一覧を読み込み、選択された pending のアセットを生成するのだ。
// 選択が空なら全件を対象にするのだ。
func ExecuteGenerate(ctx context.Context, m *workflow.Manager, opts config.GenerateOptions) (*domain.BatchSummary, error) {
	f, err := readRecords(opts.RecordsFile)
	if err != nil {
		return nil, err
	}
	restored := m.Store().Restore(f.Assets)

	selection := opts.Select
	if len(selection) == 0 {
		for _, r := range restored {
			selection = append(selection, r.ID)
		}
	}

	task, err := m.Orchestrator().RunBatch(ctx, selection)
	if err != nil {
		return nil, err
	}
	return finish(ctx, m, f, task, opts)
}

// ExecuteRetry は failed のアセットだけを再生成するのだ。
func ExecuteRetry(ctx context.Context, m *workflow.Manager, opts config.GenerateOptions) (*domain.BatchSummary, error) {
	f, err := readRecords(opts.RecordsFile)
	if err != nil {
		return nil, err
	}
	m.Store().Restore(f.Assets)

	task, err := m.Orchestrator().RetryFailed(ctx)
	if err != nil {
		return nil, err
	}
	return finish(ctx, m, f, task, opts)
}

// finish は進捗をログに流し、結果をファイルへ書き戻すのだ。
func finish(ctx context.Context, m *workflow.Manager, f *recordsFile, task *orchestrator.Task, opts config.GenerateOptions) (*domain.BatchSummary, error) {
	for p := range task.Progress() {
		slog.Info("生成中なのだ",
			"current", p.CurrentLabel,
			"completed", p.CompletedCount,
			"failed", p.FailedCount,
			"total", p.Total)
	}

	summary, err := task.Wait(ctx)
	if err != nil {
		return nil, err
	}

	records := m.Store().List()
	f.Assets = records
	if err := writeRecords(opts.RecordsFile, f); err != nil {
		return &summary, err
	}
	published, err := publisher.NewAssetPublisher().Publish(ctx, records, publisher.Options{
		OutputDir: opts.OutputDir,
		Title:     catalogTitle(f),
	})
	if err != nil {
		return &summary, err
	}
	if err := m.SaveGallery(); err != nil {
		return &summary, err
	}

	slog.Info("生成が完了したのだ！",
		"successful", summary.CompletedCount,
		"failed", summary.FailedCount,
		"remaining", summary.Remaining,
		"images", len(published.ImagePaths),
		"catalog", published.CatalogPath)
	return &summary, nil
}

func readConcept(opts config.GenerateOptions) (string, error) {
	if opts.Concept != "" {
		return opts.Concept, nil
	}
	if opts.ConceptFile == "" {
		return "", fmt.Errorf("コンセプト（--concept または --concept-file）を指定してほしいのだ")
	}
	data, err := os.ReadFile(opts.ConceptFile)
	if err != nil {
		return "", fmt.Errorf("コンセプトファイル '%s' の読み込みに失敗しました: %w", opts.ConceptFile, err)
	}
	return string(data), nil
}

func catalogTitle(f *recordsFile) string {
	if f.GameName != "" {
		return f.GameName
	}
	return "Asset Catalog"
}
